package etherscan

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

// GasTrackerClient exposes the vendor's gas tracker module.
type GasTrackerClient struct {
	caller
}

// GasOracle returns the vendor's current gas price suggestions. The
// record carries fields such as "safe_gas_price", "propose_gas_price",
// "fast_gas_price" and "last_block".
func (c *GasTrackerClient) GasOracle(ctx context.Context) (Record, error) {
	c.session.set("action", "gasoracle")

	var raw map[string]string
	if err := c.doInto(ctx, &raw); err != nil {
		return nil, err
	}

	return NormalizeRecord(raw), nil
}

// ConfirmationTimeEstimate returns the estimated confirmation wait for
// a transaction submitted at the given gas price, in wei.
func (c *GasTrackerClient) ConfirmationTimeEstimate(ctx context.Context, gasPrice *big.Int) (time.Duration, error) {
	if gasPrice == nil || gasPrice.Sign() <= 0 {
		return 0, &InvalidArgumentError{Param: "gas price", Reason: "must be a positive amount of wei"}
	}

	c.session.set("action", "gasestimate")
	c.session.set("gasprice", gasPrice.String())

	result, err := c.doString(ctx)
	if err != nil {
		return 0, err
	}

	seconds, err := strconv.ParseInt(result, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse confirmation estimate '%s': %w", result, err)
	}

	return time.Duration(seconds) * time.Second, nil
}
