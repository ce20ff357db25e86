package etherscan

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/neoctobers/etherscan-go/internal/bigutil"
)

// StatsClient exposes the vendor's network statistics module.
type StatsClient struct {
	caller
}

// EthPrice is the current ETH price against BTC and USD, with the
// vendor's last-update timestamps.
type EthPrice struct {
	EthBtc          float64
	EthBtcTimestamp int64
	EthUsd          float64
	EthUsdTimestamp int64
}

// EthPrice returns the current ETH price.
func (c *StatsClient) EthPrice(ctx context.Context) (*EthPrice, error) {
	c.session.set("action", "ethprice")

	var raw struct {
		EthBtc          string `json:"ethbtc"`
		EthBtcTimestamp string `json:"ethbtc_timestamp"`
		EthUsd          string `json:"ethusd"`
		EthUsdTimestamp string `json:"ethusd_timestamp"`
	}
	if err := c.doInto(ctx, &raw); err != nil {
		return nil, err
	}

	price := &EthPrice{}
	var err error
	if price.EthBtc, err = strconv.ParseFloat(raw.EthBtc, 64); err != nil {
		return nil, fmt.Errorf("failed to parse ethbtc '%s': %w", raw.EthBtc, err)
	}
	if price.EthBtcTimestamp, err = strconv.ParseInt(raw.EthBtcTimestamp, 10, 64); err != nil {
		return nil, fmt.Errorf("failed to parse ethbtc_timestamp '%s': %w", raw.EthBtcTimestamp, err)
	}
	if price.EthUsd, err = strconv.ParseFloat(raw.EthUsd, 64); err != nil {
		return nil, fmt.Errorf("failed to parse ethusd '%s': %w", raw.EthUsd, err)
	}
	if price.EthUsdTimestamp, err = strconv.ParseInt(raw.EthUsdTimestamp, 10, 64); err != nil {
		return nil, fmt.Errorf("failed to parse ethusd_timestamp '%s': %w", raw.EthUsdTimestamp, err)
	}

	return price, nil
}

// EthSupply returns the total ETH supply, in wei.
func (c *StatsClient) EthSupply(ctx context.Context) (*big.Int, error) {
	c.session.set("action", "ethsupply")

	result, err := c.doString(ctx)
	if err != nil {
		return nil, err
	}

	supply, err := bigutil.FromString(result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse supply '%s': %w", result, err)
	}

	return supply, nil
}

// TokenSupply returns the total supply of the ERC-20 token at the
// contract address, in the token's base unit.
func (c *StatsClient) TokenSupply(ctx context.Context, contractAddress string) (*big.Int, error) {
	if contractAddress == "" {
		return nil, &InvalidArgumentError{Param: "contract address", Reason: "must not be empty"}
	}

	c.session.set("action", "tokensupply")
	c.session.set("contractaddress", contractAddress)

	result, err := c.doString(ctx)
	if err != nil {
		return nil, err
	}

	supply, err := bigutil.FromString(result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token supply '%s': %w", result, err)
	}

	return supply, nil
}
