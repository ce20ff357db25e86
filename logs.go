package etherscan

import (
	"context"
	"fmt"
	"strconv"
)

// LogsClient exposes the vendor's event log module.
type LogsClient struct {
	caller
}

// EventsRequest narrows an event log query.
type EventsRequest struct {
	Address   string
	FromBlock uint64
	ToBlock   uint64 // 0 queries up to the latest block
	Topics    []string
}

// Events lists event logs emitted by the address, filtered by the
// given topics (topic0 first).
func (c *LogsClient) Events(ctx context.Context, req EventsRequest) ([]Record, error) {
	if req.Address == "" {
		return nil, &InvalidArgumentError{Param: "address", Reason: "must not be empty"}
	}

	c.session.set("action", "getLogs")
	c.session.set("address", req.Address)
	c.session.set("fromBlock", strconv.FormatUint(req.FromBlock, 10))
	if req.ToBlock == 0 {
		c.session.set("toBlock", "latest")
	} else {
		c.session.set("toBlock", strconv.FormatUint(req.ToBlock, 10))
	}
	for i, topic := range req.Topics {
		c.session.set(fmt.Sprintf("topic%d", i), topic)
	}

	// log entries nest a topics array, so they take the loose decode path
	var raw []map[string]any
	if err := c.doInto(ctx, &raw); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(raw))
	for _, entry := range raw {
		records = append(records, NormalizeLooseRecord(entry))
	}

	return records, nil
}
