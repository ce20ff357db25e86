package etherscan

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Closest directions accepted by BlockNumberByTime.
const (
	ClosestBefore = "before"
	ClosestAfter  = "after"
)

// BlocksClient exposes the vendor's block module.
type BlocksClient struct {
	caller
}

// BlockReward returns the block mining reward and uncle rewards for
// the block.
func (c *BlocksClient) BlockReward(ctx context.Context, blockNumber uint64) (Record, error) {
	c.session.set("action", "getblockreward")
	c.session.set("blockno", strconv.FormatUint(blockNumber, 10))

	var raw map[string]string
	if err := c.doInto(ctx, &raw); err != nil {
		return nil, err
	}

	return NormalizeRecord(raw), nil
}

// BlockCountdown returns the estimated time remaining until the block
// is mined.
func (c *BlocksClient) BlockCountdown(ctx context.Context, blockNumber uint64) (Record, error) {
	c.session.set("action", "getblockcountdown")
	c.session.set("blockno", strconv.FormatUint(blockNumber, 10))

	var raw map[string]string
	if err := c.doInto(ctx, &raw); err != nil {
		return nil, err
	}

	return NormalizeRecord(raw), nil
}

// BlockNumberByTime returns the number of the block mined closest to
// the unix timestamp, on the side selected by closest (ClosestBefore
// or ClosestAfter).
func (c *BlocksClient) BlockNumberByTime(ctx context.Context, timestamp int64, closest string) (uint64, error) {
	if closest != ClosestBefore && closest != ClosestAfter {
		return 0, errInvalidEnum("closest", closest, ClosestBefore, ClosestAfter)
	}

	c.session.set("action", "getblocknobytime")
	c.session.set("timestamp", strconv.FormatInt(timestamp, 10))
	c.session.set("closest", closest)

	result, err := c.doString(ctx)
	if err != nil {
		return 0, err
	}

	blockNumber, err := strconv.ParseUint(result, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block number '%s': %w", result, err)
	}

	return blockNumber, nil
}

// LatestBlock returns the number of the most recently mined block.
func (c *BlocksClient) LatestBlock(ctx context.Context) (uint64, error) {
	return c.BlockNumberByTime(ctx, time.Now().Unix(), ClosestBefore)
}
