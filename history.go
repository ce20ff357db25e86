package etherscan

import (
	"context"
	"fmt"
	"time"
)

const historyWindow = 24 * time.Hour

// HistoryWalker traverses the transaction history of an address in
// fixed 24-hour windows, walking backward from the end time toward the
// start time. Each Next call resolves the window's block boundaries,
// fetches one page of transactions and moves the cursor one window
// earlier. Block-number lookups are memoized per walker, so resuming
// near previously visited timestamps costs no extra calls.
//
// A walker is lazy and single-use; create a new one to restart.
type HistoryWalker struct {
	accounts *AccountsClient
	blocks   *BlocksClient

	address      string
	start        time.Time
	cursor       time.Time
	blockNumbers map[string]uint64
}

// History returns a walker over the address's transactions from the
// start time up to now.
func (c *Client) History(address string, start time.Time) *HistoryWalker {
	return c.HistoryBetween(address, start, time.Now())
}

// HistoryBetween returns a walker over the address's transactions
// between the start and end times. A start after the end yields a
// walker that is already done; a start equal to the end yields exactly
// one window.
func (c *Client) HistoryBetween(address string, start, end time.Time) *HistoryWalker {
	return &HistoryWalker{
		accounts:     c.Accounts(),
		blocks:       c.Blocks(),
		address:      address,
		start:        start,
		cursor:       end,
		blockNumbers: make(map[string]uint64),
	}
}

// Done reports whether the walk has passed the start time.
func (w *HistoryWalker) Done() bool {
	return w.start.After(w.cursor)
}

// Next produces the transactions of the current 24-hour window and
// moves the cursor one window earlier. Once the walker is done it
// produces nil pages.
func (w *HistoryWalker) Next(ctx context.Context) ([]Record, error) {
	if w.Done() {
		return nil, nil
	}

	windowEnd := w.cursor
	windowStart := windowEnd.Add(-historyWindow)

	startBlock, err := w.blockNumber(ctx, windowStart.Unix(), ClosestAfter)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve window start block: %w", err)
	}

	endBlock, err := w.blockNumber(ctx, windowEnd.Unix(), ClosestBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve window end block: %w", err)
	}

	page, err := w.accounts.Transactions(ctx, TransactionsRequest{
		Address:    w.address,
		StartBlock: startBlock,
		EndBlock:   endBlock,
	})
	if err != nil {
		return nil, err
	}

	w.cursor = windowStart

	return page, nil
}

func (w *HistoryWalker) blockNumber(ctx context.Context, timestamp int64, closest string) (uint64, error) {
	key := fmt.Sprintf("%d/%s", timestamp, closest)
	if blockNumber, ok := w.blockNumbers[key]; ok {
		return blockNumber, nil
	}

	blockNumber, err := w.blocks.BlockNumberByTime(ctx, timestamp, closest)
	if err != nil {
		return 0, err
	}
	w.blockNumbers[key] = blockNumber

	return blockNumber, nil
}
