package etherscan

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/neoctobers/etherscan-go/internal/bigutil"
)

// Sort orders accepted by the listing endpoints.
const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

const (
	defaultEndBlock = 999999999
	defaultPage     = 1
	defaultLimit    = 1000
)

// AccountsClient exposes the vendor's account module.
type AccountsClient struct {
	caller
}

// Balance returns the ETH balance of the address, in wei.
func (c *AccountsClient) Balance(ctx context.Context, address string) (*big.Int, error) {
	c.session.set("action", "balance")
	c.session.set("address", address)

	result, err := c.doString(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := bigutil.FromString(result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance for '%s': %w", address, err)
	}

	return balance, nil
}

// Balances returns the ETH balance of each address, in wei, keyed by
// address.
func (c *AccountsClient) Balances(ctx context.Context, addresses []string) (map[string]*big.Int, error) {
	c.session.set("action", "balancemulti")
	c.session.set("address", strings.Join(addresses, ","))

	var rows []struct {
		Account string `json:"account"`
		Balance string `json:"balance"`
	}
	if err := c.doInto(ctx, &rows); err != nil {
		return nil, err
	}

	balances := make(map[string]*big.Int, len(rows))
	for _, row := range rows {
		balance, err := bigutil.FromString(row.Balance)
		if err != nil {
			return nil, fmt.Errorf("failed to parse balance for '%s': %w", row.Account, err)
		}
		balances[row.Account] = balance
	}

	return balances, nil
}

// TransactionsRequest narrows a transaction listing. The zero value
// lists the first 1000 transactions of the full chain in ascending
// order.
type TransactionsRequest struct {
	Address    string
	StartBlock uint64
	EndBlock   uint64 // 0 selects the vendor's maximum block
	Page       int    // 1-based; 0 selects the first page
	Limit      int    // transactions per page; 0 selects 1000
	Sort       string // SortAscending or SortDescending; empty selects ascending
}

func (r *TransactionsRequest) apply(s *session) error {
	if r.Sort != "" && r.Sort != SortAscending && r.Sort != SortDescending {
		return errInvalidEnum("sort", r.Sort, SortAscending, SortDescending)
	}

	endBlock := r.EndBlock
	if endBlock == 0 {
		endBlock = defaultEndBlock
	}
	page := r.Page
	if page == 0 {
		page = defaultPage
	}
	limit := r.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	sort := r.Sort
	if sort == "" {
		sort = SortAscending
	}

	if r.Address != "" {
		s.set("address", r.Address)
	}
	s.set("startblock", strconv.FormatUint(r.StartBlock, 10))
	s.set("endblock", strconv.FormatUint(endBlock, 10))
	s.set("page", strconv.Itoa(page))
	s.set("offset", strconv.Itoa(limit))
	s.set("sort", sort)

	return nil
}

// Transactions lists normal transactions for the requested address.
func (c *AccountsClient) Transactions(ctx context.Context, req TransactionsRequest) ([]Record, error) {
	return c.listTransactions(ctx, "txlist", req)
}

// InternalTransactions lists internal transactions for the requested
// address.
func (c *AccountsClient) InternalTransactions(ctx context.Context, req TransactionsRequest) ([]Record, error) {
	return c.listTransactions(ctx, "txlistinternal", req)
}

func (c *AccountsClient) listTransactions(ctx context.Context, action string, req TransactionsRequest) ([]Record, error) {
	if req.Address == "" {
		return nil, &InvalidArgumentError{Param: "address", Reason: "must not be empty"}
	}

	if err := req.apply(c.session); err != nil {
		c.session.reset()

		return nil, err
	}
	c.session.set("action", action)

	return c.doRecords(ctx)
}

// TokenTransactionsRequest narrows a token transfer listing. At least
// one of ContractAddress and Address must be set.
type TokenTransactionsRequest struct {
	ContractAddress string
	Address         string
	StartBlock      uint64
	EndBlock        uint64
	Page            int
	Limit           int
	Sort            string
}

func (r *TokenTransactionsRequest) apply(s *session) error {
	listing := TransactionsRequest{
		StartBlock: r.StartBlock,
		EndBlock:   r.EndBlock,
		Page:       r.Page,
		Limit:      r.Limit,
		Sort:       r.Sort,
	}
	if err := listing.apply(s); err != nil {
		return err
	}

	if r.ContractAddress != "" {
		s.set("contractaddress", r.ContractAddress)
	}
	if r.Address != "" {
		s.set("address", r.Address)
	}

	return nil
}

// TokenTransactions lists ERC-20 token transfers for the requested
// contract and/or address.
func (c *AccountsClient) TokenTransactions(ctx context.Context, req TokenTransactionsRequest) ([]Record, error) {
	return listTokenTransactions(ctx, &c.caller, "tokentx", req)
}

func listTokenTransactions(ctx context.Context, c *caller, action string, req TokenTransactionsRequest) ([]Record, error) {
	if req.ContractAddress == "" && req.Address == "" {
		return nil, errMissingOneOf("contract address", "address")
	}

	if err := req.apply(c.session); err != nil {
		c.session.reset()

		return nil, err
	}
	c.session.set("action", action)

	return c.doRecords(ctx)
}

// Mined block kinds accepted by MinedBlocks.
const (
	MinedBlocks = "blocks"
	MinedUncles = "uncles"
)

// MinedBlocksByAddress lists blocks (or uncles) mined by the address.
func (c *AccountsClient) MinedBlocksByAddress(ctx context.Context, address, blockType string, page, limit int) ([]Record, error) {
	if blockType != MinedBlocks && blockType != MinedUncles {
		return nil, errInvalidEnum("block type", blockType, MinedBlocks, MinedUncles)
	}
	if address == "" {
		return nil, &InvalidArgumentError{Param: "address", Reason: "must not be empty"}
	}

	if page == 0 {
		page = defaultPage
	}
	if limit == 0 {
		limit = defaultLimit
	}

	c.session.set("action", "getminedblocks")
	c.session.set("address", address)
	c.session.set("blocktype", blockType)
	c.session.set("page", strconv.Itoa(page))
	c.session.set("offset", strconv.Itoa(limit))

	return c.doRecords(ctx)
}
