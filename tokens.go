package etherscan

import (
	"context"
	"fmt"
	"math/big"

	"github.com/neoctobers/etherscan-go/internal/bigutil"
)

// TokensClient exposes the vendor's token endpoints. These are routed
// through the account module on the wire.
type TokensClient struct {
	caller
}

// TokenBalance returns the ERC-20 token balance of the address, in the
// token's base unit.
func (c *TokensClient) TokenBalance(ctx context.Context, contractAddress, address string) (*big.Int, error) {
	if contractAddress == "" {
		return nil, &InvalidArgumentError{Param: "contract address", Reason: "must not be empty"}
	}
	if address == "" {
		return nil, &InvalidArgumentError{Param: "address", Reason: "must not be empty"}
	}

	c.session.set("action", "tokenbalance")
	c.session.set("contractaddress", contractAddress)
	c.session.set("address", address)
	c.session.set("tag", TagLatest)

	result, err := c.doString(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := bigutil.FromString(result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token balance '%s': %w", result, err)
	}

	return balance, nil
}

// NFTTransactions lists ERC-721 token transfers for the requested
// contract and/or address.
func (c *TokensClient) NFTTransactions(ctx context.Context, req TokenTransactionsRequest) ([]Record, error) {
	return listTokenTransactions(ctx, &c.caller, "tokennfttx", req)
}

// ERC1155Transactions lists ERC-1155 token transfers for the requested
// contract and/or address.
func (c *TokensClient) ERC1155Transactions(ctx context.Context, req TokenTransactionsRequest) ([]Record, error) {
	return listTokenTransactions(ctx, &c.caller, "token1155tx", req)
}
