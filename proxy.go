package etherscan

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Block tags accepted by the proxy actions that take one.
const (
	TagEarliest = "earliest"
	TagPending  = "pending"
	TagLatest   = "latest"
)

// ProxyClient exposes the vendor's geth/parity JSON-RPC proxy module.
// Quantities cross the wire as hex strings; this client encodes and
// decodes them so callers work with native integers.
type ProxyClient struct {
	caller
}

func validateTag(tag string) error {
	switch tag {
	case TagEarliest, TagPending, TagLatest:
		return nil
	}

	return errInvalidEnum("tag", tag, TagEarliest, TagPending, TagLatest)
}

func (c *ProxyClient) doHexBig(ctx context.Context) (*big.Int, error) {
	result, err := c.doString(ctx)
	if err != nil {
		return nil, err
	}

	value, err := hexutil.DecodeBig(result)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex quantity '%s': %w", result, err)
	}

	return value, nil
}

func (c *ProxyClient) doHexUint(ctx context.Context) (uint64, error) {
	result, err := c.doString(ctx)
	if err != nil {
		return 0, err
	}

	value, err := hexutil.DecodeUint64(result)
	if err != nil {
		return 0, fmt.Errorf("failed to decode hex quantity '%s': %w", result, err)
	}

	return value, nil
}

func (c *ProxyClient) doObject(ctx context.Context) (Record, error) {
	var raw map[string]any
	if err := c.doInto(ctx, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	return NormalizeLooseRecord(raw), nil
}

// GasPrice returns the current gas price, in wei.
func (c *ProxyClient) GasPrice(ctx context.Context) (*big.Int, error) {
	c.session.set("action", "eth_gasPrice")

	return c.doHexBig(ctx)
}

// BlockNumber returns the latest block number.
func (c *ProxyClient) BlockNumber(ctx context.Context) (uint64, error) {
	c.session.set("action", "eth_blockNumber")

	return c.doHexUint(ctx)
}

// BlockByNumber returns the block with the given number. When
// fullTransactions is true, the block embeds complete transaction
// objects instead of hashes.
func (c *ProxyClient) BlockByNumber(ctx context.Context, blockNumber uint64, fullTransactions bool) (Record, error) {
	c.session.set("action", "eth_getBlockByNumber")
	c.session.set("tag", hexutil.EncodeUint64(blockNumber))
	c.session.set("boolean", strconv.FormatBool(fullTransactions))

	return c.doObject(ctx)
}

// BlockTransactionCountByNumber returns the number of transactions in
// the block.
func (c *ProxyClient) BlockTransactionCountByNumber(ctx context.Context, blockNumber uint64) (uint64, error) {
	c.session.set("action", "eth_getBlockTransactionCountByNumber")
	c.session.set("tag", hexutil.EncodeUint64(blockNumber))

	return c.doHexUint(ctx)
}

// TransactionByHash returns the transaction with the given hash.
func (c *ProxyClient) TransactionByHash(ctx context.Context, txHash string) (Record, error) {
	c.session.set("action", "eth_getTransactionByHash")
	c.session.set("txhash", txHash)

	return c.doObject(ctx)
}

// TransactionByBlockNumberAndIndex returns the transaction at the
// given index within the block.
func (c *ProxyClient) TransactionByBlockNumberAndIndex(ctx context.Context, blockNumber, index uint64) (Record, error) {
	c.session.set("action", "eth_getTransactionByBlockNumberAndIndex")
	c.session.set("tag", hexutil.EncodeUint64(blockNumber))
	c.session.set("index", hexutil.EncodeUint64(index))

	return c.doObject(ctx)
}

// TransactionCount returns the number of transactions sent from the
// address as of the tagged block.
func (c *ProxyClient) TransactionCount(ctx context.Context, address, tag string) (uint64, error) {
	if err := validateTag(tag); err != nil {
		return 0, err
	}

	c.session.set("action", "eth_getTransactionCount")
	c.session.set("address", address)
	c.session.set("tag", tag)

	return c.doHexUint(ctx)
}

// TransactionReceipt returns the receipt of the transaction.
func (c *ProxyClient) TransactionReceipt(ctx context.Context, txHash string) (Record, error) {
	c.session.set("action", "eth_getTransactionReceipt")
	c.session.set("txhash", txHash)

	return c.doObject(ctx)
}

// Call executes a read-only message call against the contract at the
// given address and returns the hex-encoded return data.
func (c *ProxyClient) Call(ctx context.Context, to, data, tag string) (string, error) {
	if err := validateTag(tag); err != nil {
		return "", err
	}

	c.session.set("action", "eth_call")
	c.session.set("to", to)
	c.session.set("data", data)
	c.session.set("tag", tag)

	return c.doString(ctx)
}

// Code returns the hex-encoded contract code at the address.
func (c *ProxyClient) Code(ctx context.Context, address, tag string) (string, error) {
	if err := validateTag(tag); err != nil {
		return "", err
	}

	c.session.set("action", "eth_getCode")
	c.session.set("address", address)
	c.session.set("tag", tag)

	return c.doString(ctx)
}

// StorageAt returns the hex-encoded value stored at the given position
// of the address.
func (c *ProxyClient) StorageAt(ctx context.Context, address string, position uint64, tag string) (string, error) {
	if err := validateTag(tag); err != nil {
		return "", err
	}

	c.session.set("action", "eth_getStorageAt")
	c.session.set("address", address)
	c.session.set("position", hexutil.EncodeUint64(position))
	c.session.set("tag", tag)

	return c.doString(ctx)
}

// EstimateGas always fails with ErrNotImplemented.
func (c *ProxyClient) EstimateGas(ctx context.Context) error {
	return fmt.Errorf("eth_estimateGas: %w", ErrNotImplemented)
}

// SendRawTransaction always fails with ErrNotImplemented; this client
// is read-only.
func (c *ProxyClient) SendRawTransaction(ctx context.Context) error {
	return fmt.Errorf("eth_sendRawTransaction: %w", ErrNotImplemented)
}
