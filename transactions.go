package etherscan

import "context"

// TransactionsClient exposes the vendor's transaction module.
type TransactionsClient struct {
	caller
}

// ExecutionStatus returns the contract execution outcome of a
// transaction. The returned record carries an "is_error" flag and an
// "err_description" field.
func (c *TransactionsClient) ExecutionStatus(ctx context.Context, txHash string) (Record, error) {
	if txHash == "" {
		return nil, &InvalidArgumentError{Param: "tx hash", Reason: "must not be empty"}
	}

	c.session.set("action", "getstatus")
	c.session.set("txhash", txHash)

	var raw map[string]string
	if err := c.doInto(ctx, &raw); err != nil {
		return nil, err
	}

	return NormalizeRecord(raw), nil
}

// ReceiptStatus reports whether the transaction receipt marks the
// transaction as successful. Pre-Byzantium transactions carry no
// receipt status; the vendor returns an empty value, which reads as
// false.
func (c *TransactionsClient) ReceiptStatus(ctx context.Context, txHash string) (bool, error) {
	if txHash == "" {
		return false, &InvalidArgumentError{Param: "tx hash", Reason: "must not be empty"}
	}

	c.session.set("action", "gettxreceiptstatus")
	c.session.set("txhash", txHash)

	var raw struct {
		Status string `json:"status"`
	}
	if err := c.doInto(ctx, &raw); err != nil {
		return false, err
	}

	return parseVendorBool(raw.Status), nil
}
