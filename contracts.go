package etherscan

import "context"

// ContractsClient exposes the vendor's contract module.
type ContractsClient struct {
	caller
}

// ABI returns the ABI of a verified contract as a JSON string. For an
// unverified contract the vendor soft-fails and the result carries its
// explanatory message; callers must inspect the result defensively.
func (c *ContractsClient) ABI(ctx context.Context, address string) (string, error) {
	if address == "" {
		return "", &InvalidArgumentError{Param: "address", Reason: "must not be empty"}
	}

	c.session.set("action", "getabi")
	c.session.set("address", address)

	return c.doString(ctx)
}

// SourceCode returns the verified source records of a contract.
func (c *ContractsClient) SourceCode(ctx context.Context, address string) ([]Record, error) {
	if address == "" {
		return nil, &InvalidArgumentError{Param: "address", Reason: "must not be empty"}
	}

	c.session.set("action", "getsourcecode")
	c.session.set("address", address)

	return c.doRecords(ctx)
}
