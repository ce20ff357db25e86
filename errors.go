package etherscan

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotImplemented is returned by vendor actions this client
// deliberately does not support.
var ErrNotImplemented = errors.New("action is not implemented by this client")

// InvalidArgumentError reports a caller-supplied argument that was
// rejected before any network call was made.
type InvalidArgumentError struct {
	Param  string // the offending parameter name
	Reason string // why the value was rejected
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument '%s': %s", e.Param, e.Reason)
}

func errInvalidEnum(param, value string, allowed ...string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Param:  param,
		Reason: fmt.Sprintf("'%s' is not one of [%s]", value, strings.Join(allowed, ", ")),
	}
}

func errMissingOneOf(params ...string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Param:  strings.Join(params, "/"),
		Reason: "at least one must be provided",
	}
}
