package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// session accumulates the form parameters for exactly one in-flight
// call on a module client. The parameter set always carries the API
// key and the module name; action and call-specific fields are layered
// on per call and wiped by reset once the request completes.
type session struct {
	apiKey string
	module string
	params url.Values
}

func newSession(apiKey, module string) *session {
	s := &session{
		apiKey: apiKey,
		module: module,
	}
	s.reset()

	return s
}

func (s *session) set(key, value string) {
	s.params.Set(key, value)
}

// reset replaces the parameter set with the base {apikey, module}
// form so no fields leak into the next call.
func (s *session) reset() {
	s.params = url.Values{
		"apikey": []string{s.apiKey},
		"module": []string{s.module},
	}
}

// caller ties a session to the shared transport. Module clients embed
// it: domain methods populate the session and then invoke do/doInto,
// which reset the session whether or not the request succeeded.
type caller struct {
	session   *session
	transport *transport
}

func newCaller(apiKey, module string, t *transport) caller {
	return caller{
		session:   newSession(apiKey, module),
		transport: t,
	}
}

func (c *caller) do(ctx context.Context) (json.RawMessage, error) {
	defer c.session.reset()

	return c.transport.post(ctx, c.session.params)
}

func (c *caller) doInto(ctx context.Context, out any) error {
	raw, err := c.do(ctx)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode result payload: %w", err)
	}

	return nil
}

func (c *caller) doString(ctx context.Context) (string, error) {
	var result string
	if err := c.doInto(ctx, &result); err != nil {
		return "", err
	}

	return result, nil
}

func (c *caller) doRecords(ctx context.Context) ([]Record, error) {
	var raw []map[string]string
	if err := c.doInto(ctx, &raw); err != nil {
		return nil, err
	}

	return normalizeRecords(raw), nil
}
