package etherscan

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/neoctobers/etherscan-go/internal/httpcache"
)

// Supported network names. The zero value selects mainnet.
const (
	NetworkMainnet = "mainnet"
	NetworkRopsten = "ropsten"
	NetworkKovan   = "kovan"
	NetworkRinkeby = "rinkeby"
)

// Cache backend names.
const (
	CacheBackendMemory = "memory"
	CacheBackendFile   = "file"
)

const (
	// APIKeyEnvVar is the environment variable consulted when no
	// explicit API key is configured. A key resolved through a prompt
	// is written back to it so later clients in the same process reuse
	// the first resolution.
	APIKeyEnvVar = "ETHERSCAN_KEY"

	// DefaultCacheTTL is how long a cached response stays valid.
	DefaultCacheTTL = 5 * time.Second

	mainnetAPIURL    = "https://api.etherscan.io/api"
	testnetAPIFormat = "https://api-%s.etherscan.io/api"
)

// Config configures a Client. The zero value selects mainnet, the
// in-memory cache backend, the default TTL and http.DefaultClient, and
// resolves the API key from the environment.
type Config struct {
	// APIKey is the etherscan API key. When empty, the key is read
	// from APIKeyEnvVar, then from KeyPrompt.
	APIKey string

	// Network selects the API endpoint (mainnet or one of the named
	// test networks).
	Network string

	// HTTPClient executes the outgoing requests.
	HTTPClient Doer

	// CacheBackend selects where cached responses live. Ignored when
	// CacheStore is set.
	CacheBackend string

	// CacheStore overrides the backend selection with a caller-built
	// store.
	CacheStore httpcache.Store

	// CacheTTL is how long cached responses stay valid.
	CacheTTL time.Duration

	// KeyPrompt, when set, is invoked as the last resort of API key
	// resolution. The library never prompts on its own.
	KeyPrompt func() (string, error)
}

// Client is the root client. It owns one lazily-constructed instance
// of each module client, all sharing one cached transport and one
// resolved API key.
type Client struct {
	apiKey    string
	transport *transport

	accounts     *AccountsClient
	blocks       *BlocksClient
	contracts    *ContractsClient
	transactions *TransactionsClient
	logs         *LogsClient
	proxy        *ProxyClient
	stats        *StatsClient
	tokens       *TokensClient
	gasTracker   *GasTrackerClient
}

// NewClient validates the configuration, resolves the API key and
// returns a ready Client.
func NewClient(cfg Config) (*Client, error) {
	apiURL, err := resolveAPIURL(cfg.Network)
	if err != nil {
		return nil, err
	}

	apiKey, err := resolveAPIKey(cfg.APIKey, cfg.KeyPrompt)
	if err != nil {
		return nil, err
	}

	store := cfg.CacheStore
	if store == nil {
		store, err = newStore(cfg.CacheBackend)
		if err != nil {
			return nil, err
		}
	}

	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}

	doer := cfg.HTTPClient
	if doer == nil {
		doer = http.DefaultClient
	}

	return &Client{
		apiKey: apiKey,
		transport: &transport{
			doer:   doer,
			apiURL: apiURL,
			store:  store,
			ttl:    ttl,
		},
	}, nil
}

func resolveAPIURL(network string) (string, error) {
	switch network {
	case "", NetworkMainnet:
		return mainnetAPIURL, nil
	case NetworkRopsten, NetworkKovan, NetworkRinkeby:
		return fmt.Sprintf(testnetAPIFormat, network), nil
	}

	return "", errInvalidEnum(
		"network",
		network,
		NetworkMainnet, NetworkRopsten, NetworkKovan, NetworkRinkeby,
	)
}

// resolveAPIKey picks the first available source: explicit key, the
// environment, then the prompt. A key obtained from the prompt or
// given explicitly is written to the environment so the resolution
// sticks for the rest of the process.
func resolveAPIKey(explicit string, prompt func() (string, error)) (string, error) {
	if explicit != "" {
		_ = os.Setenv(APIKeyEnvVar, explicit)

		return explicit, nil
	}

	if key := os.Getenv(APIKeyEnvVar); key != "" {
		return key, nil
	}

	if prompt == nil {
		return "", errors.New("no API key: set Config.APIKey or " + APIKeyEnvVar)
	}

	key, err := prompt()
	if err != nil {
		return "", fmt.Errorf("API key prompt failed: %w", err)
	}
	if key == "" {
		return "", errors.New("API key prompt returned an empty key")
	}

	_ = os.Setenv(APIKeyEnvVar, key)

	return key, nil
}

func newStore(backend string) (httpcache.Store, error) {
	switch backend {
	case "", CacheBackendMemory:
		return httpcache.NewMemoryStore(), nil
	case CacheBackendFile:
		store, err := httpcache.NewFileStore(httpcache.DefaultPath())
		if err != nil {
			return nil, fmt.Errorf("failed to open file cache: %w", err)
		}

		return store, nil
	}

	return nil, errInvalidEnum("cache backend", backend, CacheBackendMemory, CacheBackendFile)
}

// Accounts returns the account module client.
func (c *Client) Accounts() *AccountsClient {
	if c.accounts == nil {
		c.accounts = &AccountsClient{caller: newCaller(c.apiKey, "account", c.transport)}
	}

	return c.accounts
}

// Blocks returns the block module client.
func (c *Client) Blocks() *BlocksClient {
	if c.blocks == nil {
		c.blocks = &BlocksClient{caller: newCaller(c.apiKey, "block", c.transport)}
	}

	return c.blocks
}

// Contracts returns the contract module client.
func (c *Client) Contracts() *ContractsClient {
	if c.contracts == nil {
		c.contracts = &ContractsClient{caller: newCaller(c.apiKey, "contract", c.transport)}
	}

	return c.contracts
}

// Transactions returns the transaction module client.
func (c *Client) Transactions() *TransactionsClient {
	if c.transactions == nil {
		c.transactions = &TransactionsClient{caller: newCaller(c.apiKey, "transaction", c.transport)}
	}

	return c.transactions
}

// Logs returns the event log module client.
func (c *Client) Logs() *LogsClient {
	if c.logs == nil {
		c.logs = &LogsClient{caller: newCaller(c.apiKey, "logs", c.transport)}
	}

	return c.logs
}

// Proxy returns the geth/parity JSON-RPC proxy module client.
func (c *Client) Proxy() *ProxyClient {
	if c.proxy == nil {
		c.proxy = &ProxyClient{caller: newCaller(c.apiKey, "proxy", c.transport)}
	}

	return c.proxy
}

// Stats returns the network statistics module client.
func (c *Client) Stats() *StatsClient {
	if c.stats == nil {
		c.stats = &StatsClient{caller: newCaller(c.apiKey, "stats", c.transport)}
	}

	return c.stats
}

// Tokens returns the token module client. The vendor routes token
// endpoints through the account module, so that is the module name the
// client carries.
func (c *Client) Tokens() *TokensClient {
	if c.tokens == nil {
		c.tokens = &TokensClient{caller: newCaller(c.apiKey, "account", c.transport)}
	}

	return c.tokens
}

// GasTracker returns the gas tracker module client.
func (c *Client) GasTracker() *GasTrackerClient {
	if c.gasTracker == nil {
		c.gasTracker = &GasTrackerClient{caller: newCaller(c.apiKey, "gastracker", c.transport)}
	}

	return c.gasTracker
}
