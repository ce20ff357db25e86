// Package etherscan is a client for the Etherscan HTTP API.
//
// Files:
//
//	client.go      - root Client, configuration, network selection, API key resolution
//	session.go     - per-module parameter session (reset after every request)
//	transport.go   - form-encoded POST transport with response caching
//	normalize.go   - vendor field name and value normalization
//	accounts.go    - account module (balances, transaction listings)
//	blocks.go      - block module (rewards, countdown, block number by time)
//	contracts.go   - contract module (ABI, verified source)
//	transactions.go- transaction module (execution/receipt status)
//	logs.go        - event log module
//	proxy.go       - geth/parity JSON-RPC proxy module
//	stats.go       - network statistics module
//	tokens.go      - token balance and transfer listings
//	gastracker.go  - gas oracle and confirmation estimates
//	history.go     - day-windowed transaction history walker
//
// Usage:
//
//	client, err := etherscan.NewClient(etherscan.Config{APIKey: "..."})
//	balance, err := client.Accounts().Balance(ctx, "0x...")
//
// A Client and its module clients are safe for sequential reuse, but a
// single module client must not serve overlapping calls from multiple
// goroutines; give each concurrent caller its own Client.
package etherscan
