package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/manifoldco/promptui"
	etherscan "github.com/neoctobers/etherscan-go"
	"github.com/neoctobers/etherscan-go/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagConfigFile   string
	flagNetwork      string
	flagAPIKey       string
	flagCacheBackend string
	flagCacheTTL     time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ethscan",
	Short: "Query the Etherscan API from the command line",
	Long: `ethscan is a thin command-line front end for the Etherscan API.

It resolves the API key from --api-key, the ETHERSCAN_KEY environment
variable, the configuration file, or an interactive prompt, in that
order, and caches API responses locally.

Examples:
  ethscan balance 0x383518188c0c6d7730d91b2c03a03c837814a899
  ethscan price
  ethscan history 0x3835...4899 --start 2021-11-25`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&flagNetwork, "network", "", "etherscan network (mainnet, ropsten, kovan, rinkeby)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "etherscan API key")
	rootCmd.PersistentFlags().StringVar(&flagCacheBackend, "cache-backend", "", "response cache backend (memory or file)")
	rootCmd.PersistentFlags().DurationVar(&flagCacheTTL, "ttl", 0, "response cache time-to-live (e.g. 30s)")
}

var errUserCanceled = errors.New("user canceled operation")

// newClient builds the API client from flags layered over the optional
// configuration file.
func newClient() (*etherscan.Client, error) {
	var fileCfg *config.File
	if flagConfigFile != "" {
		loaded, err := config.Load(flagConfigFile)
		if err != nil {
			return nil, err
		}
		fileCfg = loaded
	} else {
		fileCfg = &config.File{}
	}

	cfg := etherscan.Config{
		APIKey:       firstNonEmpty(flagAPIKey, fileCfg.APIKey),
		Network:      firstNonEmpty(flagNetwork, fileCfg.Network),
		CacheBackend: firstNonEmpty(flagCacheBackend, fileCfg.CacheBackend),
		CacheTTL:     flagCacheTTL,
		KeyPrompt:    promptAPIKey,
	}
	if cfg.CacheTTL == 0 && fileCfg.CacheTTLSeconds > 0 {
		cfg.CacheTTL = time.Duration(fileCfg.CacheTTLSeconds) * time.Second
	}

	client, err := etherscan.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build etherscan client: %w", err)
	}

	return client, nil
}

func promptAPIKey() (string, error) {
	keyPrompt := promptui.Prompt{
		Label: "Etherscan API key",
		Mask:  '*',
	}

	key, err := keyPrompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", errUserCanceled
		}

		return "", fmt.Errorf("API key prompt failed: %w", err)
	}

	return key, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
