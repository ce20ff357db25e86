package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Show the current ETH price",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		price, err := client.Stats().EthPrice(cmd.Context())
		if err != nil {
			color.Red("Failed to fetch the ETH price")

			return err
		}

		fmt.Printf(
			"ETH/USD %.2f (as of %s)\n",
			price.EthUsd,
			time.Unix(price.EthUsdTimestamp, 0).Format(time.RFC3339),
		)
		fmt.Printf(
			"ETH/BTC %.6f (as of %s)\n",
			price.EthBtc,
			time.Unix(price.EthBtcTimestamp, 0).Format(time.RFC3339),
		)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(priceCmd)
}
