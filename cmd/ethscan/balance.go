package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	etherscan "github.com/neoctobers/etherscan-go"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Show the ETH balance of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		address := args[0]
		balance, err := client.Accounts().Balance(cmd.Context(), address)
		if err != nil {
			color.Red("Failed to fetch balance for %s", address)

			return err
		}

		color.Green("%s ETH", etherscan.WeiToEther(balance).String())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
