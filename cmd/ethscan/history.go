package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var flagHistoryStart string

var historyCmd = &cobra.Command{
	Use:   "history <address>",
	Short: "Walk the transaction history of an address, one day at a time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.Parse(time.DateOnly, flagHistoryStart)
		if err != nil {
			return fmt.Errorf("failed to parse --start date '%s': %w", flagHistoryStart, err)
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		address := args[0]
		walker := client.History(address, start)

		var total int
		for !walker.Done() {
			page, err := walker.Next(ctx)
			if err != nil {
				color.Red("History walk failed for %s", address)

				return err
			}

			slog.InfoContext(ctx, "Fetched history window", "transactions", len(page))

			for _, record := range page {
				fmt.Printf("%v %v -> %v value=%v\n",
					record["hash"], record["from"], record["to"], record["value"])
			}
			total += len(page)
		}

		color.Green("%d transactions since %s", total, flagHistoryStart)

		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryStart, "start", "", "start date (YYYY-MM-DD)")
	_ = historyCmd.MarkFlagRequired("start")
	rootCmd.AddCommand(historyCmd)
}
