package main

import (
	stdslog "log/slog"
	"os"

	"github.com/neoctobers/etherscan-go/internal/logging/slog"
)

func main() {
	stdslog.SetDefault(stdslog.New(slog.NewHandler(os.Stderr, nil)))

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
