package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/secmon-lab/idwatch/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		slog.Error("idwatch failed", "error", err)
		os.Exit(1)
	}
}
