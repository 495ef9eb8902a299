package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/matthewmueller/lmtranslate/internal/cli"
	"github.com/matthewmueller/logs"
)

func main() {
	ctx := context.Background()
	log := logs.Default()
	os.Exit(run(ctx, log))
}

func run(ctx context.Context, log *slog.Logger) int {
	cli := cli.New(log)
	return cli.Run(ctx, os.Args[1:]...)
}
