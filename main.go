package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"picto/mangle"
	"picto/orient"
	"picto/parallel"
)

type CLI struct {
	Workers int  `help:"Number of pictures processed concurrently, 0 uses every CPU" default:"0"`
	Verbose bool `help:"Log debug messages" short:"v"`

	Mangle mangle.CLICmd `cmd:"" help:"Resize, transform and repalette every picture in a folder"`
	Orient orient.CLICmd `cmd:"" help:"Turn pictures so they all share one orientation"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("picto"),
		kong.Description("Batch picture processing."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	pool := parallel.Start(cli.Workers)
	if err := kctx.Run(pool); err != nil {
		slog.Error("failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
