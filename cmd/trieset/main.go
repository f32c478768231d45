package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
)

type cli struct {
	LogLevel slog.Level `help:"Log level (debug, info, warn, error)." default:"info" env:"TRIESET_LOG_LEVEL"`

	Load     loadCmd     `cmd:"" help:"Build a set from keys and report its shape."`
	Fuzz     fuzzCmd     `cmd:"" help:"Mirror random adds and removes against a reference set."`
	Datasets datasetsCmd `cmd:"" help:"List the bundled key datasets."`
}

func main() {
	level := new(slog.LevelVar)
	tintOpts := &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, tintOpts)))

	var flags cli
	ctx := kong.Parse(&flags,
		kong.Name("trieset"),
		kong.Description("Inspect and exercise radix trie backed sets."),
		kong.UsageOnError(),
	)
	level.Set(flags.LogLevel)

	ctx.BindTo(os.Stdout, (*io.Writer)(nil))
	if err := ctx.Run(); err != nil {
		slog.Error("command failed", "cmd", ctx.Command(), "err", err)
		os.Exit(1)
	}
}
