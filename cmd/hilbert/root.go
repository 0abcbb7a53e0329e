package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Jsewill/hilbert"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	logLevel  string
	logFormat string
	width     string
}

func newRootCommand() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:          "hilbert",
		Short:        "Convert between grid coordinates and Hilbert indices",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "text", "log format: text or json")
	cmd.PersistentFlags().StringVar(&g.width, "width", "", "index width, uint8 to uint128 (default: narrowest that fits)")

	cmd.AddCommand(
		newEncodeCommand(g),
		newDecodeCommand(g),
		newOrderCommand(g),
		newTableCommand(g),
	)
	return cmd
}

// options turns the persistent flags into curve options. Logs go to w.
func (g *globalFlags) options(w io.Writer) ([]hilbert.Option, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", g.logLevel, err)
	}
	var logger *hilbert.Logger
	switch g.logFormat {
	case "text":
		logger = hilbert.NewTextLogger(w, level)
	case "json":
		logger = hilbert.NewJSONLogger(w, level)
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", g.logFormat)
	}
	opts := []hilbert.Option{hilbert.WithLogger(logger)}
	if g.width != "" {
		width, err := hilbert.ParseWidth(g.width)
		if err != nil {
			return nil, err
		}
		opts = append(opts, hilbert.WithIndexWidth(width))
	}
	return opts, nil
}
