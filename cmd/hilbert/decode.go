package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Jsewill/hilbert"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"lukechampine.com/uint128"
)

func newDecodeCommand(g *globalFlags) *cobra.Command {
	f := newCurveFlags()
	cmd := &cobra.Command{
		Use:   "decode [flags] INDEX",
		Short: "Print the coordinate vector at an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.curve(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			h, err := uint128.FromString(args[0])
			if err != nil {
				return fmt.Errorf("index %q: %w", args[0], err)
			}
			decode := hilbert.DecodeZero
			if f.oneBased {
				decode = hilbert.DecodeOne
			}
			x, err := decode(c, h)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatCoords(x))
			return err
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func formatCoords(x []uint64) string {
	return strings.Join(lo.Map(x, func(v uint64, _ int) string {
		return strconv.FormatUint(v, 10)
	}), " ")
}
