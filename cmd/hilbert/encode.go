package main

import (
	"fmt"
	"strconv"

	"github.com/Jsewill/hilbert"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newEncodeCommand(g *globalFlags) *cobra.Command {
	f := newCurveFlags()
	cmd := &cobra.Command{
		Use:   "encode [flags] X1 X2 ...",
		Short: "Print the index of a coordinate vector",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.curve(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			x, err := parseCoords(args)
			if err != nil {
				return err
			}
			encode := hilbert.EncodeZero
			if f.oneBased {
				encode = hilbert.EncodeOne
			}
			h, err := encode(c, x)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), h.String())
			return err
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func parseCoords(args []string) ([]uint64, error) {
	var firstErr error
	x := lo.Map(args, func(s string, i int) uint64 {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("coordinate %d: %w", i, err)
		}
		return v
	})
	return x, firstErr
}
