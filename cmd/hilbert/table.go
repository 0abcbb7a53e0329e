package main

import (
	"fmt"
	"strings"

	"github.com/Jsewill/hilbert"
	"github.com/spf13/cobra"
)

func newTableCommand(g *globalFlags) *cobra.Command {
	f := &curveFlags{algorithm: "simple2d", bits: 3}
	cmd := &cobra.Command{
		Use:   "table [flags]",
		Short: "Print the index of every cell of a 2^bits square, one row per x",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.bits < 1 || f.bits > 8 {
				return fmt.Errorf("table: --bits %d is outside [1, 8]", f.bits)
			}
			f.dims = 2
			f.axisBits = nil
			c, err := f.curve(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			rows, err := indexTable(c, 1<<uint(f.bits), f.oneBased)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatTable(rows))
			return err
		},
	}
	f.register(cmd.Flags())
	_ = cmd.Flags().MarkHidden("dims")
	_ = cmd.Flags().MarkHidden("axis-bits")
	return cmd
}

func indexTable(c hilbert.Curve, side uint64, oneBased bool) ([][]string, error) {
	rows := make([][]string, side)
	base := uint64(0)
	if oneBased {
		base = 1
	}
	for x := uint64(0); x < side; x++ {
		rows[x] = make([]string, side)
		for y := uint64(0); y < side; y++ {
			h, err := c.EncodeZero([]uint64{x, y})
			if err != nil {
				return nil, err
			}
			rows[x][y] = h.Add64(base).String()
		}
	}
	return rows, nil
}

func formatTable(rows [][]string) string {
	width := 0
	for _, row := range rows {
		for _, cell := range row {
			width = max(width, len(cell))
		}
	}
	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", width, cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
