package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Jsewill/hilbert"
	"github.com/spf13/cobra"
)

func newOrderCommand(g *globalFlags) *cobra.Command {
	var subdivisions int
	cmd := &cobra.Command{
		Use:   "order [flags] < points.csv",
		Short: "Print the Hilbert order of real-valued points read as CSV",
		Long: "Reads one point per CSV record from standard input and prints, one per\n" +
			"line, the zero-based record numbers in the order a GlobalGray curve visits\n" +
			"them after snapping every point onto a grid of --subdivisions cells per side.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := g.options(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			points, err := readPoints(cmd.InOrStdin())
			if err != nil {
				return err
			}
			perm, err := hilbert.Order(points, subdivisions, opts...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, i := range perm {
				if _, err := fmt.Fprintln(out, i); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&subdivisions, "subdivisions", "s", 256, "grid cells per side")
	return cmd
}

func readPoints(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	points := make([][]float64, len(records))
	for i, rec := range records {
		p := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("record %d field %d: %w", i, j, err)
			}
			p[j] = v
		}
		points[i] = p
	}
	return points, nil
}
