package main

import (
	"io"

	"github.com/Jsewill/hilbert"
	"github.com/spf13/pflag"
)

// curveFlags are the flags every curve-building subcommand shares.
type curveFlags struct {
	algorithm string
	bits      int
	dims      int
	axisBits  []int
	oneBased  bool
}

func newCurveFlags() *curveFlags {
	return &curveFlags{algorithm: "globalgray", bits: 8, dims: 2}
}

// register binds the flags to fs, taking the current field values as
// defaults.
func (f *curveFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.algorithm, "algorithm", "a", f.algorithm, "curve: globalgray, spacegray, compact, facecontinuous, simple2d or zorder")
	fs.IntVarP(&f.bits, "bits", "b", f.bits, "bits per axis")
	fs.IntVarP(&f.dims, "dims", "n", f.dims, "number of axes")
	fs.IntSliceVar(&f.axisBits, "axis-bits", nil, "per-axis bits for compact, e.g. 4,4,10")
	fs.BoolVar(&f.oneBased, "one-based", false, "count coordinates and indices from 1")
}

func (f *curveFlags) curve(g *globalFlags, logs io.Writer) (hilbert.Curve, error) {
	alg, err := hilbert.ParseAlgorithm(f.algorithm)
	if err != nil {
		return nil, err
	}
	opts, err := g.options(logs)
	if err != nil {
		return nil, err
	}
	return hilbert.New(hilbert.Config{
		Algorithm: alg,
		Bits:      f.bits,
		Dims:      f.dims,
		AxisBits:  f.axisBits,
	}, opts...)
}
