package quantity

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/BhaskerGarudadri/Physical/errors"
	"github.com/BhaskerGarudadri/Physical/unit"
)

// parallelThreshold is the array length above which elementwise transforms
// are split across workers. Elements are independent, so only the output
// index correspondence matters, and chunked writes into a preallocated slice
// preserve it.
const parallelThreshold = 4096

// Convert maps the quantity into a target unit of equal dimension. The scale
// factor is the ratio of the source composite's effective scale-to-canonical
// over the target's; for the single-term affine case the additive offsets are
// applied exactly once:
//
//	converted = (value*srcScale + srcOffset - tgtOffset) / tgtScale
//
// Conversion never changes the dimension vector, only the magnitude and the
// unit label.
func (q Quantity) Convert(target unit.Composite) (Quantity, error) {
	if !q.unit.Dimension().Commensurable(target.Dimension()) {
		return Quantity{}, errors.WrapInvalid(
			errors.ErrIncommensurableDimensions, "Quantity", "Convert",
			fmt.Sprintf("conversion of %s to %s", describeUnit(q.unit), describeUnit(target)))
	}
	if q.unit.Equal(target) {
		return q, nil
	}

	srcScale := q.unit.ScaleToCanonical()
	tgtScale := target.ScaleToCanonical()

	var srcOffset, tgtOffset float64
	if def, ok := q.unit.Affine(); ok {
		srcOffset = def.Offset
	}
	if def, ok := target.Affine(); ok {
		tgtOffset = def.Offset
	}

	vals := apply(q.values, func(v float64) float64 {
		return (v*srcScale + srcOffset - tgtOffset) / tgtScale
	})
	return Quantity{values: vals, scalar: q.scalar, unit: target}, nil
}

// apply transforms every element. Large arrays are chunked across
// GOMAXPROCS workers; the workers never fail, the errgroup only provides the
// join point.
func apply(in []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(in))
	if len(in) < parallelThreshold {
		for i, v := range in {
			out[i] = f(v)
		}
		return out
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(in) + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < len(in); start += chunk {
		start := start
		end := min(start+chunk, len(in))
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = f(in[i])
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}
