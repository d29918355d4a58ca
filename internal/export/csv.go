// Package export renders network evaluations for plotting tools.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Draw is one random initialization of a network evaluated over a fixed
// input set. Outputs[i] is the network output for Inputs[i].
type Draw struct {
	Inputs  [][]float64
	Outputs [][]float64
}

// WriteCSV writes draws as CSV with header "draw,x0,...,y0,...", one row
// per (draw, sample). Column counts come from the first sample of the
// first draw.
func WriteCSV(w io.Writer, draws []Draw) error {
	if len(draws) == 0 || len(draws[0].Inputs) == 0 {
		return nil
	}

	for d, draw := range draws {
		if len(draw.Inputs) != len(draw.Outputs) {
			return fmt.Errorf("export: draw %d has %d inputs but %d outputs", d, len(draw.Inputs), len(draw.Outputs))
		}
	}

	inDim := len(draws[0].Inputs[0])
	outDim := len(draws[0].Outputs[0])

	cw := csv.NewWriter(w)

	header := make([]string, 0, 1+inDim+outDim)
	header = append(header, "draw")
	for i := 0; i < inDim; i++ {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	for i := 0; i < outDim; i++ {
		header = append(header, fmt.Sprintf("y%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for d, draw := range draws {
		for i, x := range draw.Inputs {
			y := draw.Outputs[i]
			if len(x) != inDim || len(y) != outDim {
				return fmt.Errorf("export: draw %d sample %d has shape (%d, %d), want (%d, %d)", d, i, len(x), len(y), inDim, outDim)
			}

			record = record[:0]
			record = append(record, strconv.Itoa(d))
			for _, v := range x {
				record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
			}
			for _, v := range y {
				record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
