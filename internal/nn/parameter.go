package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Parameter represents a learnable parameter of a layer.
//
// A parameter is either a weight matrix or a bias row vector owned by
// exactly one Linear layer. Its values may be reassigned in place any
// number of times, but its shape is fixed at construction.
//
// Example:
//
//	weight := nn.NewParameter("weight", mat.NewDense(4, 2, nil))
//	rows, cols := weight.Dims()
//	weight.Fill(func() float64 { return 1 })
type Parameter struct {
	name  string     // Parameter name (e.g., "weight", "bias")
	value *mat.Dense // The parameter values
}

// NewParameter creates a new parameter backed by value.
//
// The parameter takes ownership of value; callers must not resize it.
func NewParameter(name string, value *mat.Dense) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter matrix.
func (p *Parameter) Value() *mat.Dense {
	return p.value
}

// Dims returns the parameter shape as (rows, cols).
func (p *Parameter) Dims() (r, c int) {
	return p.value.Dims()
}

// Len returns the number of scalar values held by the parameter.
func (p *Parameter) Len() int {
	r, c := p.value.Dims()
	return r * c
}

// Data returns the row-major backing slice of the parameter.
//
// Writes to the returned slice update the parameter.
func (p *Parameter) Data() []float64 {
	return p.value.RawMatrix().Data
}

// Fill overwrites every element with a fresh value from draw, row-major.
//
// The shape never changes.
func (p *Parameter) Fill(draw func() float64) {
	raw := p.value.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for j := range row {
			row[j] = draw()
		}
	}
}
