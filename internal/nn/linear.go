package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Linear implements a fully connected (affine) layer.
//
// Performs the transformation: y = x @ W.T + b
// where:
//   - x is the input with shape [batch_size, in_features]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias row vector with shape [1, out_features]
//   - y is the output with shape [batch_size, out_features]
//
// Weights are initialized using Xavier/Glorot initialization.
// Biases are initialized to zeros.
//
// Example:
//
//	layer := nn.NewLinear(2, 32)
//	output := layer.Forward(mat.NewDense(8, 2, nil)) // shape: [8, 32]
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [out_features, in_features]
	bias        *Parameter // [1, out_features]
}

// NewLinear creates a new Linear layer.
//
// Weights are initialized using Xavier/Glorot uniform distribution.
// Biases are initialized to zeros.
func NewLinear(inFeatures, outFeatures int) *Linear {
	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", Xavier(inFeatures, outFeatures, outFeatures, inFeatures, nil)),
		bias:        NewParameter("bias", Zeros(1, outFeatures)),
	}
}

// Forward computes the output of the linear layer.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (l *Linear) Forward(input mat.Matrix) *mat.Dense {
	batch, features := input.Dims()
	if features != l.inFeatures {
		panic(fmt.Sprintf("Linear.Forward: expected input with %d features, got %d", l.inFeatures, features))
	}

	output := mat.NewDense(batch, l.outFeatures, nil)
	output.Mul(input, l.weight.Value().T())

	bias := l.bias.Value().RawRowView(0)
	output.Apply(func(_, j int, v float64) float64 {
		return v + bias[j]
	}, output)

	return output
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

// String describes the layer, e.g. "Linear(2 -> 32)".
func (l *Linear) String() string {
	return fmt.Sprintf("Linear(%d -> %d)", l.inFeatures, l.outFeatures)
}
