// Package mlp builds randomly initialized multilayer perceptrons.
//
// A network is described by a Spec, constructed once with Build and then
// redrawn any number of times with an Initializer before being evaluated
// over a fixed set of inputs.
package mlp

import (
	"fmt"

	"github.com/born-ml/warp/internal/nn"
)

// Spec describes the shape of a fully connected network.
//
// Only the activation is validated; dimensions are the caller's
// responsibility.
type Spec struct {
	InputDim     int
	OutputDim    int
	HiddenLayers int
	HiddenWidth  int
	Activation   nn.ActivationKind
}

// NewSpec is a convenience constructor that resolves the activation by
// name, e.g. NewSpec(2, 1, 7, 32, "tanh").
func NewSpec(inputDim, outputDim, hiddenLayers, hiddenWidth int, activation string) (Spec, error) {
	kind, err := nn.ParseActivation(activation)
	if err != nil {
		return Spec{}, &ConfigurationError{Field: "activation", Value: activation, Err: err}
	}
	return Spec{
		InputDim:     inputDim,
		OutputDim:    outputDim,
		HiddenLayers: hiddenLayers,
		HiddenWidth:  hiddenWidth,
		Activation:   kind,
	}, nil
}

// NumAffine returns the number of affine layers Build emits for s.
func (s Spec) NumAffine() int {
	if s.HiddenLayers <= 0 {
		return 1
	}
	return s.HiddenLayers + 1
}

func (s Spec) String() string {
	return fmt.Sprintf("mlp(in=%d, out=%d, hidden=%dx%d, act=%v)",
		s.InputDim, s.OutputDim, s.HiddenLayers, s.HiddenWidth, s.Activation)
}
