package mlp

import (
	"github.com/born-ml/warp/internal/nn"
)

// Build constructs the network described by spec.
//
// Layer sequence:
//  1. Linear(InputDim -> HiddenWidth), Activation
//  2. (HiddenLayers - 1) x [Linear(HiddenWidth -> HiddenWidth), Activation]
//  3. Linear(HiddenWidth -> OutputDim)
//
// With HiddenLayers == 0 the network is a single Linear(InputDim ->
// OutputDim) with no activation.
//
// Fails with a *ConfigurationError wrapping nn.ErrUnsupportedActivation if
// the activation is not Tanh or ReLU. Parameters start at the layer
// defaults until an Initializer runs.
func Build(spec Spec) (*Network, error) {
	if !spec.Activation.Valid() {
		_, err := nn.NewActivation(spec.Activation)
		return nil, &ConfigurationError{Field: "activation", Value: spec.Activation.String(), Err: err}
	}

	if spec.HiddenLayers <= 0 {
		return newNetwork(spec, nn.NewSequential(nn.NewLinear(spec.InputDim, spec.OutputDim))), nil
	}

	root := nn.NewSequential()
	in := spec.InputDim
	for i := 0; i < spec.HiddenLayers; i++ {
		root.Add(nn.NewSequential(
			nn.NewLinear(in, spec.HiddenWidth),
			nn.MustActivation(spec.Activation),
		))
		in = spec.HiddenWidth
	}
	root.Add(nn.NewLinear(spec.HiddenWidth, spec.OutputDim))

	return newNetwork(spec, root), nil
}

// MustBuild is like Build but panics on error.
func MustBuild(spec Spec) *Network {
	n, err := Build(spec)
	if err != nil {
		panic(err)
	}
	return n
}
