// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layers warp networks are made of.
//
// # Overview
//
// This package contains:
//   - Layers: Linear
//   - Activations: Tanh, ReLU (selected by ActivationKind)
//   - Utilities: Sequential, Module interface, Parameter, Walk, Apply
//   - Initialization: Xavier, Zeros, Normal, InitNormal
//
// # Basic Usage
//
//	import "github.com/born-ml/warp/nn"
//
//	func main() {
//	    model := nn.NewSequential(
//	        nn.NewLinear(1, 32),
//	        nn.MustActivation(nn.Tanh),
//	        nn.NewLinear(32, 1),
//	    )
//
//	    nn.InitNormal(model, 0, 0.5, nil)
//	    output := model.Forward(mat.NewDense(1, 1, []float64{0.3}))
//	}
//
// Inputs and outputs are gonum matrices with one sample per row.
package nn
