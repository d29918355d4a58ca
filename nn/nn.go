// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/warp/internal/nn"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Container is implemented by modules that hold child modules.
type Container = nn.Container

// Parameter represents a learnable weight or bias.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and values.
func NewParameter(name string, value *mat.Dense) *Parameter {
	return nn.NewParameter(name, value)
}

// Layers

// Linear represents a fully connected (affine) layer.
type Linear = nn.Linear

// NewLinear creates a new linear layer with Xavier initialization.
//
// Example:
//
//	layer := nn.NewLinear(2, 32)
func NewLinear(inFeatures, outFeatures int) *Linear {
	return nn.NewLinear(inFeatures, outFeatures)
}

// Activations

// ActivationKind selects Tanh or ReLU.
type ActivationKind = nn.ActivationKind

// Supported activation kinds.
const (
	Tanh = nn.Tanh
	ReLU = nn.ReLU
)

// ErrUnsupportedActivation is returned for activation kinds or names other
// than Tanh and ReLU.
var ErrUnsupportedActivation = nn.ErrUnsupportedActivation

// Activation is a stateless element-wise nonlinearity.
type Activation = nn.Activation

// NewActivation creates the activation module for kind.
//
// Example:
//
//	act, err := nn.NewActivation(nn.ReLU)
func NewActivation(kind ActivationKind) (*Activation, error) {
	return nn.NewActivation(kind)
}

// MustActivation is like NewActivation but panics on an unsupported kind.
func MustActivation(kind ActivationKind) *Activation {
	return nn.MustActivation(kind)
}

// ParseActivation resolves "tanh" or "relu" (any case) to its kind.
func ParseActivation(name string) (ActivationKind, error) {
	return nn.ParseActivation(name)
}

// Containers

// Sequential chains modules, feeding each output to the next module.
type Sequential = nn.Sequential

// NewSequential creates a new Sequential container.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 32),
//	    nn.MustActivation(nn.ReLU),
//	    nn.NewLinear(32, 1),
//	)
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Walk visits m and its nested modules depth-first. Returning false from
// fn skips the children of the current module.
func Walk(m Module, fn func(Module) bool) {
	nn.Walk(m, fn)
}

// Apply calls fn on every module of the tree rooted at m.
func Apply(m Module, fn func(Module)) {
	nn.Apply(m, fn)
}

// Leaves returns the non-container modules under m in evaluation order.
func Leaves(m Module) []Module {
	return nn.Leaves(m)
}

// Initialization

// Xavier returns a [rows, cols] matrix drawn from the Glorot uniform
// distribution.
func Xavier(fanIn, fanOut, rows, cols int, src rand.Source) *mat.Dense {
	return nn.Xavier(fanIn, fanOut, rows, cols, src)
}

// Zeros returns a zero-filled [rows, cols] matrix.
func Zeros(rows, cols int) *mat.Dense {
	return nn.Zeros(rows, cols)
}

// Normal returns a draw function sampling N(mean, std) from src.
func Normal(mean, std float64, src rand.Source) func() float64 {
	return nn.Normal(mean, std, src)
}

// InitNormal resamples every parameter under m from N(mean, std) in place.
func InitNormal(m Module, mean, std float64, src rand.Source) {
	nn.InitNormal(m, mean, std, src)
}
