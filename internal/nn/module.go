// Package nn implements the layer building blocks used by warp networks.
//
// This package provides:
//   - Module interface: Base interface for all layers and containers
//   - Parameter: Named, in-place mutable weight or bias matrix
//   - Linear: Fully connected (affine) layer
//   - Activation: Tanh or ReLU, selected by a tagged ActivationKind
//   - Sequential: Container for stacking modules, possibly nested
//   - Walk/Apply: Depth-first structural traversal of a module tree
//
// All numeric storage is gonum's *mat.Dense; batches are row-major,
// one sample per row.
package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build complex architectures:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 32),
//	    nn.MustActivation(nn.Tanh),
//	    nn.NewLinear(32, 1),
//	)
type Module interface {
	// Forward computes the output of the module for a batch of inputs.
	//
	// The input has shape [batch_size, in_features]. The input is never
	// modified; a newly allocated matrix is returned.
	Forward(input mat.Matrix) *mat.Dense

	// Parameters returns all learnable parameters of this module,
	// including those of nested modules. Activations return nil.
	Parameters() []*Parameter
}

// Container is implemented by modules that hold child modules.
type Container interface {
	Module

	// Modules returns the direct children in evaluation order.
	Modules() []Module
}

// Walk visits m and every module nested below it, depth-first and in
// evaluation order. Returning false from fn skips the children of the
// module just visited.
func Walk(m Module, fn func(Module) bool) {
	if !fn(m) {
		return
	}
	if c, ok := m.(Container); ok {
		for _, child := range c.Modules() {
			Walk(child, fn)
		}
	}
}

// Apply calls fn on every module of the tree rooted at m, including m.
func Apply(m Module, fn func(Module)) {
	Walk(m, func(mod Module) bool {
		fn(mod)
		return true
	})
}

// Leaves returns the non-container modules under m in evaluation order.
func Leaves(m Module) []Module {
	var leaves []Module
	Apply(m, func(mod Module) {
		if _, ok := mod.(Container); !ok {
			leaves = append(leaves, mod)
		}
	})
	return leaves
}
