package nn

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input. Sequentials may
// be nested; Walk and Apply descend into them.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(1, 32),
//	    nn.MustActivation(nn.Tanh),
//	    nn.NewLinear(32, 1),
//	)
//
//	output := model.Forward(input)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
//
// An empty Sequential returns a copy of its input.
func (s *Sequential) Forward(input mat.Matrix) *mat.Dense {
	if len(s.modules) == 0 {
		return mat.DenseCopyOf(input)
	}

	output := s.modules[0].Forward(input)
	for _, module := range s.modules[1:] {
		output = module.Forward(output)
	}

	return output
}

// Parameters returns all learnable parameters from all modules, in order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter

	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}

	return params
}

// Modules returns the direct children of the container.
func (s *Sequential) Modules() []Module {
	return s.modules
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}

// String renders the container and its children, one per line.
func (s *Sequential) String() string {
	var b strings.Builder
	b.WriteString("Sequential(")
	for i, module := range s.modules {
		child := strings.ReplaceAll(fmt.Sprint(module), "\n", "\n  ")
		fmt.Fprintf(&b, "\n  (%d): %s", i, child)
	}
	if len(s.modules) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(")")
	return b.String()
}
