package nn

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ActivationKind selects the element-wise nonlinearity of an Activation.
type ActivationKind int

// Supported activation kinds.
const (
	Tanh ActivationKind = iota
	ReLU
)

// String returns the lowercase name of the kind.
func (k ActivationKind) String() string {
	switch k {
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	default:
		return fmt.Sprintf("ActivationKind(%d)", int(k))
	}
}

// Valid reports whether k is a supported kind.
func (k ActivationKind) Valid() bool {
	return k == Tanh || k == ReLU
}

// ParseActivation resolves a name such as "tanh" or "ReLU" to its kind.
//
// Unknown names fail with ErrUnsupportedActivation.
func ParseActivation(name string) (ActivationKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tanh":
		return Tanh, nil
	case "relu":
		return ReLU, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedActivation, name)
	}
}

// Activation is a stateless element-wise nonlinearity.
//
// The kind is resolved to its function once, at construction.
//
// Example:
//
//	act, err := nn.NewActivation(nn.ReLU)
//	output := act.Forward(input) // All negative values become 0
type Activation struct {
	kind ActivationKind
	fn   func(float64) float64
}

// NewActivation creates the activation module for kind.
//
// Fails with ErrUnsupportedActivation if kind is not Tanh or ReLU.
func NewActivation(kind ActivationKind) (*Activation, error) {
	var fn func(float64) float64
	switch kind {
	case Tanh:
		fn = math.Tanh
	case ReLU:
		fn = relu
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedActivation, kind)
	}
	return &Activation{kind: kind, fn: fn}, nil
}

// MustActivation is like NewActivation but panics on an unsupported kind.
func MustActivation(kind ActivationKind) *Activation {
	a, err := NewActivation(kind)
	if err != nil {
		panic(err)
	}
	return a
}

// relu computes max(0, x).
func relu(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Forward applies the activation element-wise.
func (a *Activation) Forward(input mat.Matrix) *mat.Dense {
	var output mat.Dense
	output.Apply(func(_, _ int, v float64) float64 {
		return a.fn(v)
	}, input)
	return &output
}

// Parameters returns nil (activations have no learnable parameters).
func (a *Activation) Parameters() []*Parameter {
	return nil
}

// Kind returns the activation kind.
func (a *Activation) Kind() ActivationKind {
	return a.kind
}

// String returns e.g. "Tanh()".
func (a *Activation) String() string {
	switch a.kind {
	case ReLU:
		return "ReLU()"
	default:
		return "Tanh()"
	}
}
