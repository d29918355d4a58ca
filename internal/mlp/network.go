package mlp

import (
	"fmt"

	"github.com/born-ml/warp/internal/nn"
	"gonum.org/v1/gonum/mat"
)

// Network is a fully connected feed-forward network built from a Spec.
//
// The layer tree is a root Sequential holding one nested Sequential per
// hidden block followed by the output Linear. Handles to every Linear are
// collected once, at construction, so reinitialization never re-walks the
// tree.
//
// A Network is owned by a single goroutine.
type Network struct {
	spec   Spec
	root   *nn.Sequential
	affine []*nn.Linear
}

func newNetwork(spec Spec, root *nn.Sequential) *Network {
	n := &Network{spec: spec, root: root}
	nn.Apply(root, func(m nn.Module) {
		if l, ok := m.(*nn.Linear); ok {
			n.affine = append(n.affine, l)
		}
	})
	return n
}

// Spec returns the spec the network was built from.
func (n *Network) Spec() Spec {
	return n.spec
}

// Root returns the root container of the layer tree.
func (n *Network) Root() *nn.Sequential {
	return n.root
}

// AffineLayers returns the affine layers in evaluation order.
func (n *Network) AffineLayers() []*nn.Linear {
	return n.affine
}

// Layers returns the leaf modules (affine and activation) in evaluation
// order.
func (n *Network) Layers() []nn.Module {
	return nn.Leaves(n.root)
}

// Parameters returns every weight and bias in evaluation order.
func (n *Network) Parameters() []*nn.Parameter {
	return n.root.Parameters()
}

// NumParameters returns the total number of scalar parameters.
func (n *Network) NumParameters() int {
	total := 0
	for _, p := range n.Parameters() {
		total += p.Len()
	}
	return total
}

// Forward evaluates a batch of inputs, one sample per row.
//
// Input shape: [batch_size, InputDim]
// Output shape: [batch_size, OutputDim]
func (n *Network) Forward(input mat.Matrix) *mat.Dense {
	return n.root.Forward(input)
}

// Evaluate runs every input vector through the network and returns one
// output vector per input, in order.
//
// Each input must have length InputDim.
func (n *Network) Evaluate(inputs [][]float64) [][]float64 {
	if len(inputs) == 0 {
		return nil
	}

	batch := mat.NewDense(len(inputs), n.spec.InputDim, nil)
	for i, x := range inputs {
		if len(x) != n.spec.InputDim {
			panic(fmt.Sprintf("Network.Evaluate: input %d has length %d, want %d", i, len(x), n.spec.InputDim))
		}
		batch.SetRow(i, x)
	}

	output := n.Forward(batch)
	outputs := make([][]float64, len(inputs))
	for i := range outputs {
		outputs[i] = mat.Row(nil, i, output)
	}
	return outputs
}

// String renders the spec and layer tree.
func (n *Network) String() string {
	return fmt.Sprintf("%v %d params\n%v", n.spec, n.NumParameters(), n.root)
}
