package mlp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/warp/internal/mlp"
	"github.com/born-ml/warp/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBuild_AffineCount(t *testing.T) {
	for hidden := 1; hidden <= 8; hidden++ {
		for _, width := range []int{1, 3, 32} {
			spec := mlp.Spec{InputDim: 2, OutputDim: 1, HiddenLayers: hidden, HiddenWidth: width, Activation: nn.Tanh}
			net, err := mlp.Build(spec)
			require.NoError(t, err)

			if got := len(net.AffineLayers()); got != hidden+1 {
				t.Errorf("Build(%v) has %d affine layers, want %d", spec, got, hidden+1)
			}
			assert.Equal(t, spec.NumAffine(), len(net.AffineLayers()))
		}
	}
}

// TestBuild_LayerSequence tests alternation, chaining and the bare output layer.
func TestBuild_LayerSequence(t *testing.T) {
	spec := mlp.Spec{InputDim: 2, OutputDim: 3, HiddenLayers: 3, HiddenWidth: 5, Activation: nn.ReLU}
	net := mlp.MustBuild(spec)

	layers := net.Layers()
	require.Len(t, layers, 2*spec.HiddenLayers+1)

	for i, layer := range layers {
		if i%2 == 1 {
			act, ok := layer.(*nn.Activation)
			require.True(t, ok, "layer %d should be an activation, got %T", i, layer)
			assert.Equal(t, nn.ReLU, act.Kind())
			continue
		}
		_, ok := layer.(*nn.Linear)
		require.True(t, ok, "layer %d should be affine, got %T", i, layer)
	}

	// Last layer is affine with no trailing activation.
	_, ok := layers[len(layers)-1].(*nn.Linear)
	assert.True(t, ok)

	affine := net.AffineLayers()
	assert.Equal(t, spec.InputDim, affine[0].InFeatures())
	assert.Equal(t, spec.OutputDim, affine[len(affine)-1].OutFeatures())
	for i := 1; i < len(affine); i++ {
		assert.Equal(t, affine[i-1].OutFeatures(), affine[i].InFeatures(), "dimension break between affine %d and %d", i-1, i)
	}

	// 2*5+5 + 5*5+5 + 5*5+5 + 5*3+3
	assert.Equal(t, 15+30+30+18, net.NumParameters())
	assert.Len(t, net.Parameters(), 2*len(affine))
}

// TestBuild_HiddenBlocksAreNested tests that hidden blocks are sub-containers
// and are still reached by the affine handle list.
func TestBuild_HiddenBlocksAreNested(t *testing.T) {
	net := mlp.MustBuild(mlp.Spec{InputDim: 1, OutputDim: 1, HiddenLayers: 2, HiddenWidth: 4, Activation: nn.Tanh})

	root := net.Root()
	require.Equal(t, 3, root.Len())
	block, ok := root.Module(0).(*nn.Sequential)
	require.True(t, ok)
	assert.Same(t, block.Module(0), net.AffineLayers()[0])
}

func TestBuild_UnsupportedActivation(t *testing.T) {
	net, err := mlp.Build(mlp.Spec{InputDim: 1, OutputDim: 1, HiddenLayers: 1, HiddenWidth: 32, Activation: nn.ActivationKind(5)})
	require.Error(t, err)
	assert.Nil(t, net, "no partial network on failure")

	var cfgErr *mlp.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "activation", cfgErr.Field)
	assert.ErrorIs(t, err, nn.ErrUnsupportedActivation)

	assert.Panics(t, func() {
		mlp.MustBuild(mlp.Spec{InputDim: 1, OutputDim: 1, HiddenLayers: 1, HiddenWidth: 1, Activation: -1})
	})
}

func TestBuild_SupportedActivations(t *testing.T) {
	for _, kind := range []nn.ActivationKind{nn.Tanh, nn.ReLU} {
		_, err := mlp.Build(mlp.Spec{InputDim: 1, OutputDim: 1, HiddenLayers: 1, HiddenWidth: 8, Activation: kind})
		assert.NoError(t, err, "activation %v", kind)
	}
}

// Scenario: NetworkSpec(1, 1, 3, 32, Tanh) on [0.0] gives one finite output.
func TestScenario_OneDimensional(t *testing.T) {
	spec, err := mlp.NewSpec(1, 1, 3, 32, "tanh")
	require.NoError(t, err)

	net, err := mlp.Build(spec)
	require.NoError(t, err)
	mlp.Reinitialize(net)

	outputs := net.Evaluate([][]float64{{0.0}})
	require.Len(t, outputs, 1)
	require.Len(t, outputs[0], 1)
	assert.False(t, math.IsNaN(outputs[0][0]) || math.IsInf(outputs[0][0], 0), "output %v is not finite", outputs[0][0])
}

// Scenario: NetworkSpec(1, 1, 1, 32, "sigmoid") fails at construction.
func TestScenario_Sigmoid(t *testing.T) {
	_, err := mlp.NewSpec(1, 1, 1, 32, "sigmoid")
	require.Error(t, err)

	var cfgErr *mlp.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "sigmoid", cfgErr.Value)
	assert.ErrorIs(t, err, nn.ErrUnsupportedActivation)
}

// Scenario: zero hidden layers is a direct input -> output affine map.
func TestScenario_ZeroHiddenLayers(t *testing.T) {
	net, err := mlp.Build(mlp.Spec{InputDim: 2, OutputDim: 3, HiddenLayers: 0, HiddenWidth: 32, Activation: nn.Tanh})
	require.NoError(t, err)

	layers := net.Layers()
	require.Len(t, layers, 1)
	l, ok := layers[0].(*nn.Linear)
	require.True(t, ok)
	assert.Equal(t, 2, l.InFeatures())
	assert.Equal(t, 3, l.OutFeatures())

	// No activation: output is exactly affine.
	copy(l.Weight().Data(), []float64{1, 0, 0, 1, 2, -2})
	copy(l.Bias().Data(), []float64{10, 20, 30})
	got := net.Forward(mat.NewDense(1, 2, []float64{5, 7}))
	want := mat.NewDense(1, 3, []float64{15, 27, 26})
	assert.True(t, mat.EqualApprox(got, want, 1e-12), "got %v", mat.Formatted(got))
}

func TestNetwork_EvaluateMatchesForward(t *testing.T) {
	net := mlp.MustBuild(mlp.Spec{InputDim: 2, OutputDim: 2, HiddenLayers: 2, HiddenWidth: 6, Activation: nn.Tanh})
	mlp.Reinitialize(net)

	inputs := [][]float64{{0, 0}, {0.5, -0.5}, {-1, 1}}
	outputs := net.Evaluate(inputs)
	require.Len(t, outputs, len(inputs))

	for i, x := range inputs {
		single := net.Forward(mat.NewDense(1, 2, x))
		assert.InDeltaSlice(t, mat.Row(nil, 0, single), outputs[i], 1e-12, "input %d", i)
	}

	assert.Nil(t, net.Evaluate(nil))
	assert.Panics(t, func() { net.Evaluate([][]float64{{1}}) })
}

func TestNetwork_String(t *testing.T) {
	net := mlp.MustBuild(mlp.Spec{InputDim: 1, OutputDim: 1, HiddenLayers: 1, HiddenWidth: 2, Activation: nn.ReLU})
	want := "mlp(in=1, out=1, hidden=1x2, act=relu) 7 params\n" +
		"Sequential(\n" +
		"  (0): Sequential(\n" +
		"    (0): Linear(1 -> 2)\n" +
		"    (1): ReLU()\n" +
		"  )\n" +
		"  (1): Linear(2 -> 1)\n" +
		")"
	assert.Equal(t, want, net.String())
}
