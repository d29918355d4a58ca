package mlp

import (
	"github.com/born-ml/warp/internal/nn"
	"golang.org/x/exp/rand"
)

// Default weight distribution used by Reinitialize.
const (
	DefaultMean   = 0.0
	DefaultStdDev = 0.5
)

// Initializer redraws the weights and biases of a network from a normal
// distribution.
type Initializer struct {
	mean float64
	std  float64
	src  rand.Source
}

// InitOption configures an Initializer.
type InitOption func(*Initializer)

// WithMean sets the mean of the weight distribution.
func WithMean(mean float64) InitOption {
	return func(i *Initializer) { i.mean = mean }
}

// WithStdDev sets the standard deviation of the weight distribution.
func WithStdDev(std float64) InitOption {
	return func(i *Initializer) { i.std = std }
}

// WithSource draws from src instead of the global source, making the
// sequence of draws reproducible.
func WithSource(src rand.Source) InitOption {
	return func(i *Initializer) { i.src = src }
}

// NewInitializer returns an Initializer drawing from N(0, 0.5) unless
// overridden by opts.
func NewInitializer(opts ...InitOption) *Initializer {
	i := &Initializer{mean: DefaultMean, std: DefaultStdDev}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Reinitialize resamples every weight and bias of net element-wise and
// independently, in place. Activation layers are untouched and no
// parameter changes shape. Each call overwrites the previous draw.
func (i *Initializer) Reinitialize(net *Network) {
	draw := nn.Normal(i.mean, i.std, i.src)
	for _, l := range net.AffineLayers() {
		l.Weight().Fill(draw)
		l.Bias().Fill(draw)
	}
}

// Reinitialize redraws net from N(0, 0.5) using the global source.
func Reinitialize(net *Network) {
	NewInitializer().Reinitialize(net)
}
