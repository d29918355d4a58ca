package main

import (
	"flag"
	"io"

	"github.com/born-ml/warp/internal/mlp"
	"github.com/pkg/errors"
)

// Config holds the command line configuration.
type Config struct {
	InputDim     int
	OutputDim    int
	HiddenLayers int
	HiddenWidth  int
	Activation   string

	Draws   int
	Samples int
	Lo, Hi  float64
	StdDev  float64
	Seed    uint64
	Output  string
}

// ParseConfig parses args (without the program name) into a Config.
func ParseConfig(args []string, stderr io.Writer) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("warp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.InputDim, "in", 1, "Input dimension (1 = line plot, 2 = surface)")
	fs.IntVar(&cfg.OutputDim, "out", 1, "Output dimension")
	fs.IntVar(&cfg.HiddenLayers, "hidden", 3, "Number of hidden layers (0 = direct affine map)")
	fs.IntVar(&cfg.HiddenWidth, "width", 32, "Width of each hidden layer")
	fs.StringVar(&cfg.Activation, "activation", "tanh", "Activation: tanh or relu")
	fs.IntVar(&cfg.Draws, "draws", 4, "Number of random weight draws")
	fs.IntVar(&cfg.Samples, "samples", 101, "Samples per input axis")
	fs.Float64Var(&cfg.Lo, "lo", -2, "Lower bound of the input range")
	fs.Float64Var(&cfg.Hi, "hi", 2, "Upper bound of the input range")
	fs.Float64Var(&cfg.StdDev, "std", mlp.DefaultStdDev, "Standard deviation of the weight distribution")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Random seed (0 = nondeterministic)")
	fs.StringVar(&cfg.Output, "o", "-", "Output CSV path (- = stdout)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}

// Validate checks the configuration and returns the network spec.
func (c *Config) Validate() (mlp.Spec, error) {
	spec, err := mlp.NewSpec(c.InputDim, c.OutputDim, c.HiddenLayers, c.HiddenWidth, c.Activation)
	if err != nil {
		return mlp.Spec{}, errors.Wrap(err, "invalid network")
	}

	switch {
	case c.InputDim <= 0:
		return mlp.Spec{}, errors.Errorf("input dimension must be positive, got %d", c.InputDim)
	case c.OutputDim <= 0:
		return mlp.Spec{}, errors.Errorf("output dimension must be positive, got %d", c.OutputDim)
	case c.HiddenLayers < 0:
		return mlp.Spec{}, errors.Errorf("hidden layer count must not be negative, got %d", c.HiddenLayers)
	case c.HiddenWidth <= 0:
		return mlp.Spec{}, errors.Errorf("hidden width must be positive, got %d", c.HiddenWidth)
	case c.Draws <= 0:
		return mlp.Spec{}, errors.Errorf("draws must be positive, got %d", c.Draws)
	case c.Samples < 2:
		return mlp.Spec{}, errors.Errorf("samples must be at least 2, got %d", c.Samples)
	case c.Lo >= c.Hi:
		return mlp.Spec{}, errors.Errorf("input range [%g, %g] is empty", c.Lo, c.Hi)
	case c.StdDev <= 0:
		return mlp.Spec{}, errors.Errorf("std must be positive, got %g", c.StdDev)
	}

	return spec, nil
}
