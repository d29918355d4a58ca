// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mlp builds multilayer perceptrons with random weights.
//
// # Basic Usage
//
//	spec, err := mlp.NewSpec(2, 1, 7, 32, "tanh")
//	if err != nil {
//	    return err
//	}
//	net, err := mlp.Build(spec)
//	if err != nil {
//	    return err
//	}
//
//	inputs := [][]float64{{0.5, -0.5}}
//	for draw := 0; draw < 4; draw++ {
//	    mlp.Reinitialize(net)
//	    outputs := net.Evaluate(inputs)
//	    // plot outputs
//	}
package mlp

import (
	"github.com/born-ml/warp/internal/mlp"
	"golang.org/x/exp/rand"
)

// Spec describes the shape of a fully connected network.
type Spec = mlp.Spec

// NewSpec builds a Spec, resolving the activation by name.
func NewSpec(inputDim, outputDim, hiddenLayers, hiddenWidth int, activation string) (Spec, error) {
	return mlp.NewSpec(inputDim, outputDim, hiddenLayers, hiddenWidth, activation)
}

// Network is a fully connected feed-forward network.
type Network = mlp.Network

// ConfigurationError reports a Spec that cannot be built.
type ConfigurationError = mlp.ConfigurationError

// Build constructs the network described by spec.
//
// HiddenLayers == 0 yields a single affine map from input to output.
func Build(spec Spec) (*Network, error) {
	return mlp.Build(spec)
}

// MustBuild is like Build but panics on error.
func MustBuild(spec Spec) *Network {
	return mlp.MustBuild(spec)
}

// Initializer redraws network weights from a normal distribution.
type Initializer = mlp.Initializer

// InitOption configures an Initializer.
type InitOption = mlp.InitOption

// Default weight distribution.
const (
	DefaultMean   = mlp.DefaultMean
	DefaultStdDev = mlp.DefaultStdDev
)

// NewInitializer returns an Initializer drawing from N(0, 0.5) by default.
func NewInitializer(opts ...InitOption) *Initializer {
	return mlp.NewInitializer(opts...)
}

// WithMean sets the mean of the weight distribution.
func WithMean(mean float64) InitOption {
	return mlp.WithMean(mean)
}

// WithStdDev sets the standard deviation of the weight distribution.
func WithStdDev(std float64) InitOption {
	return mlp.WithStdDev(std)
}

// WithSource makes draws reproducible.
func WithSource(src rand.Source) InitOption {
	return mlp.WithSource(src)
}

// Reinitialize redraws every weight and bias of net from N(0, 0.5).
func Reinitialize(net *Network) {
	mlp.Reinitialize(net)
}
