// Package main provides the warp CLI.
//
// warp builds a randomly initialized multilayer perceptron, redraws its
// weights several times and writes the network outputs over a 1D line or
// 2D grid of inputs as CSV, ready for a plotting tool.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/born-ml/warp/internal/export"
	"github.com/born-ml/warp/internal/mlp"
	"github.com/born-ml/warp/internal/sample"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("warp: ")

	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("warp %s\n", version)
		return
	}

	cfg, err := ParseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	out := io.Writer(os.Stdout)
	if cfg.Output != "-" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			log.Fatalf("Failed to create output: %v", err)
		}
		defer f.Close()
		out = f
	}

	if err := run(cfg, out, log.Default()); err != nil {
		log.Fatal(err)
	}
}

// run builds the network described by cfg, evaluates every draw over the
// sample set and writes the CSV to out.
func run(cfg *Config, out io.Writer, logger *log.Logger) error {
	spec, err := cfg.Validate()
	if err != nil {
		return err
	}

	net, err := mlp.Build(spec)
	if err != nil {
		return errors.Wrap(err, "build network")
	}
	logger.Printf("built %v (%d parameters)", spec, net.NumParameters())

	opts := []mlp.InitOption{mlp.WithStdDev(cfg.StdDev)}
	if cfg.Seed != 0 {
		opts = append(opts, mlp.WithSource(rand.NewSource(cfg.Seed)))
	}
	initializer := mlp.NewInitializer(opts...)

	inputs := sample.For(spec.InputDim, cfg.Lo, cfg.Hi, cfg.Samples)
	draws := make([]export.Draw, cfg.Draws)
	for i := range draws {
		initializer.Reinitialize(net)
		draws[i] = export.Draw{Inputs: inputs, Outputs: net.Evaluate(inputs)}
	}
	logger.Printf("evaluated %d draws over %d samples", len(draws), len(inputs))

	return errors.Wrap(export.WriteCSV(out, draws), "write csv")
}
