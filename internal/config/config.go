// Package config builds networks from declarative YAML topology
// descriptions.
//
// A description names the dense layer dimensions, the activation applied
// after each, the weight initializer, and a seed:
//
//	init: xavier
//	seed: 42
//	layers:
//	  - {in: 2, out: 3, activation: leaky_relu, slope: 0.1}
//	  - {in: 3, out: 1, activation: logistic}
//
// Build turns the description into an nn.Network, surfacing the core's own
// ErrInvalidShape and ErrTopologyMismatch for illegal or mismatched
// dimensions.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/fixnet-ml/fixnet/internal/nn"
)

// Default LeakyReLU slope when the description leaves it out.
const defaultSlope = 0.01

// Network describes a feed-forward topology.
type Network struct {
	// Init selects the weight initializer: "xavier" (default), "uniform",
	// or "zeros".
	Init string `yaml:"init"`

	// Seed makes initialization reproducible.
	Seed int64 `yaml:"seed"`

	// Uniform bounds, used only when Init is "uniform". Both zero means
	// the range (-2, 2).
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`

	// Layers lists the dense layers in order.
	Layers []Layer `yaml:"layers"`
}

// Layer describes one dense layer and the activation composed after it.
type Layer struct {
	In  int `yaml:"in"`
	Out int `yaml:"out"`

	// Activation names the strategy applied after the dense layer:
	// "logistic", "tanh", "leaky_relu", "identity", or "" for none.
	Activation string `yaml:"activation"`

	// Slope is the LeakyReLU negative-side slope.
	Slope float64 `yaml:"slope"`
}

// Load parses a YAML network description.
func Load(data []byte) (*Network, error) {
	var c Network
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "parsing network description")
	}
	return &c, nil
}

// LoadFile parses a YAML network description from a file.
func LoadFile(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading network description %s", path)
	}
	return Load(data)
}

// Build constructs the described network. Layer construction and composition
// errors pass through from the core (ErrInvalidShape, ErrTopologyMismatch);
// unknown initializer or activation names fail on their own.
func (c *Network) Build() (*nn.Network, error) {
	init, err := c.initializer()
	if err != nil {
		return nil, err
	}

	var layers []nn.Layer
	for i, spec := range c.Layers {
		full, err := nn.NewFull(spec.In, spec.Out, init)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
		layers = append(layers, full)

		if spec.Activation == "" {
			continue
		}
		act, err := activation(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
		al, err := nn.NewActivationLayer(act, spec.Out)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
		layers = append(layers, al)
	}
	return nn.NewNetwork(layers...)
}

func (c *Network) initializer() (nn.Initializer, error) {
	switch c.Init {
	case "", "xavier":
		return nn.Xavier(c.Seed), nil
	case "uniform":
		lo, hi := c.Lo, c.Hi
		if lo == 0 && hi == 0 {
			lo, hi = -2, 2
		}
		return nn.Uniform(lo, hi, c.Seed), nil
	case "zeros":
		return nn.Zeros(), nil
	default:
		return nil, errors.Errorf("unknown initializer %q", c.Init)
	}
}

func activation(spec Layer) (nn.Activation, error) {
	switch spec.Activation {
	case "logistic":
		return nn.Logistic{}, nil
	case "tanh":
		return nn.Tanh{}, nil
	case "leaky_relu":
		slope := spec.Slope
		if slope == 0 {
			slope = defaultSlope
		}
		return nn.LeakyReLU{Slope: slope}, nil
	case "identity":
		return nn.Identity{}, nil
	default:
		return nil, errors.Errorf("unknown activation %q", spec.Activation)
	}
}
