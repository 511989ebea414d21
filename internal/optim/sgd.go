package optim

import (
	"gonum.org/v1/gonum/floats"

	"github.com/fixnet-ml/fixnet/internal/buffer"
	"github.com/fixnet-ml/fixnet/internal/nn"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param -= lr · grad
//
// Update rule with momentum:
//
//	velocity = momentum·velocity + grad
//	param   -= lr · velocity
//
// Velocity buffers are allocated once at construction; Step itself does not
// allocate.
type SGD struct {
	net      *nn.Network
	t        trainable
	lr       float64
	momentum float64
	velocity []buffer.View // nil when momentum == 0
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default 0.01)
	Momentum float64 // momentum factor in [0, 1) (default 0)
}

// NewSGD creates an SGD optimizer over the network's parameters.
func NewSGD(net *nn.Network, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	s := &SGD{
		net:      net,
		t:        collect(net),
		lr:       config.LR,
		momentum: config.Momentum,
	}
	if s.momentum != 0 {
		s.velocity = make([]buffer.View, len(s.t.params))
		for i, p := range s.t.params {
			s.velocity[i] = make(buffer.View, p.Len())
		}
	}
	return s
}

// Step applies one gradient-descent update to every parameter.
func (s *SGD) Step() {
	for i := range s.t.params {
		if s.momentum == 0 {
			floats.AddScaled(s.t.params[i], -s.lr, s.t.grads[i])
			continue
		}
		floats.Scale(s.momentum, s.velocity[i])
		floats.Add(s.velocity[i], s.t.grads[i])
		floats.AddScaled(s.t.params[i], -s.lr, s.velocity[i])
	}
}

// ZeroGrad clears the network's gradient accumulators.
func (s *SGD) ZeroGrad() { s.net.ZeroGrads() }

// GetLR returns the learning rate.
func (s *SGD) GetLR() float64 { return s.lr }
