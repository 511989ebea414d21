package optim

import (
	"math"

	"github.com/fixnet-ml/fixnet/internal/buffer"
	"github.com/fixnet-ml/fixnet/internal/nn"
)

// Adam implements the Adam optimizer (adaptive moment estimation).
//
// Update rule, per parameter element:
//
//	m = β1·m + (1−β1)·g
//	v = β2·v + (1−β2)·g²
//	param -= lr · m̂ / (sqrt(v̂) + ε)
//
// where m̂ and v̂ are the bias-corrected moment estimates. Moment buffers are
// allocated once at construction; Step itself does not allocate.
type Adam struct {
	net  *nn.Network
	t    trainable
	lr   float64
	b1   float64
	b2   float64
	eps  float64
	m    []buffer.View
	v    []buffer.View
	step int
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64 // learning rate (default 0.001)
	Beta1 float64 // first-moment decay (default 0.9)
	Beta2 float64 // second-moment decay (default 0.999)
	Eps   float64 // numerical stability term (default 1e-8)
}

// NewAdam creates an Adam optimizer over the network's parameters.
func NewAdam(net *nn.Network, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Beta1 == 0 {
		config.Beta1 = 0.9
	}
	if config.Beta2 == 0 {
		config.Beta2 = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	a := &Adam{
		net: net,
		t:   collect(net),
		lr:  config.LR,
		b1:  config.Beta1,
		b2:  config.Beta2,
		eps: config.Eps,
	}
	a.m = make([]buffer.View, len(a.t.params))
	a.v = make([]buffer.View, len(a.t.params))
	for i, p := range a.t.params {
		a.m[i] = make(buffer.View, p.Len())
		a.v[i] = make(buffer.View, p.Len())
	}
	return a
}

// Step applies one Adam update to every parameter.
func (a *Adam) Step() {
	a.step++
	c1 := 1 - math.Pow(a.b1, float64(a.step))
	c2 := 1 - math.Pow(a.b2, float64(a.step))

	for i := range a.t.params {
		p, g := a.t.params[i], a.t.grads[i]
		m, v := a.m[i], a.v[i]
		for j := range p {
			m[j] = a.b1*m[j] + (1-a.b1)*g[j]
			v[j] = a.b2*v[j] + (1-a.b2)*g[j]*g[j]
			mHat := m[j] / c1
			vHat := v[j] / c2
			p[j] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
		}
	}
}

// ZeroGrad clears the network's gradient accumulators.
func (a *Adam) ZeroGrad() { a.net.ZeroGrads() }

// GetLR returns the learning rate.
func (a *Adam) GetLR() float64 { return a.lr }
