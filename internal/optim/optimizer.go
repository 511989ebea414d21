// Package optim implements optimization algorithms that apply a network's
// accumulated parameter gradients to its parameter buffers.
//
// Optimizers are the external collaborator the layer contract leaves room
// for: layers produce gradients into accumulators, optimizers consume them.
// Every optimizer here operates on the flat parameter and gradient views a
// network exposes, allocates all of its state (momentum, moment estimates)
// at construction, and performs steps without dynamic allocation.
//
// Example usage:
//
//	opt := optim.NewSGD(net, optim.SGDConfig{LR: 0.1})
//
//	for _, sample := range batch {
//	    out, _ := net.Forward(sample.Input)
//	    lossFn.Gradient(out, sample.Target, lossGrad)
//	    net.Backward(lossGrad)
//	}
//	opt.Step()     // apply the summed batch gradient
//	opt.ZeroGrad() // reset accumulators for the next batch
package optim

import (
	"github.com/fixnet-ml/fixnet/internal/buffer"
	"github.com/fixnet-ml/fixnet/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies the gradients currently accumulated in the network to its
	// parameters, in place. Step does not reset the accumulators.
	Step()

	// ZeroGrad clears the network's gradient accumulators. Call it between
	// independent optimizer steps; leaving it out sums gradients across
	// batches.
	ZeroGrad()

	// GetLR returns the current learning rate, for monitoring and
	// scheduling.
	GetLR() float64
}

// trainable collects the index-aligned parameter and gradient views of every
// layer that has parameters. Shared by all optimizers in this package.
type trainable struct {
	params []buffer.View
	grads  []buffer.View
}

func collect(net *nn.Network) trainable {
	var t trainable
	for i := 0; i < net.Len(); i++ {
		if net.Layer(i).ParamCount() == 0 {
			continue
		}
		t.params = append(t.params, net.Params(i))
		t.grads = append(t.grads, net.Grads(i))
	}
	return t
}
