// Copyright 2026 The fixnet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides fixnet's optimizers.
//
// Optimizers apply a network's accumulated parameter gradients to its
// parameter buffers in place. All optimizer state is allocated at
// construction; Step performs no dynamic allocation.
package optim

import (
	"github.com/fixnet-ml/fixnet/internal/nn"
	"github.com/fixnet-ml/fixnet/internal/optim"
)

// Optimizer is the base interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD (stochastic gradient descent)

// SGD is the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for SGD.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer over the network's parameters.
//
// Example:
//
//	opt := optim.NewSGD(net, optim.SGDConfig{LR: 0.1, Momentum: 0.9})
func NewSGD(net *nn.Network, config SGDConfig) *SGD {
	return optim.NewSGD(net, config)
}

// Adam (adaptive moment estimation)

// Adam is the Adam optimizer.
type Adam = optim.Adam

// AdamConfig holds configuration for Adam.
type AdamConfig = optim.AdamConfig

// NewAdam creates an Adam optimizer over the network's parameters.
//
// Example:
//
//	opt := optim.NewAdam(net, optim.AdamConfig{LR: 0.001})
func NewAdam(net *nn.Network, config AdamConfig) *Adam {
	return optim.NewAdam(net, config)
}
