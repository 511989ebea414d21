// Copyright 2026 The fixnet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides fixnet's layers, activation and loss strategies, and
// network composition.
//
// # Overview
//
// This package contains:
//   - Layer interface: the contract every concrete layer implements
//   - Full: the fully connected (dense) reference layer
//   - Activations: Logistic, Tanh, LeakyReLU, Identity
//   - Losses: SquaredError, AbsError
//   - Network: sequential composition with build-time buffer allocation
//   - Initialization: Xavier, Uniform, Zeros
//
// # Basic usage
//
//	fc1, _ := nn.NewFull(2, 3, nn.Xavier(42))
//	act, _ := nn.NewActivationLayer(nn.LeakyReLU{Slope: 0.1}, 3)
//	fc2, _ := nn.NewFull(3, 1, nn.Xavier(42))
//	net, _ := nn.NewNetwork(fc1, act, fc2)
//
//	out, _ := net.Forward(buffer.View{1, 0})
//
// # Training
//
// Backward accumulates parameter gradients; an optimizer from the optim
// package applies them:
//
//	lossFn := nn.SquaredError{}
//	grad := make(buffer.View, net.OutDim())
//
//	out, _ := net.Forward(input)
//	lossFn.Gradient(out, target, grad)
//	net.Backward(grad)
//	opt.Step()
//	opt.ZeroGrad()
//
// Gradient accumulators are never reset implicitly: leaving out ZeroGrad
// sums gradients across calls, which is how mini-batch accumulation works.
// Forgetting it between independent steps is the classic bug to watch for.
//
// # Allocation
//
// Every buffer a network needs is allocated when NewNetwork runs. After
// that, Forward, Backward, ZeroGrads, and optimizer steps perform no dynamic
// allocation.
package nn
