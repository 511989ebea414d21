// Copyright 2026 The fixnet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/fixnet-ml/fixnet/internal/buffer"
	"github.com/fixnet-ml/fixnet/internal/nn"
)

// Layer is the contract implemented by every concrete layer type.
type Layer = nn.Layer

// Errors

// ErrInvalidShape reports a non-positive dimension at construction.
var ErrInvalidShape = nn.ErrInvalidShape

// ErrShapeMismatch reports a buffer length that disagrees with what an
// operation expects.
var ErrShapeMismatch = nn.ErrShapeMismatch

// ErrTopologyMismatch reports adjacent layer dimensions that disagree at
// network build time.
var ErrTopologyMismatch = nn.ErrTopologyMismatch

// ShapeError carries the details behind an ErrShapeMismatch.
type ShapeError = nn.ShapeError

// Layers

// Full is a fully connected (dense) layer.
type Full = nn.Full

// NewFull creates a dense layer with the given dimensions.
//
// Example:
//
//	layer, err := nn.NewFull(784, 128, nn.Xavier(42))
func NewFull(inDim, outDim int, init Initializer) (*Full, error) {
	return nn.NewFull(inDim, outDim, init)
}

// ActivationLayer adapts an Activation strategy into a parameter-free layer.
type ActivationLayer = nn.ActivationLayer

// NewActivationLayer wraps act as a layer of the given dimension.
func NewActivationLayer(act Activation, dim int) (*ActivationLayer, error) {
	return nn.NewActivationLayer(act, dim)
}

// Activations

// Activation is a pure elementwise strategy: a function and its derivative.
type Activation = nn.Activation

// Logistic is the logistic (sigmoid) activation.
type Logistic = nn.Logistic

// Tanh is the hyperbolic tangent activation.
type Tanh = nn.Tanh

// LeakyReLU is the leaky rectified linear activation.
type LeakyReLU = nn.LeakyReLU

// Identity passes values through unchanged.
type Identity = nn.Identity

// Losses

// Loss is a pure error strategy: a scalar error and its gradient over the
// prediction.
type Loss = nn.Loss

// SquaredError sums squared differences.
type SquaredError = nn.SquaredError

// AbsError sums absolute differences.
type AbsError = nn.AbsError

// Initialization

// Initializer produces weight and bias generator functions for one layer.
type Initializer = nn.Initializer

// Xavier returns Xavier/Glorot uniform initialization with zero biases.
func Xavier(seed int64) Initializer {
	return nn.Xavier(seed)
}

// Uniform returns initialization drawn from U(lo, hi).
func Uniform(lo, hi float64, seed int64) Initializer {
	return nn.Uniform(lo, hi, seed)
}

// Zeros returns all-zero initialization.
func Zeros() Initializer {
	return nn.Zeros()
}

// Composition

// Network is an ordered sequence of layers chained output-to-input.
type Network = nn.Network

// NewNetwork composes layers into a network, validating adjacent dimensions
// and allocating every buffer the network will ever use.
//
// Example:
//
//	fc1, _ := nn.NewFull(2, 3, nn.Xavier(42))
//	act, _ := nn.NewActivationLayer(nn.LeakyReLU{Slope: 0.1}, 3)
//	fc2, _ := nn.NewFull(3, 1, nn.Xavier(42))
//	net, err := nn.NewNetwork(fc1, act, fc2)
func NewNetwork(layers ...Layer) (*Network, error) {
	return nn.NewNetwork(layers...)
}

// View re-exports the buffer view type for call sites that only import nn.
type View = buffer.View
