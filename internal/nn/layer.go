// Package nn implements the layer abstraction and feed-forward network
// composition at the heart of fixnet.
//
// The package provides:
//   - Layer interface: the contract every concrete layer implements
//   - Full: the fully connected (dense) reference layer
//   - Activation strategies and the ActivationLayer adapter
//   - Loss strategies: SquaredError, AbsError
//   - Network: sequential composition with build-time buffer allocation
//
// The design constraint running through everything here is that steady-state
// forward and backward computation performs no dynamic allocation: all
// storage is allocated during an explicit build phase and lent to operations
// as fixed-length buffer.View values.
package nn

import (
	"github.com/fixnet-ml/fixnet/internal/buffer"
)

// Layer is the contract implemented by every concrete layer type.
//
// A layer has fixed input and output dimensions for its whole lifetime and
// owns its own trainable parameters, exposed as one flat view (Params).
// Forward and backward calls operate purely on pre-existing storage supplied
// by the caller; neither allocates, and neither mutates anything beyond the
// output and gradient buffers it was handed.
//
// Backward always receives the input of the matching forward call as an
// explicit argument. Layers never cache their last input, so there is no
// stale-state failure mode from calling backward out of order: whatever
// input the caller supplies is the one differentiated against.
type Layer interface {
	// InDim returns the fixed input dimension.
	InDim() int

	// OutDim returns the fixed output dimension.
	OutDim() int

	// ParamCount returns the length of the flat parameter view. Zero for
	// parameter-free layers such as activations.
	ParamCount() int

	// Params returns the layer's flat parameter storage, or nil for a
	// parameter-free layer. The view stays valid and fixed-length for the
	// layer's lifetime; optimizers write updates through it, serialization
	// reads and restores it.
	Params() buffer.View

	// Forward computes the layer's output from input and current parameters,
	// writing into output. input must have length InDim and output length
	// OutDim, otherwise the call fails with ErrShapeMismatch before anything
	// is written.
	Forward(input, output buffer.View) error

	// Backward consumes the gradient flowing back from the downstream layer
	// (outputGrad, length OutDim) together with the input of the matching
	// forward call (length InDim), and produces:
	//
	//   - the gradient with respect to the input, written into inputGrad
	//     (length InDim), to be handed to the upstream layer;
	//   - the gradient with respect to the parameters, accumulated into
	//     paramGrad (length ParamCount) — added, never overwritten, so that
	//     gradients can be accumulated across a mini-batch. Callers zero the
	//     accumulator between optimizer steps.
	//
	// Any length disagreement fails with ErrShapeMismatch and leaves every
	// buffer untouched.
	Backward(input, outputGrad, inputGrad, paramGrad buffer.View) error
}
