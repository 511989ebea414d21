package nn

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/fixnet-ml/fixnet/internal/buffer"
)

// Activation is a pure elementwise strategy: a function and its derivative.
//
// Both operations write into caller-supplied storage of the same length as
// the input, allocate nothing, keep no hidden state, and are deterministic
// given identical inputs. NaN and Infinity propagate per ordinary
// floating-point arithmetic; nothing is trapped.
type Activation interface {
	// Apply writes f(input[i]) into output[i]. output must have the same
	// length as input, otherwise ErrShapeMismatch. Applying in place
	// (output aliasing input) is allowed.
	Apply(input, output buffer.View) error

	// Derivative writes f'(input[i]) into deriv[i]. deriv must have the same
	// length as input, otherwise ErrShapeMismatch.
	Derivative(input, deriv buffer.View) error
}

// Logistic is the logistic (sigmoid) activation: σ(x) = 1/(1+e^(−x)).
type Logistic struct{}

// Apply writes σ(input[i]) into output[i].
func (Logistic) Apply(input, output buffer.View) error {
	if err := checkLen("Logistic.Apply", "output", output, input.Len()); err != nil {
		return err
	}
	for i, x := range input {
		output[i] = 1 / (1 + math.Exp(-x))
	}
	return nil
}

// Derivative writes σ(x)·(1−σ(x)) into deriv[i].
func (Logistic) Derivative(input, deriv buffer.View) error {
	if err := checkLen("Logistic.Derivative", "deriv", deriv, input.Len()); err != nil {
		return err
	}
	for i, x := range input {
		s := 1 / (1 + math.Exp(-x))
		deriv[i] = s * (1 - s)
	}
	return nil
}

// Tanh is the hyperbolic tangent activation.
type Tanh struct{}

// Apply writes tanh(input[i]) into output[i].
func (Tanh) Apply(input, output buffer.View) error {
	if err := checkLen("Tanh.Apply", "output", output, input.Len()); err != nil {
		return err
	}
	for i, x := range input {
		output[i] = math.Tanh(x)
	}
	return nil
}

// Derivative writes 1−tanh²(x) into deriv[i].
func (Tanh) Derivative(input, deriv buffer.View) error {
	if err := checkLen("Tanh.Derivative", "deriv", deriv, input.Len()); err != nil {
		return err
	}
	for i, x := range input {
		t := math.Tanh(x)
		deriv[i] = 1 - t*t
	}
	return nil
}

// LeakyReLU is the leaky rectified linear activation: x for x > 0,
// Slope·x otherwise. A zero Slope gives plain ReLU.
type LeakyReLU struct {
	Slope float64
}

// Apply writes the rectified value into output[i].
func (a LeakyReLU) Apply(input, output buffer.View) error {
	if err := checkLen("LeakyReLU.Apply", "output", output, input.Len()); err != nil {
		return err
	}
	for i, x := range input {
		if x > 0 {
			output[i] = x
		} else {
			output[i] = a.Slope * x
		}
	}
	return nil
}

// Derivative writes 1 for positive inputs and Slope otherwise.
func (a LeakyReLU) Derivative(input, deriv buffer.View) error {
	if err := checkLen("LeakyReLU.Derivative", "deriv", deriv, input.Len()); err != nil {
		return err
	}
	for i, x := range input {
		if x > 0 {
			deriv[i] = 1
		} else {
			deriv[i] = a.Slope
		}
	}
	return nil
}

// Identity passes values through unchanged. Useful as the activation of a
// purely linear output layer.
type Identity struct{}

// Apply copies input into output.
func (Identity) Apply(input, output buffer.View) error {
	if err := checkLen("Identity.Apply", "output", output, input.Len()); err != nil {
		return err
	}
	copy(output, input)
	return nil
}

// Derivative writes ones.
func (Identity) Derivative(input, deriv buffer.View) error {
	if err := checkLen("Identity.Derivative", "deriv", deriv, input.Len()); err != nil {
		return err
	}
	for i := range deriv {
		deriv[i] = 1
	}
	return nil
}

// ActivationLayer adapts an Activation strategy into a parameter-free Layer
// of fixed dimension, so activations compose into a Network exactly like any
// other layer. Input and output dimensions are equal.
type ActivationLayer struct {
	act Activation
	dim int
}

// NewActivationLayer wraps act as a layer of the given dimension.
// Non-positive dimensions are rejected with ErrInvalidShape.
func NewActivationLayer(act Activation, dim int) (*ActivationLayer, error) {
	if dim < 1 {
		return nil, errors.Wrapf(ErrInvalidShape, "activation layer dim %d", dim)
	}
	return &ActivationLayer{act: act, dim: dim}, nil
}

// InDim returns the layer dimension.
func (l *ActivationLayer) InDim() int { return l.dim }

// OutDim returns the layer dimension.
func (l *ActivationLayer) OutDim() int { return l.dim }

// ParamCount returns 0: activations have no trainable parameters.
func (l *ActivationLayer) ParamCount() int { return 0 }

// Params returns nil.
func (l *ActivationLayer) Params() buffer.View { return nil }

// Forward applies the activation elementwise.
func (l *ActivationLayer) Forward(input, output buffer.View) error {
	if err := checkLen("ActivationLayer.Forward", "input", input, l.dim); err != nil {
		return err
	}
	if err := checkLen("ActivationLayer.Forward", "output", output, l.dim); err != nil {
		return err
	}
	return l.act.Apply(input, output)
}

// Backward applies the chain rule through the activation:
// inputGrad[i] = outputGrad[i]·f'(input[i]). paramGrad must be empty.
func (l *ActivationLayer) Backward(input, outputGrad, inputGrad, paramGrad buffer.View) error {
	if err := checkLen("ActivationLayer.Backward", "input", input, l.dim); err != nil {
		return err
	}
	if err := checkLen("ActivationLayer.Backward", "outputGrad", outputGrad, l.dim); err != nil {
		return err
	}
	if err := checkLen("ActivationLayer.Backward", "inputGrad", inputGrad, l.dim); err != nil {
		return err
	}
	if err := checkLen("ActivationLayer.Backward", "paramGrad", paramGrad, 0); err != nil {
		return err
	}
	if err := l.act.Derivative(input, inputGrad); err != nil {
		return err
	}
	floats.Mul(inputGrad, outputGrad)
	return nil
}
