package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/fixnet-ml/fixnet/internal/buffer"
)

var probeInputs = buffer.View{-3, -0.5, 0.25, 1, 4}

// scalar lifts an Activation to a float64 → float64 function for
// finite-difference checking.
func scalar(act Activation) func(float64) float64 {
	return func(x float64) float64 {
		in := buffer.View{x}
		out := make(buffer.View, 1)
		if err := act.Apply(in, out); err != nil {
			panic(err)
		}
		return out[0]
	}
}

func TestActivation_Values(t *testing.T) {
	tests := []struct {
		name string
		act  Activation
		f    func(float64) float64
	}{
		{"logistic", Logistic{}, func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }},
		{"tanh", Tanh{}, math.Tanh},
		{"leaky_relu", LeakyReLU{Slope: 0.1}, func(x float64) float64 {
			if x > 0 {
				return x
			}
			return 0.1 * x
		}},
		{"identity", Identity{}, func(x float64) float64 { return x }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make(buffer.View, probeInputs.Len())
			require.NoError(t, tt.act.Apply(probeInputs, out))
			for i, x := range probeInputs {
				assert.InDelta(t, tt.f(x), out[i], 1e-12)
			}
		})
	}
}

// TestActivation_DerivativeMatchesFiniteDifference checks every strategy's
// Derivative against a central difference of its Apply. The probe points
// stay away from the LeakyReLU kink at zero.
func TestActivation_DerivativeMatchesFiniteDifference(t *testing.T) {
	acts := []struct {
		name string
		act  Activation
	}{
		{"logistic", Logistic{}},
		{"tanh", Tanh{}},
		{"leaky_relu", LeakyReLU{Slope: 0.1}},
		{"identity", Identity{}},
	}
	for _, tt := range acts {
		t.Run(tt.name, func(t *testing.T) {
			deriv := make(buffer.View, probeInputs.Len())
			require.NoError(t, tt.act.Derivative(probeInputs, deriv))

			f := scalar(tt.act)
			settings := &fd.Settings{Formula: fd.Central}
			for i, x := range probeInputs {
				numeric := fd.Derivative(f, x, settings)
				assert.InDelta(t, numeric, deriv[i], 1e-6, "x=%v", x)
			}
		})
	}
}

func TestActivation_ApplyInPlace(t *testing.T) {
	v := append(buffer.View(nil), probeInputs...)
	require.NoError(t, Tanh{}.Apply(v, v))
	for i, x := range probeInputs {
		assert.InDelta(t, math.Tanh(x), v[i], 1e-12)
	}
}

func TestActivation_ShapeMismatch(t *testing.T) {
	out := make(buffer.View, probeInputs.Len()-1)
	assert.ErrorIs(t, Logistic{}.Apply(probeInputs, out), ErrShapeMismatch)
	assert.ErrorIs(t, Logistic{}.Derivative(probeInputs, out), ErrShapeMismatch)
}

func TestNewActivationLayer_InvalidShape(t *testing.T) {
	l, err := NewActivationLayer(Tanh{}, 0)
	assert.Nil(t, l)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestActivationLayer_Dims(t *testing.T) {
	l, err := NewActivationLayer(Logistic{}, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, l.InDim())
	assert.Equal(t, 4, l.OutDim())
	assert.Equal(t, 0, l.ParamCount())
	assert.Nil(t, l.Params())
}

func TestActivationLayer_Backward(t *testing.T) {
	l, err := NewActivationLayer(LeakyReLU{Slope: 0.5}, 3)
	require.NoError(t, err)

	in := buffer.View{2, -2, 4}
	outGrad := buffer.View{1, 1, 3}
	inGrad := make(buffer.View, 3)

	// Chain rule: inputGrad = outputGrad · f'(input).
	require.NoError(t, l.Backward(in, outGrad, inGrad, nil))
	assert.Equal(t, buffer.View{1, 0.5, 3}, inGrad)
}

func TestActivationLayer_ShapeMismatch(t *testing.T) {
	l, err := NewActivationLayer(Tanh{}, 3)
	require.NoError(t, err)

	good := make(buffer.View, 3)
	bad := make(buffer.View, 2)

	assert.ErrorIs(t, l.Forward(bad, good), ErrShapeMismatch)
	assert.ErrorIs(t, l.Forward(good, bad), ErrShapeMismatch)
	assert.ErrorIs(t, l.Backward(good, good, bad, nil), ErrShapeMismatch)
	// A non-empty paramGrad is a mismatch for a parameter-free layer.
	assert.ErrorIs(t, l.Backward(good, good, good, make(buffer.View, 1)), ErrShapeMismatch)
}
