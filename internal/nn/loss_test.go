package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixnet-ml/fixnet/internal/buffer"
)

func TestSquaredError_Loss(t *testing.T) {
	pred := buffer.View{1, 2, 3}
	target := buffer.View{0, 2, 5}

	loss, err := SquaredError{}.Loss(pred, target)
	require.NoError(t, err)
	// 1² + 0² + 2² = 5.
	assert.InDelta(t, 5, loss, 1e-12)
}

func TestSquaredError_Gradient(t *testing.T) {
	pred := buffer.View{1, 2, 3}
	target := buffer.View{0, 2, 5}
	grad := make(buffer.View, 3)

	require.NoError(t, SquaredError{}.Gradient(pred, target, grad))
	assert.Equal(t, buffer.View{2, 0, -4}, grad)
}

func TestAbsError_Loss(t *testing.T) {
	pred := buffer.View{1, 2, 3}
	target := buffer.View{0, 2, 5}

	loss, err := AbsError{}.Loss(pred, target)
	require.NoError(t, err)
	// |1| + |0| + |−2| = 3.
	assert.InDelta(t, 3, loss, 1e-12)
}

func TestAbsError_Gradient(t *testing.T) {
	pred := buffer.View{1, 2, 3}
	target := buffer.View{0, 2, 5}
	grad := make(buffer.View, 3)

	require.NoError(t, AbsError{}.Gradient(pred, target, grad))
	assert.Equal(t, buffer.View{1, 0, -2}, grad)
}

func TestLoss_Determinism(t *testing.T) {
	pred := buffer.View{0.1, -0.2, 0.3}
	target := buffer.View{0, 0, 1}

	a, err := SquaredError{}.Loss(pred, target)
	require.NoError(t, err)
	b, err := SquaredError{}.Loss(pred, target)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLoss_NaNPropagates(t *testing.T) {
	pred := buffer.View{math.NaN()}
	target := buffer.View{0}

	// NaN follows ordinary floating-point rules; nothing is trapped.
	loss, err := SquaredError{}.Loss(pred, target)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(loss))
}

func TestLoss_ShapeMismatch(t *testing.T) {
	pred := buffer.View{1, 2}
	short := buffer.View{1}
	grad := make(buffer.View, 2)

	_, err := SquaredError{}.Loss(pred, short)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.ErrorIs(t, SquaredError{}.Gradient(pred, short, grad), ErrShapeMismatch)
	assert.ErrorIs(t, SquaredError{}.Gradient(pred, pred, short), ErrShapeMismatch)

	_, err = AbsError{}.Loss(pred, short)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.ErrorIs(t, AbsError{}.Gradient(pred, short, grad), ErrShapeMismatch)
}
