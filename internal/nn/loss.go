package nn

import (
	"gonum.org/v1/gonum/floats"

	"github.com/fixnet-ml/fixnet/internal/buffer"
)

// Loss is a pure error strategy mapping a prediction and a target to a
// scalar, with a matching gradient over the prediction.
//
// Both operations are deterministic, keep no hidden state, and allocate
// nothing; Gradient writes into caller-supplied storage of the same length
// as the prediction.
type Loss interface {
	// Loss returns the scalar error between prediction and target. The two
	// views must have equal length, otherwise ErrShapeMismatch.
	Loss(prediction, target buffer.View) (float64, error)

	// Gradient writes ∂loss/∂prediction[i] into grad[i]. All three views
	// must have equal length, otherwise ErrShapeMismatch.
	Gradient(prediction, target, grad buffer.View) error
}

// SquaredError sums the squared differences between prediction and target:
// Σ_i (p[i]−t[i])². Its gradient is 2·(p[i]−t[i]).
type SquaredError struct{}

// Loss returns Σ (p−t)².
func (SquaredError) Loss(prediction, target buffer.View) (float64, error) {
	if err := checkLen("SquaredError.Loss", "target", target, prediction.Len()); err != nil {
		return 0, err
	}
	d := floats.Distance(prediction, target, 2)
	return d * d, nil
}

// Gradient writes 2·(p[i]−t[i]) into grad[i].
func (SquaredError) Gradient(prediction, target, grad buffer.View) error {
	if err := checkLen("SquaredError.Gradient", "target", target, prediction.Len()); err != nil {
		return err
	}
	if err := checkLen("SquaredError.Gradient", "grad", grad, prediction.Len()); err != nil {
		return err
	}
	for i := range grad {
		grad[i] = 2 * (prediction[i] - target[i])
	}
	return nil
}

// AbsError sums the absolute differences between prediction and target:
// Σ_i |p[i]−t[i]|. Its (sub)gradient is taken as p[i]−t[i].
type AbsError struct{}

// Loss returns Σ |p−t|.
func (AbsError) Loss(prediction, target buffer.View) (float64, error) {
	if err := checkLen("AbsError.Loss", "target", target, prediction.Len()); err != nil {
		return 0, err
	}
	return floats.Distance(prediction, target, 1), nil
}

// Gradient writes p[i]−t[i] into grad[i].
func (AbsError) Gradient(prediction, target, grad buffer.View) error {
	if err := checkLen("AbsError.Gradient", "target", target, prediction.Len()); err != nil {
		return err
	}
	if err := checkLen("AbsError.Gradient", "grad", grad, prediction.Len()); err != nil {
		return err
	}
	floats.SubTo(grad, prediction, target)
	return nil
}
