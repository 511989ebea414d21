package nn

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"

	"github.com/fixnet-ml/fixnet/internal/buffer"
)

// Full is a fully connected (dense) layer.
//
// Forward computes output[j] = bias[j] + Σ_i weight[j][i]·input[i], a dense
// matrix-vector product. No activation is fused in; activation is a separate
// composable step (see ActivationLayer).
//
// Parameter layout is one flat view: the weight matrix row-major
// (outDim × inDim), followed by the bias vector (outDim). The storage is
// allocated once at construction from the declared dimensions and never
// resized; forward and backward only read it, an external optimizer mutates
// it through Params.
type Full struct {
	inDim  int
	outDim int
	params buffer.View    // weights row-major, then bias
	w      blas64.General // view over params[:outDim*inDim]
	bias   buffer.View    // view over params[outDim*inDim:]
}

// NewFull creates a dense layer with the given dimensions, with weights and
// biases filled in by init. A nil init leaves the parameters zeroed.
//
// Non-positive dimensions are rejected with ErrInvalidShape.
func NewFull(inDim, outDim int, init Initializer) (*Full, error) {
	if inDim < 1 || outDim < 1 {
		return nil, errors.Wrapf(ErrInvalidShape, "full layer %d→%d", inDim, outDim)
	}

	params := make(buffer.View, outDim*inDim+outDim)
	f := &Full{
		inDim:  inDim,
		outDim: outDim,
		params: params,
		w: blas64.General{
			Rows:   outDim,
			Cols:   inDim,
			Stride: inDim,
			Data:   params[:outDim*inDim],
		},
		bias: params[outDim*inDim:],
	}

	if init != nil {
		weightAt, biasAt := init(inDim, outDim)
		for j := 0; j < outDim; j++ {
			for i := 0; i < inDim; i++ {
				f.w.Data[j*inDim+i] = weightAt(j, i)
			}
			f.bias[j] = biasAt(j)
		}
	}
	return f, nil
}

// InDim returns the input dimension.
func (f *Full) InDim() int { return f.inDim }

// OutDim returns the output dimension.
func (f *Full) OutDim() int { return f.outDim }

// ParamCount returns outDim·inDim weights plus outDim biases.
func (f *Full) ParamCount() int { return len(f.params) }

// Params returns the flat parameter view: weights row-major, then bias.
func (f *Full) Params() buffer.View { return f.params }

// Weights returns the weight matrix as a flat row-major view into Params.
func (f *Full) Weights() buffer.View { return f.params[:f.outDim*f.inDim] }

// Bias returns the bias vector as a view into Params.
func (f *Full) Bias() buffer.View { return f.bias }

// Forward computes output = W·input + bias.
func (f *Full) Forward(input, output buffer.View) error {
	if err := checkLen("Full.Forward", "input", input, f.inDim); err != nil {
		return err
	}
	if err := checkLen("Full.Forward", "output", output, f.outDim); err != nil {
		return err
	}

	copy(output, f.bias)
	blas64.Gemv(blas.NoTrans, 1, f.w,
		blas64.Vector{N: f.inDim, Inc: 1, Data: input},
		1,
		blas64.Vector{N: f.outDim, Inc: 1, Data: output})
	return nil
}

// Backward computes, given the upstream gradient g = outputGrad and the
// input x of the matching forward call:
//
//	inputGrad[i]        = Σ_j weight[j][i]·g[j]   (transpose matvec, overwritten)
//	weightGrad[j][i]   += g[j]·x[i]               (rank-one update, accumulated)
//	biasGrad[j]        += g[j]                    (accumulated)
//
// The weight and bias gradients land in paramGrad using the same flat layout
// as Params. input, outputGrad, and inputGrad must not alias each other.
func (f *Full) Backward(input, outputGrad, inputGrad, paramGrad buffer.View) error {
	if err := checkLen("Full.Backward", "input", input, f.inDim); err != nil {
		return err
	}
	if err := checkLen("Full.Backward", "outputGrad", outputGrad, f.outDim); err != nil {
		return err
	}
	if err := checkLen("Full.Backward", "inputGrad", inputGrad, f.inDim); err != nil {
		return err
	}
	if err := checkLen("Full.Backward", "paramGrad", paramGrad, len(f.params)); err != nil {
		return err
	}

	g := blas64.Vector{N: f.outDim, Inc: 1, Data: outputGrad}

	// Gradient over the input: Wᵀ·g.
	blas64.Gemv(blas.Trans, 1, f.w, g, 0,
		blas64.Vector{N: f.inDim, Inc: 1, Data: inputGrad})

	// Accumulate the weight gradient: dW += g·xᵀ.
	wg := blas64.General{
		Rows:   f.outDim,
		Cols:   f.inDim,
		Stride: f.inDim,
		Data:   paramGrad[:f.outDim*f.inDim],
	}
	blas64.Ger(1, g, blas64.Vector{N: f.inDim, Inc: 1, Data: input}, wg)

	// Accumulate the bias gradient: db += g.
	floats.Add(paramGrad[f.outDim*f.inDim:], outputGrad)
	return nil
}
