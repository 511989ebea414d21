package nn

import (
	"github.com/pkg/errors"

	"github.com/fixnet-ml/fixnet/internal/buffer"
)

// Network is an ordered sequence of layers chained output-to-input.
//
// Construction validates that consecutive dimensions match and allocates,
// from a single arena, everything a lifetime of forward and backward passes
// needs: the activation chain stitching layers together, one contiguous
// parameter-gradient accumulator covering every layer, and the scratch
// buffers backward propagation alternates between. After NewNetwork returns,
// no call on the network allocates.
//
// Gradient semantics: Backward accumulates into the gradient buffers and
// never resets them, so gradients can be summed across a mini-batch. Callers
// zero them explicitly with ZeroGrads between independent optimizer steps.
//
// A network supports exactly one in-flight forward/backward pass at a time;
// concurrent calls on the same instance are not synchronized. Independent
// networks, each owning its buffers, can run on separate goroutines freely.
type Network struct {
	layers []Layer

	// acts[0] holds a copy of the most recent forward input, acts[i+1] the
	// output of layers[i]. Backward reads these as the per-layer inputs.
	acts []buffer.View

	// grads is the contiguous accumulator for all layers' parameter
	// gradients; offs[i]:offs[i+1] is layer i's slice of it.
	grads buffer.View
	offs  []int

	// scratch holds the two buffers backward alternates between while
	// propagating the input gradient upstream.
	scratch [2]buffer.View
}

// NewNetwork composes the given layers into a network, validating that the
// output dimension of each layer equals the input dimension of the next.
// A dimension disagreement fails with ErrTopologyMismatch; an empty layer
// list with ErrInvalidShape. All buffers the network will ever use are
// allocated here.
func NewNetwork(layers ...Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, errors.Wrap(ErrInvalidShape, "network needs at least one layer")
	}
	for i := 0; i+1 < len(layers); i++ {
		if layers[i].OutDim() != layers[i+1].InDim() {
			return nil, errors.Wrapf(ErrTopologyMismatch,
				"layer %d outputs %d values, layer %d expects %d",
				i, layers[i].OutDim(), i+1, layers[i+1].InDim())
		}
	}

	actTotal := layers[0].InDim()
	paramTotal := 0
	maxIn := 0
	for _, l := range layers {
		actTotal += l.OutDim()
		paramTotal += l.ParamCount()
		if l.InDim() > maxIn {
			maxIn = l.InDim()
		}
	}

	arena := buffer.NewArena(actTotal + paramTotal + 2*maxIn)

	n := &Network{
		layers: layers,
		acts:   make([]buffer.View, len(layers)+1),
		offs:   make([]int, len(layers)+1),
	}
	n.acts[0] = arena.Alloc(layers[0].InDim())
	for i, l := range layers {
		n.acts[i+1] = arena.Alloc(l.OutDim())
		n.offs[i+1] = n.offs[i] + l.ParamCount()
	}
	n.grads = arena.Alloc(paramTotal)
	n.scratch[0] = arena.Alloc(maxIn)
	n.scratch[1] = arena.Alloc(maxIn)
	return n, nil
}

// InDim returns the input dimension of the first layer.
func (n *Network) InDim() int { return n.layers[0].InDim() }

// OutDim returns the output dimension of the last layer.
func (n *Network) OutDim() int { return n.layers[len(n.layers)-1].OutDim() }

// Len returns the number of layers.
func (n *Network) Len() int { return len(n.layers) }

// Layer returns the layer at the given index.
func (n *Network) Layer(i int) Layer { return n.layers[i] }

// ParamCount returns the total number of trainable parameters.
func (n *Network) ParamCount() int { return len(n.grads) }

// Params returns layer i's flat parameter view (nil for parameter-free
// layers), index-aligned with Grads.
func (n *Network) Params(i int) buffer.View { return n.layers[i].Params() }

// Grads returns layer i's slice of the gradient accumulator. Its layout
// matches the layer's Params view.
func (n *Network) Grads(i int) buffer.View { return n.grads[n.offs[i]:n.offs[i+1]] }

// GradsFlat returns the whole contiguous gradient accumulator.
func (n *Network) GradsFlat() buffer.View { return n.grads }

// ZeroGrads resets every parameter-gradient accumulator to zero. The network
// never does this implicitly; calling it between optimizer steps is the
// caller's responsibility, which is what makes mini-batch gradient
// accumulation possible.
func (n *Network) ZeroGrads() { n.grads.Zero() }

// Output returns the view holding the last layer's output from the most
// recent Forward. It is a view onto network-owned storage, not a copy; the
// next Forward overwrites it.
func (n *Network) Output() buffer.View { return n.acts[len(n.acts)-1] }

// Forward drives every layer in order on the given input and returns a view
// of the final output. The input is copied into network-owned storage first,
// so a later Backward differentiates against exactly the data this call saw
// regardless of what the caller does with its buffer. input must have length
// InDim, otherwise ErrShapeMismatch.
func (n *Network) Forward(input buffer.View) (buffer.View, error) {
	if err := checkLen("Network.Forward", "input", input, n.InDim()); err != nil {
		return nil, err
	}
	copy(n.acts[0], input)
	for i, l := range n.layers {
		if err := l.Forward(n.acts[i], n.acts[i+1]); err != nil {
			return nil, errors.Wrapf(err, "layer %d forward", i)
		}
	}
	return n.Output(), nil
}

// Backward drives every layer in reverse order, starting from the loss
// gradient over the network output, accumulating each layer's parameter
// gradient into the accumulator (see Grads) and propagating the input
// gradient upstream. It returns a view of the gradient with respect to the
// network input, valid until the next Backward.
//
// Backward differentiates against the activations of the most recent
// Forward. lossGrad must have length OutDim, otherwise ErrShapeMismatch.
func (n *Network) Backward(lossGrad buffer.View) (buffer.View, error) {
	if err := checkLen("Network.Backward", "lossGrad", lossGrad, n.OutDim()); err != nil {
		return nil, err
	}
	downstream := lossGrad
	var upstream buffer.View
	for i := len(n.layers) - 1; i >= 0; i-- {
		l := n.layers[i]
		upstream = n.scratch[i%2][:l.InDim()]
		if err := l.Backward(n.acts[i], downstream, upstream, n.Grads(i)); err != nil {
			return nil, errors.Wrapf(err, "layer %d backward", i)
		}
		downstream = upstream
	}
	return upstream, nil
}
