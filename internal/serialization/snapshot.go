// Package serialization snapshots and restores a network's parameter
// buffers.
//
// The snapshot format (.fxnt, version 1) is:
//
//	offset  size  field
//	0       4     magic "FXNT"
//	4       4     format version (uint32 little-endian)
//	8       4     layer count (uint32)
//	...           per layer: inDim (uint32), outDim (uint32),
//	              paramCount (uint64), paramCount float64 values
//	end−32  32    SHA-256 checksum of everything before it
//
// A restore writes into the network's existing parameter buffers and never
// resizes anything: the snapshot's per-layer dimensions must match the
// network's exactly, preserving the fixed-shape invariant. Validation (of
// the checksum and of every dimension) completes before the first parameter
// is touched, so a failed Load leaves the network unchanged. Round-tripping
// preserves exact parameter bits.
package serialization

import (
	"crypto/sha256"
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/fixnet-ml/fixnet/internal/nn"
)

// Format constants.
const (
	Magic         = "FXNT"
	FormatVersion = 1
	ChecksumSize  = 32 // SHA-256
)

// Save writes a snapshot of every layer's parameters to w, in layer order.
// Parameter-free layers are recorded with a zero parameter count so the
// topology check on restore covers them too.
func Save(w io.Writer, net *nn.Network) error {
	h := sha256.New()
	mw := io.MultiWriter(w, h)

	if _, err := mw.Write([]byte(Magic)); err != nil {
		return errors.Wrap(err, "writing snapshot header")
	}
	if err := binary.Write(mw, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return errors.Wrap(err, "writing snapshot header")
	}
	if err := binary.Write(mw, binary.LittleEndian, uint32(net.Len())); err != nil {
		return errors.Wrap(err, "writing snapshot header")
	}

	for i := 0; i < net.Len(); i++ {
		l := net.Layer(i)
		if err := binary.Write(mw, binary.LittleEndian, uint32(l.InDim())); err != nil {
			return errors.Wrapf(err, "writing layer %d", i)
		}
		if err := binary.Write(mw, binary.LittleEndian, uint32(l.OutDim())); err != nil {
			return errors.Wrapf(err, "writing layer %d", i)
		}
		if err := binary.Write(mw, binary.LittleEndian, uint64(l.ParamCount())); err != nil {
			return errors.Wrapf(err, "writing layer %d", i)
		}
		if l.ParamCount() > 0 {
			if err := binary.Write(mw, binary.LittleEndian, []float64(l.Params())); err != nil {
				return errors.Wrapf(err, "writing layer %d parameters", i)
			}
		}
	}

	if _, err := w.Write(h.Sum(nil)); err != nil {
		return errors.Wrap(err, "writing snapshot checksum")
	}
	return nil
}

// Load restores a snapshot from r into the network's parameter buffers.
//
// The snapshot is fully validated first: checksum, magic, version, layer
// count, and every layer's dimensions against the network. Only after
// everything checks out are parameters copied, so any failure leaves the
// network exactly as it was.
func Load(r io.Reader, net *nn.Network) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading snapshot")
	}
	if len(data) < len(Magic)+8+ChecksumSize {
		return ErrTruncated
	}

	payload := data[:len(data)-ChecksumSize]
	stored := data[len(data)-ChecksumSize:]
	computed := sha256.Sum256(payload)
	for i := range computed {
		if computed[i] != stored[i] {
			return ErrChecksumMismatch
		}
	}

	c := cursor{data: payload}
	if string(c.bytes(len(Magic))) != Magic {
		return ErrInvalidMagic
	}
	if v := c.uint32(); v != FormatVersion {
		return errors.Wrapf(ErrUnsupportedVersion, "version %d", v)
	}
	if count := int(c.uint32()); count != net.Len() {
		return errors.Wrapf(ErrLayerMismatch, "snapshot has %d layers, network has %d",
			count, net.Len())
	}

	// First pass: validate every layer header and locate its data.
	offsets := make([]int, net.Len())
	for i := 0; i < net.Len(); i++ {
		l := net.Layer(i)
		in, out := int(c.uint32()), int(c.uint32())
		pc := int(c.uint64())
		if c.failed {
			return ErrTruncated
		}
		if in != l.InDim() || out != l.OutDim() || pc != l.ParamCount() {
			return errors.Wrapf(ErrLayerMismatch,
				"layer %d: snapshot %d→%d (%d params), network %d→%d (%d params)",
				i, in, out, pc, l.InDim(), l.OutDim(), l.ParamCount())
		}
		offsets[i] = c.off
		c.skip(8 * pc)
	}
	if c.failed {
		return ErrTruncated
	}

	// Second pass: everything validated, copy the parameter bits in.
	for i := 0; i < net.Len(); i++ {
		params := net.Layer(i).Params()
		off := offsets[i]
		for j := range params {
			params[j] = math.Float64frombits(
				binary.LittleEndian.Uint64(payload[off+8*j:]))
		}
	}
	return nil
}

// cursor walks the payload, flagging truncation instead of panicking.
type cursor struct {
	data   []byte
	off    int
	failed bool
}

func (c *cursor) bytes(n int) []byte {
	if c.off+n > len(c.data) {
		c.failed = true
		return nil
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b
}

func (c *cursor) uint32() uint32 {
	b := c.bytes(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (c *cursor) uint64() uint64 {
	b := c.bytes(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (c *cursor) skip(n int) {
	if c.off+n > len(c.data) {
		c.failed = true
		return
	}
	c.off += n
}
