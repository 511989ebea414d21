package serialization

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixnet-ml/fixnet/internal/buffer"
	"github.com/fixnet-ml/fixnet/internal/nn"
)

func buildNet(t *testing.T, seed int64) *nn.Network {
	t.Helper()
	fc1, err := nn.NewFull(2, 3, nn.Xavier(seed))
	require.NoError(t, err)
	act, err := nn.NewActivationLayer(nn.Tanh{}, 3)
	require.NoError(t, err)
	fc2, err := nn.NewFull(3, 1, nn.Xavier(seed+1))
	require.NoError(t, err)

	net, err := nn.NewNetwork(fc1, act, fc2)
	require.NoError(t, err)
	return net
}

func netParams(net *nn.Network) []buffer.View {
	out := make([]buffer.View, net.Len())
	for i := 0; i < net.Len(); i++ {
		out[i] = append(buffer.View(nil), net.Params(i)...)
	}
	return out
}

func TestSnapshot_RoundTrip(t *testing.T) {
	src := buildNet(t, 21)
	want := netParams(src)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, src))

	// Restore into a differently initialized network of the same topology.
	dst := buildNet(t, 99)
	require.NoError(t, Load(bytes.NewReader(buf.Bytes()), dst))

	// Exact bits, not approximate values.
	for i := 0; i < dst.Len(); i++ {
		assert.Equal(t, want[i], append(buffer.View(nil), dst.Params(i)...), "layer %d", i)
	}
}

func TestSnapshot_ChecksumMismatch(t *testing.T) {
	src := buildNet(t, 21)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, src))

	data := buf.Bytes()
	// Flip one bit somewhere in the parameter data.
	data[len(data)-ChecksumSize-3] ^= 0x10

	dst := buildNet(t, 99)
	before := netParams(dst)
	err := Load(bytes.NewReader(data), dst)
	assert.ErrorIs(t, err, ErrChecksumMismatch)

	// A failed load leaves the network untouched.
	assert.Equal(t, before, netParams(dst))
}

func TestSnapshot_InvalidMagic(t *testing.T) {
	src := buildNet(t, 21)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, src))

	// Corrupt the magic and re-sign the payload so only the magic is wrong.
	data := buf.Bytes()
	payload := data[:len(data)-ChecksumSize]
	payload[0] = 'X'
	sum := sha256.Sum256(payload)
	copy(data[len(data)-ChecksumSize:], sum[:])

	err := Load(bytes.NewReader(data), buildNet(t, 99))
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestSnapshot_UnsupportedVersion(t *testing.T) {
	src := buildNet(t, 21)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, src))

	data := buf.Bytes()
	payload := data[:len(data)-ChecksumSize]
	payload[4] = 0xFF
	sum := sha256.Sum256(payload)
	copy(data[len(data)-ChecksumSize:], sum[:])

	err := Load(bytes.NewReader(data), buildNet(t, 99))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestSnapshot_LayerMismatch(t *testing.T) {
	src := buildNet(t, 21)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, src))

	// A network with different dimensions must be rejected, untouched.
	fc, err := nn.NewFull(4, 2, nn.Xavier(5))
	require.NoError(t, err)
	other, err := nn.NewNetwork(fc)
	require.NoError(t, err)
	before := netParams(other)

	err = Load(bytes.NewReader(buf.Bytes()), other)
	assert.ErrorIs(t, err, ErrLayerMismatch)
	assert.Equal(t, before, netParams(other))
}

func TestSnapshot_DimensionMismatch(t *testing.T) {
	src := buildNet(t, 21)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, src))

	// Same layer count, different dimensions.
	fc1, err := nn.NewFull(2, 4, nn.Xavier(1))
	require.NoError(t, err)
	act, err := nn.NewActivationLayer(nn.Tanh{}, 4)
	require.NoError(t, err)
	fc2, err := nn.NewFull(4, 1, nn.Xavier(2))
	require.NoError(t, err)
	other, err := nn.NewNetwork(fc1, act, fc2)
	require.NoError(t, err)
	before := netParams(other)

	err = Load(bytes.NewReader(buf.Bytes()), other)
	assert.ErrorIs(t, err, ErrLayerMismatch)
	assert.Equal(t, before, netParams(other))
}

func TestSnapshot_Truncated(t *testing.T) {
	src := buildNet(t, 21)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, src))

	err := Load(bytes.NewReader(buf.Bytes()[:8]), buildNet(t, 99))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestSnapshot_RestoredNetworkComputesIdentically(t *testing.T) {
	src := buildNet(t, 21)
	in := buffer.View{0.25, -0.75}
	wantOut, err := src.Forward(in)
	require.NoError(t, err)
	want := append(buffer.View(nil), wantOut...)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, src))

	dst := buildNet(t, 99)
	require.NoError(t, Load(&buf, dst))
	gotOut, err := dst.Forward(in)
	require.NoError(t, err)

	assert.Equal(t, want, append(buffer.View(nil), gotOut...))
}
