package serialization

import "github.com/pkg/errors"

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrChecksumMismatch   = errors.New("checksum mismatch: snapshot may be corrupted")
	ErrLayerMismatch      = errors.New("snapshot topology does not match network")
	ErrTruncated          = errors.New("snapshot truncated")
)
