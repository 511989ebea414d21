// Copyright 2026 The fixnet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package serialization provides the public API for snapshotting and
// restoring a network's parameter buffers.
//
// Example:
//
//	var buf bytes.Buffer
//	if err := serialization.Save(&buf, net); err != nil { ... }
//	...
//	if err := serialization.Load(&buf, net); err != nil { ... }
package serialization

import (
	"io"

	"github.com/fixnet-ml/fixnet/internal/nn"
	"github.com/fixnet-ml/fixnet/internal/serialization"
)

// Errors.
var (
	ErrInvalidMagic       = serialization.ErrInvalidMagic
	ErrUnsupportedVersion = serialization.ErrUnsupportedVersion
	ErrChecksumMismatch   = serialization.ErrChecksumMismatch
	ErrLayerMismatch      = serialization.ErrLayerMismatch
	ErrTruncated          = serialization.ErrTruncated
)

// Save writes a snapshot of every layer's parameters to w.
func Save(w io.Writer, net *nn.Network) error {
	return serialization.Save(w, net)
}

// Load restores a snapshot from r into the network's existing parameter
// buffers. A failed load leaves the network unchanged.
func Load(r io.Reader, net *nn.Network) error {
	return serialization.Load(r, net)
}
