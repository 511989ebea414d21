// Copyright 2026 The fixnet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package config provides the public API for building networks from YAML
// topology descriptions.
//
// Example:
//
//	desc, err := config.LoadFile("net.yaml")
//	if err != nil { ... }
//	net, err := desc.Build()
package config

import (
	"github.com/fixnet-ml/fixnet/internal/config"
)

// Network describes a feed-forward topology.
type Network = config.Network

// Layer describes one dense layer and the activation composed after it.
type Layer = config.Layer

// Load parses a YAML network description.
func Load(data []byte) (*Network, error) {
	return config.Load(data)
}

// LoadFile parses a YAML network description from a file.
func LoadFile(path string) (*Network, error) {
	return config.LoadFile(path)
}
