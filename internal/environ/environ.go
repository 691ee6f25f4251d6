// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package environ provides the read-only environment bindings consulted by
// a stamp run. Production code snapshots the process environment once;
// tests build bindings from a plain map so they never touch os.Setenv.
package environ

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// Bindings is a read-only view of environment variables.
type Bindings interface {
	// Lookup returns the value of name and whether it is defined at all.
	// A variable set to the empty string is defined.
	Lookup(name string) (string, bool)

	// Map returns a copy of all bindings.
	Map() map[string]string
}

// MapBindings is a [Bindings] backed by a map.
type MapBindings map[string]string

// Lookup implements [Bindings].
func (m MapBindings) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Map implements [Bindings].
func (m MapBindings) Map() map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// FromOS snapshots the current process environment.
func FromOS() MapBindings {
	return FromList(os.Environ())
}

// FromList builds bindings from KEY=VALUE pairs in the os.Environ format.
func FromList(pairs []string) MapBindings {
	return MapBindings(env.ToMap(pairs))
}
