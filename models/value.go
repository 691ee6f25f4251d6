// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Value is a resolved replacement for one target of the document.
//
// A Value that is not Present stands for "no value": the target key is
// removed from the document instead of being written.
type Value struct {
	// Raw is the value as read from the environment (or argument).
	Raw string

	// Present is false when neither source defined the value.
	Present bool

	// Source names where Raw came from: "env" or "args".
	Source string
}

// Value sources.
const (
	SourceEnv  = "env"
	SourceArgs = "args"
)
