// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Arguments holds the optional positional values given after the file path,
// keyed by the field they are positioned for.
type Arguments map[FieldName]string

// NewArguments maps positional values onto [Fields] in order. Values beyond
// the eighth are ignored.
func NewArguments(values []string) Arguments {
	args := make(Arguments, len(values))
	for i, v := range values {
		if i >= len(Fields) {
			break
		}
		args[Fields[i]] = v
	}

	return args
}

// Lookup returns the positional value for field, if one was supplied.
func (a Arguments) Lookup(field FieldName) (string, bool) {
	v, ok := a[field]
	return v, ok
}
