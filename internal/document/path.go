// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	emptyObject = json.RawMessage(`{}`)
	jsonNull    = json.RawMessage(`null`)
)

// SplitPath splits a dotted path such as "TestKeys.0.Name" into segments.
// Empty segments are rejected.
func SplitPath(path string) ([]string, error) {
	segments := strings.Split(path, ".")
	for _, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}

	return segments, nil
}

// SetPath stores value at a dotted path. Object segments that do not exist
// yet are created; numeric segments index into arrays, which are never
// grown.
func (d *Document) SetPath(path string, value any) error {
	raw, err := encodeValue(value)
	if err != nil {
		return err
	}

	return d.updatePath(path, raw, false)
}

// DeletePath removes the value at a dotted path. An object key is dropped;
// an array element is replaced with null so that later indexes keep their
// positions. Deleting a path whose parent does not exist is a no-op.
func (d *Document) DeletePath(path string) error {
	return d.updatePath(path, nil, true)
}

func (d *Document) updatePath(path string, value json.RawMessage, remove bool) error {
	segments, err := SplitPath(path)
	if err != nil {
		return err
	}

	head := segments[0]
	if len(segments) == 1 {
		if remove {
			d.fields.Delete(head)
		} else {
			d.fields.Set(head, value)
		}
		return nil
	}

	child, ok := d.fields.Get(head)
	if !ok || kind(child) == 'n' {
		if remove {
			return nil
		}
		child = emptyObject
	}

	updated, err := updateIn(child, segments[1:], value, remove)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	d.fields.Set(head, updated)
	return nil
}

func updateIn(raw json.RawMessage, segments []string, value json.RawMessage, remove bool) (json.RawMessage, error) {
	switch kind(raw) {
	case '{':
		return updateObject(raw, segments, value, remove)
	case '[':
		return updateArray(raw, segments, value, remove)
	default:
		return nil, fmt.Errorf("%w at %q", ErrNotContainer, segments[0])
	}
}

func updateObject(raw json.RawMessage, segments []string, value json.RawMessage, remove bool) (json.RawMessage, error) {
	fields := orderedmap.New[string, json.RawMessage]()
	if err := fields.UnmarshalJSON(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	key := segments[0]
	if len(segments) == 1 {
		if remove {
			fields.Delete(key)
		} else {
			fields.Set(key, value)
		}
		return encodeObject(fields)
	}

	child, ok := fields.Get(key)
	if !ok || kind(child) == 'n' {
		if remove {
			return raw, nil
		}
		child = emptyObject
	}

	updated, err := updateIn(child, segments[1:], value, remove)
	if err != nil {
		return nil, err
	}
	fields.Set(key, updated)

	return encodeObject(fields)
}

func updateArray(raw json.RawMessage, segments []string, value json.RawMessage, remove bool) (json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	idx, err := strconv.Atoi(segments[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an array index", ErrInvalidPath, segments[0])
	}
	if idx < 0 || idx >= len(items) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, idx, len(items))
	}

	if len(segments) == 1 {
		if remove {
			items[idx] = jsonNull
		} else {
			items[idx] = value
		}
		return encodeArray(items), nil
	}

	updated, err := updateIn(items[idx], segments[1:], value, remove)
	if err != nil {
		return nil, err
	}
	items[idx] = updated

	return encodeArray(items), nil
}
