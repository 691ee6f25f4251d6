// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package document implements the JSON object a stamp run mutates.
//
// A [Document] keeps the top-level keys in file order and stores every value
// as the raw JSON it was read as, so untouched values (numbers, nested
// objects, unicode escapes) are written back exactly as found. Only the
// layout whitespace is normalized on [Document.Marshal].
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Document is an insertion-ordered JSON object.
type Document struct {
	fields *orderedmap.OrderedMap[string, json.RawMessage]
}

// empty returns a document without keys.
func empty() *Document {
	return &Document{fields: orderedmap.New[string, json.RawMessage]()}
}

// Parse decodes data into a Document.
//
// Returns an error wrapping [ErrInvalidJSON] when data is not valid JSON and
// [ErrNotObject] when the top-level value is valid but not an object.
func Parse(data []byte) (*Document, error) {
	fields, err := parseObject(data)
	if err != nil {
		return nil, err
	}

	return &Document{fields: fields}, nil
}

// size returns the number of top-level keys.
func (d *Document) size() int {
	return d.fields.Len()
}

// keys returns the top-level keys in document order.
func (d *Document) keys() []string {
	keys := make([]string, 0, d.fields.Len())
	for pair := d.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

// get returns the raw JSON stored under key.
func (d *Document) get(key string) (json.RawMessage, bool) {
	return d.fields.Get(key)
}

// Set stores value under key. An existing key keeps its position; a new key
// is appended.
func (d *Document) Set(key string, value any) error {
	raw, err := encodeValue(value)
	if err != nil {
		return err
	}

	d.fields.Set(key, raw)
	return nil
}

// Delete removes key and reports whether it was present.
func (d *Document) Delete(key string) bool {
	_, present := d.fields.Delete(key)
	return present
}

// Marshal renders the document. indent is the number of spaces per nesting
// level; 0 yields compact output. The output has no trailing newline.
func (d *Document) Marshal(indent int) ([]byte, error) {
	compact, err := encodeObject(d.fields)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if indent <= 0 {
		err = json.Compact(&out, compact)
	} else {
		err = json.Indent(&out, compact, "", strings.Repeat(" ", indent))
	}
	if err != nil {
		return nil, fmt.Errorf("error formatting document: %w", err)
	}

	return out.Bytes(), nil
}

func parseObject(data []byte) (*orderedmap.OrderedMap[string, json.RawMessage], error) {
	var probe json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if kind(probe) != '{' {
		return nil, ErrNotObject
	}

	fields := orderedmap.New[string, json.RawMessage]()
	if err := fields.UnmarshalJSON(probe); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return fields, nil
}

// encodeObject writes fields as compact JSON.
func encodeObject(fields *orderedmap.OrderedMap[string, json.RawMessage]) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		if pair != fields.Oldest() {
			buf.WriteByte(',')
		}

		key, err := encodeValue(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(pair.Value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func encodeArray(items []json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(item)
	}
	buf.WriteByte(']')

	return buf.Bytes()
}

// encodeValue marshals v without HTML escaping so that URLs and PEM bodies
// are written verbatim.
func encodeValue(v any) (json.RawMessage, error) {
	if raw, ok := v.(json.RawMessage); ok {
		return raw, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnencodableValue, err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// kind returns the first significant byte of a JSON value.
func kind(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}

	return trimmed[0]
}
