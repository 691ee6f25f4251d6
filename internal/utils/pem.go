// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
)

// ErrNoPEMBlock is returned when the input has no line containing BEGIN.
var ErrNoPEMBlock = errors.New("no PEM block found")

// PEMBody returns the base64 body of the first PEM block in data: the lines
// after the first line containing "BEGIN" and before the next line
// containing "END", joined without line breaks. A block without an END line
// runs to the end of the input.
func PEMBody(data []byte) (string, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	start := -1
	for i, line := range lines {
		if strings.Contains(line, "BEGIN") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return "", ErrNoPEMBlock
	}

	var body strings.Builder
	for _, line := range lines[start:] {
		if strings.Contains(line, "END") {
			break
		}
		body.WriteString(strings.TrimSpace(line))
	}

	return body.String(), nil
}
