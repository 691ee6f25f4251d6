// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the stamper.
//
// Keeping them in one place ensures consistent wording between the success
// line on stdout and the diagnostics on stderr.
package app

const (
	// AppName is the command name and the "role" of every log entry.
	AppName = "stamper"

	// MsgValuesReplaced is printed to stdout after the file was written.
	MsgValuesReplaced = "Values replaced successfully!"

	// MsgStampFailed is logged when reading, parsing or writing the target
	// file fails.
	MsgStampFailed = "stamp failed"

	// MsgInvalidConfig is logged when the stamper settings cannot be loaded
	// or are invalid.
	MsgInvalidConfig = "invalid configuration"

	// MsgInvalidInvocation is logged when the command line is malformed
	// (missing file path, too many arguments, unknown flag).
	MsgInvalidInvocation = "invalid invocation"
)
