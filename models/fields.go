// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldName is a top-level key of the target JSON document that is always
// overwritten by a stamp run. The name doubles as the environment variable
// the value is read from.
type FieldName string

const (
	// ClientID is the application (client) identifier.
	ClientID FieldName = "valueClientId"

	// TenantID is the directory (tenant) identifier.
	TenantID FieldName = "valueTenantId"

	// URL is the public service URL, usually the JWT audience.
	URL FieldName = "valueUrl"

	// KeyName is the display name of the stamped key.
	KeyName FieldName = "valueKeyName"

	// GUID is the identifier of the stamped key.
	GUID FieldName = "valueGuid"

	// Emails is the list of authorized email addresses.
	Emails FieldName = "valueEmails"

	// PublicPem is the PEM-encoded public key.
	PublicPem FieldName = "valuePublicPem"

	// PrivatePem is the PEM-encoded private key.
	PrivatePem FieldName = "valuePrivatePem"
)

// Fields lists every [FieldName] in positional-argument order.
var Fields = []FieldName{
	ClientID,
	TenantID,
	URL,
	KeyName,
	GUID,
	Emails,
	PublicPem,
	PrivatePem,
}

// String returns the key (and environment variable) name.
func (f FieldName) String() string {
	return string(f)
}

// IsPEM reports whether the field carries key material that may be loaded
// from a PEM file.
func (f FieldName) IsPEM() bool {
	return f == PublicPem || f == PrivatePem
}
