// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-config-stamper/internal/config"
	"github.com/MKhiriev/go-config-stamper/internal/environ"
	"github.com/MKhiriev/go-config-stamper/internal/logger"
	"github.com/MKhiriev/go-config-stamper/internal/mock"
	"github.com/MKhiriev/go-config-stamper/internal/service"
	"github.com/MKhiriev/go-config-stamper/internal/store"
	"github.com/MKhiriev/go-config-stamper/models"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "appsettings.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func readDoc(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func newStamper(cfg config.Stamp, args models.Arguments) service.StamperService {
	return service.NewStamperService(store.NewFileStore(false, logger.Nop()), cfg, args, fixedID("run-1"), logger.Nop())
}

func allFieldsEnv() environ.MapBindings {
	return environ.MapBindings{
		"valueClientId":   "client",
		"valueTenantId":   "tenant",
		"valueUrl":        "https://example.com/api?x=1&y=2",
		"valueKeyName":    "key",
		"valueGuid":       "2f4f3c1e-0000-4000-8000-000000000000",
		"valueEmails":     "a@x.io,b@x.io",
		"valuePublicPem":  "MIIBIjAN",
		"valuePrivatePem": "MIIEvQIB",
	}
}

// --- core behavior ---

func TestStamp_SingleVariableScenario(t *testing.T) {
	p := writeDoc(t, `{"a":1}`)

	err := newStamper(config.Stamp{}, nil).Stamp(context.Background(), p, environ.MapBindings{"valueClientId": "abc123"})

	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"valueClientId\": \"abc123\"\n}", readDoc(t, p))
}

func TestStamp_AllFieldsWritten(t *testing.T) {
	p := writeDoc(t, `{"keep":{"nested":[1,2]},"valueUrl":"old"}`)

	err := newStamper(config.Stamp{}, nil).Stamp(context.Background(), p, allFieldsEnv())
	require.NoError(t, err)

	want := `{
  "keep": {
    "nested": [
      1,
      2
    ]
  },
  "valueUrl": "https://example.com/api?x=1&y=2",
  "valueClientId": "client",
  "valueTenantId": "tenant",
  "valueKeyName": "key",
  "valueGuid": "2f4f3c1e-0000-4000-8000-000000000000",
  "valueEmails": "a@x.io,b@x.io",
  "valuePublicPem": "MIIBIjAN",
  "valuePrivatePem": "MIIEvQIB"
}`
	assert.Equal(t, want, readDoc(t, p))
}

func TestStamp_UnsetVariableRemovesField(t *testing.T) {
	p := writeDoc(t, `{"valueTenantId":"stale","other":true,"valueGuid":"stale"}`)

	err := newStamper(config.Stamp{}, nil).Stamp(context.Background(), p, environ.MapBindings{"valueGuid": ""})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"other\": true,\n  \"valueGuid\": \"\"\n}", readDoc(t, p))
}

func TestStamp_ArgumentsIgnoredByDefault(t *testing.T) {
	p := writeDoc(t, `{}`)
	args := models.NewArguments([]string{"arg-client", "arg-tenant"})

	err := newStamper(config.Stamp{}, args).Stamp(context.Background(), p, environ.MapBindings{"valueTenantId": "env-tenant"})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"valueTenantId\": \"env-tenant\"\n}", readDoc(t, p))
}

func TestStamp_ArgumentsFallback(t *testing.T) {
	p := writeDoc(t, `{}`)
	args := models.NewArguments([]string{"arg-client", "arg-tenant"})
	fallback := true

	err := newStamper(config.Stamp{ArgsFallback: &fallback}, args).
		Stamp(context.Background(), p, environ.MapBindings{"valueTenantId": "env-tenant"})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"valueClientId\": \"arg-client\",\n  \"valueTenantId\": \"env-tenant\"\n}", readDoc(t, p))
}

func TestStamp_Idempotent(t *testing.T) {
	p := writeDoc(t, `{"z":0,"valueEmails":"x","a":[{"b":null}]}`)
	s := newStamper(config.Stamp{}, nil)
	env := allFieldsEnv()

	require.NoError(t, s.Stamp(context.Background(), p, env))
	once := readDoc(t, p)

	require.NoError(t, s.Stamp(context.Background(), p, env))
	assert.Equal(t, once, readDoc(t, p))
}

func TestStamp_CompactIndent(t *testing.T) {
	p := writeDoc(t, `{"a": 1}`)
	indent := 0

	err := newStamper(config.Stamp{Indent: &indent}, nil).Stamp(context.Background(), p, environ.MapBindings{"valueKeyName": "k"})
	require.NoError(t, err)

	assert.Equal(t, `{"a":1,"valueKeyName":"k"}`, readDoc(t, p))
}

// --- failures leave the file untouched ---

func TestStamp_InvalidJSONNotWritten(t *testing.T) {
	const original = `{"a": 1,,}`
	p := writeDoc(t, original)

	err := newStamper(config.Stamp{}, nil).Stamp(context.Background(), p, allFieldsEnv())

	assert.ErrorIs(t, err, service.ErrParse)
	assert.Equal(t, original, readDoc(t, p))
}

func TestStamp_NonObjectNotWritten(t *testing.T) {
	for _, original := range []string{`[1,2]`, `"text"`, `null`, `7`} {
		t.Run(original, func(t *testing.T) {
			p := writeDoc(t, original)

			err := newStamper(config.Stamp{}, nil).Stamp(context.Background(), p, allFieldsEnv())

			assert.ErrorIs(t, err, service.ErrParse)
			assert.Equal(t, original, readDoc(t, p))
		})
	}
}

func TestStamp_MissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.json")

	err := newStamper(config.Stamp{}, nil).Stamp(context.Background(), p, allFieldsEnv())

	assert.ErrorIs(t, err, service.ErrRead)
	assert.ErrorIs(t, err, store.ErrFileNotFound)
	assert.NoFileExists(t, p)
}

func TestStamp_ParseErrorNeverWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	fileStore := mock.NewMockFileStore(ctrl)

	fileStore.EXPECT().Read(gomock.Any(), "cfg.json").Return([]byte(`not json`), nil)
	// no Write expectation: any write fails the test

	s := service.NewStamperService(fileStore, config.Stamp{}, nil, fixedID("run-1"), logger.Nop())
	err := s.Stamp(context.Background(), "cfg.json", allFieldsEnv())

	assert.ErrorIs(t, err, service.ErrParse)
}

func TestStamp_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	fileStore := mock.NewMockFileStore(ctrl)

	gomock.InOrder(
		fileStore.EXPECT().Read(gomock.Any(), "cfg.json").Return([]byte(`{"a":1}`), nil),
		fileStore.EXPECT().
			Write(gomock.Any(), "cfg.json", []byte("{\n  \"a\": 1,\n  \"valueClientId\": \"abc\"\n}")).
			Return(assert.AnError),
	)

	s := service.NewStamperService(fileStore, config.Stamp{}, nil, fixedID("run-1"), logger.Nop())
	err := s.Stamp(context.Background(), "cfg.json", environ.MapBindings{"valueClientId": "abc"})

	assert.ErrorIs(t, err, service.ErrWrite)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestStamp_ReadErrorFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	fileStore := mock.NewMockFileStore(ctrl)

	fileStore.EXPECT().Read(gomock.Any(), "cfg.json").Return(nil, assert.AnError)

	s := service.NewStamperService(fileStore, config.Stamp{}, nil, fixedID("run-1"), logger.Nop())
	err := s.Stamp(context.Background(), "cfg.json", allFieldsEnv())

	assert.ErrorIs(t, err, service.ErrRead)
	assert.NotErrorIs(t, err, service.ErrWrite)
}

// --- supplemented features ---

func TestStamp_ListFields(t *testing.T) {
	p := writeDoc(t, `{}`)
	cfg := config.Stamp{ListFields: []string{"valueEmails"}}

	err := newStamper(cfg, nil).Stamp(context.Background(), p, environ.MapBindings{"valueEmails": "a@x.io, b@x.io"})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"valueEmails\": [\n    \"a@x.io\",\n    \"b@x.io\"\n  ]\n}", readDoc(t, p))
}

func TestStamp_PEMFiles(t *testing.T) {
	dir := t.TempDir()
	pub := filepath.Join(dir, "public.pem")
	require.NoError(t, os.WriteFile(pub, []byte("-----BEGIN PUBLIC KEY-----\nMIIB\nIjAN\n-----END PUBLIC KEY-----\n"), 0o600))
	p := writeDoc(t, `{}`)
	pemFiles := true

	err := newStamper(config.Stamp{PEMFiles: &pemFiles}, nil).
		Stamp(context.Background(), p, environ.MapBindings{"valuePublicPem": pub})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"valuePublicPem\": \"MIIBIjAN\"\n}", readDoc(t, p))
}

func TestStamp_PEMFileMissingIsReadError(t *testing.T) {
	const original = `{"a":1}`
	p := writeDoc(t, original)
	pemFiles := true

	err := newStamper(config.Stamp{PEMFiles: &pemFiles}, nil).
		Stamp(context.Background(), p, environ.MapBindings{"valuePrivatePem": filepath.Join(t.TempDir(), "nope.pem")})

	assert.ErrorIs(t, err, service.ErrRead)
	assert.Equal(t, original, readDoc(t, p))
}

func TestStamp_PathMappings(t *testing.T) {
	p := writeDoc(t, `{
  "AzureAd": {"ClientId": "old", "TenantId": "old"},
  "TestKeys": [{"Name": "old", "AuthorizedEmailAddress": []}]
}`)
	cfg := config.Stamp{
		ListFields: []string{"TestKeys.0.AuthorizedEmailAddress"},
		Paths: map[string]string{
			"AzureAd.ClientId":                  "newClientId",
			"AzureAd.TenantId":                  "newTenantId",
			"TestKeys.0.Name":                   "newValueKeyName",
			"TestKeys.0.AuthorizedEmailAddress": "newValueEmail",
		},
	}
	env := environ.MapBindings{
		"newClientId":     "cid",
		"newValueKeyName": "kname",
		"newValueEmail":   "a@x.io,b@x.io",
	}

	err := newStamper(cfg, nil).Stamp(context.Background(), p, env)
	require.NoError(t, err)

	want := `{
  "AzureAd": {
    "ClientId": "cid"
  },
  "TestKeys": [
    {
      "Name": "kname",
      "AuthorizedEmailAddress": [
        "a@x.io",
        "b@x.io"
      ]
    }
  ]
}`
	assert.Equal(t, want, readDoc(t, p))
}

func TestStamp_PathMappingOutOfRange(t *testing.T) {
	const original = `{"TestKeys":[]}`
	p := writeDoc(t, original)
	cfg := config.Stamp{Paths: map[string]string{"TestKeys.0.Name": "newValueKeyName"}}

	err := newStamper(cfg, nil).Stamp(context.Background(), p, environ.MapBindings{"newValueKeyName": "k"})

	assert.ErrorIs(t, err, service.ErrParse)
	assert.Equal(t, original, readDoc(t, p))
}
