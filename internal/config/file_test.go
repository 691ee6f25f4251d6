package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseFile_JSON(t *testing.T) {
	p := writeConfigFile(t, "stamper.json", `{
		"stamp": {
			"indent": 4,
			"atomic": true,
			"list_fields": ["valueEmails"],
			"paths": {"AzureAd.ClientId": "newClientId"}
		},
		"log": {"level": "debug", "format": "json"}
	}`)

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Stamp.IndentWidth())
	assert.True(t, cfg.Stamp.AtomicWrite())
	assert.Nil(t, cfg.Stamp.ArgsFallback)
	assert.Equal(t, []string{"valueEmails"}, cfg.Stamp.ListFields)
	assert.Equal(t, map[string]string{"AzureAd.ClientId": "newClientId"}, cfg.Stamp.Paths)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestParseFile_YAML(t *testing.T) {
	p := writeConfigFile(t, "stamper.yml", `
stamp:
  indent: 0
  pem_files: true
  list_fields:
    - valueEmails
  paths:
    TestKeys.0.Name: newValueKeyName
log:
  level: warn
`)

	cfg, err := parseFile(p)

	require.NoError(t, err)
	require.NotNil(t, cfg.Stamp.Indent)
	assert.Equal(t, 0, *cfg.Stamp.Indent)
	assert.True(t, cfg.Stamp.ReadPEMFiles())
	assert.Equal(t, []string{"valueEmails"}, cfg.Stamp.ListFields)
	assert.Equal(t, map[string]string{"TestKeys.0.Name": "newValueKeyName"}, cfg.Stamp.Paths)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a config file")
}

func TestParseFile_Malformed(t *testing.T) {
	_, err := parseFile(writeConfigFile(t, "bad.json", `{"stamp": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")

	_, err = parseFile(writeConfigFile(t, "bad.yaml", "stamp: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding yaml configs")
}

func TestParseFile_UnsupportedExtension(t *testing.T) {
	_, err := parseFile(writeConfigFile(t, "stamper.toml", `indent = 2`))

	assert.ErrorIs(t, err, ErrUnsupportedConfigFile)
}
