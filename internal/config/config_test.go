package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "localecsv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, "output:\n  sort: false\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output.Path)
	assert.False(t, cfg.Output.Sort)
	assert.Equal(t, SourceNative, cfg.Catalog.Source)
	assert.Equal(t, "platform", cfg.Records.CharsetNames)
	assert.Empty(t, cfg.Records.MissingField)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Color)
}

func TestLoad_FileValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
output:
  path: out/locales.csv
catalog:
  source: catalog.toml
records:
  charset_names: iana
  missing_field: "-"
log:
  level: debug
  format: json
`))
	require.NoError(t, err)

	assert.Equal(t, "out/locales.csv", cfg.Output.Path)
	assert.True(t, cfg.Output.Sort)
	assert.Equal(t, "catalog.toml", cfg.Catalog.Source)
	assert.Equal(t, "iana", cfg.Records.CharsetNames)
	assert.Equal(t, "-", cfg.Records.MissingField)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("LOCALECSV_OUTPUT_PATH", "from-env.csv")
	t.Setenv("LOCALECSV_RECORDS_MISSING_FIELD", "?")

	cfg, err := Load(writeConfig(t, "output:\n  path: from-file.csv\n"))
	require.NoError(t, err)

	assert.Equal(t, "from-env.csv", cfg.Output.Path)
	assert.Equal(t, "?", cfg.Records.MissingField)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "records:\n  charset_names: ebcdic\n"))
	assert.ErrorContains(t, err, "records.charset_names")

	_, err = Load(writeConfig(t, "log:\n  level: chatty\n"))
	assert.ErrorContains(t, err, "log.level")

	_, err = Load(writeConfig(t, "output:\n  path: \"\"\n"))
	assert.ErrorContains(t, err, "output.path")
}

func TestValidate_CharsetPolicyMatchesNamer(t *testing.T) {
	for _, policy := range []string{"platform", " iana", "IANA ", ""} {
		cfg := Default()
		cfg.Records.CharsetNames = policy
		assert.NoError(t, Validate(&cfg), "policy %q", policy)
	}

	cfg := Default()
	cfg.Records.CharsetNames = "ebcdic"
	assert.ErrorContains(t, Validate(&cfg), "records.charset_names")
}

func TestSaveTemplate_LoadsAsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "localecsv.yaml")
	require.NoError(t, SaveTemplate(path))

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, &want, cfg)
}
