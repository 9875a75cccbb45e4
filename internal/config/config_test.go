package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/linkform/internal/form"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.TrimSpace(body)+"\n"), 0o644))
	return path
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
mode: onSubmit
seed: /tmp/links.json
log:
  level: debug
  file: /tmp/linkform.log
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "onSubmit", cfg.Mode)
	assert.Equal(t, form.OnSubmit, cfg.FormMode())
	assert.Equal(t, "/tmp/links.json", cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/linkform.log", cfg.Log.File)
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, form.OnTouched, cfg.FormMode())
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `mode: onSubmit`)
	t.Setenv("LINKFORM_MODE", "onChange")
	t.Setenv("LINKFORM_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, form.OnChange, cfg.FormMode())
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_RejectsUnknownMode(t *testing.T) {
	path := writeConfig(t, `mode: whenever`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unknown validation mode") {
		t.Fatalf("expected mode error, got %v", err)
	}
}

func TestLoad_RejectsUnknownLevel(t *testing.T) {
	path := writeConfig(t, `
log:
  level: chatty
`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "log.level") {
		t.Fatalf("expected log.level error, got %v", err)
	}
}

func TestLoad_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, `seed: ~/links.yaml`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "links.yaml"), cfg.Seed)
}

func TestYAML(t *testing.T) {
	out, err := Default().YAML()
	require.NoError(t, err)
	assert.Contains(t, out, "mode: onTouched")
	assert.Contains(t, out, "level: info")
}

func TestLoad_Theme(t *testing.T) {
	cfg, err := Load(writeConfig(t, `theme: neon`))
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)

	_, err = Load(writeConfig(t, `theme: plaid`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme")
}
