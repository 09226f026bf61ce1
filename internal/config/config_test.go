package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dayline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DAYLINE_CONFIG_DIR", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load(New(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.File)
	assert.Equal(t, filepath.Join(DefaultDir(), "dayline.db"), cfg.DBPath)
	assert.False(t, cfg.Log.Debug)
	assert.Equal(t, "Local", cfg.Timezone)

	defs, err := cfg.SlotDefinitions()
	require.NoError(t, err)
	assert.Nil(t, defs)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
db_path: /tmp/day.db
timezone: Asia/Tokyo
log:
  debug: true
  dir: /tmp/logs
slots:
  - number: 1
    name: 朝食
    time: wake+30
  - number: 2
    name: 昼食
    time: "12:00"
  - number: 3
    time: meal2+180
`)

	cfg, err := Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "/tmp/day.db", cfg.DBPath)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "/tmp/logs", cfg.Log.Dir)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())

	defs, err := cfg.SlotDefinitions()
	require.NoError(t, err)
	require.Len(t, defs, 3)
	assert.Equal(t, domain.RelativeTo(domain.WakeAnchor, 30), defs[0].Ref)
	assert.Equal(t, domain.AbsoluteAt(720), defs[1].Ref)
	assert.Equal(t, domain.RelativeTo(domain.SlotAnchor(2), 180), defs[2].Ref)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "db_path: /tmp/file.db\n")
	t.Setenv("DAYLINE_DB_PATH", "/tmp/env.db")
	t.Setenv("DAYLINE_LOG_DEBUG", "true")

	cfg, err := Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.True(t, cfg.Log.Debug)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad timezone", "timezone: Mars/Olympus\n"},
		{"bad slot time", "slots:\n  - number: 1\n    time: lunchtime\n"},
		{"duplicate slot", "slots:\n  - number: 1\n    time: \"08:00\"\n  - number: 1\n    time: \"12:00\"\n"},
		{"zero slot", "slots:\n  - number: 0\n    time: \"08:00\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(New(writeConfig(t, tt.body)))
			assert.Error(t, err)
		})
	}
}

func TestLocation_Local(t *testing.T) {
	cfg := &Config{Timezone: "local"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}
