package config

import (
	"career_match_backend/internal/matching"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
database:
  type: sqlite
storage:
  type: local
  local_path: `+filepath.Join(t.TempDir(), "uploads")+`
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Equal(t, 60, cfg.Cache.ProfileTTLMinutes)
	assert.DirExists(t, cfg.Storage.LocalPath)

	mc, err := cfg.MatchingConfig()
	require.NoError(t, err)
	assert.Equal(t, matching.DefaultConfig(), mc)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := writeConfig(t, `
storage:
  type: minio
matching:
  thresholds:
    entry: 0.25
`)
	t.Setenv("CAREER_MATCH_MATCHING_GAP_DELTA", "1")
	t.Setenv("CAREER_MATCH_MISSING_ANSWER_POLICY", "strict")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	mc, err := cfg.MatchingConfig()
	require.NoError(t, err)
	assert.Equal(t, 0.25, mc.Thresholds.Entry)
	assert.Equal(t, 0.6, mc.Thresholds.Mid)
	assert.Equal(t, 1.0, mc.GapDelta)
	assert.Equal(t, matching.PolicyStrict, mc.MissingAnswers)
}

func TestLoadConfig_RejectsInvalidMatching(t *testing.T) {
	dir := writeConfig(t, `
storage:
  type: minio
matching:
  missing_answer_policy: lenient
`)
	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, matching.ErrUnknownPolicy)

	dir = writeConfig(t, `
storage:
  type: minio
matching:
  weights:
    skills: -1
`)
	_, err = LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
