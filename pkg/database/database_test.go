package database

import (
	"career_match_backend/internal/config"
	"career_match_backend/internal/model"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Type:       "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "nested", "career.db"),
	}

	db, err := InitDB(cfg, true)
	require.NoError(t, err)

	for _, table := range []interface{}{&model.CareerRole{}, &model.CareerPath{}, &model.PathRole{}, &model.QuizSubmission{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
	assert.FileExists(t, cfg.SQLitePath)
}

func TestInitDB_UnknownType(t *testing.T) {
	_, err := InitDB(&config.DatabaseConfig{Type: "postgres"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestInitRedis(t *testing.T) {
	rdb, err := InitRedis(&config.RedisConfig{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, rdb)

	mr := miniredis.RunT(t)
	host, portStr, _ := strings.Cut(mr.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	rdb, err = InitRedis(&config.RedisConfig{Enabled: true, Host: host, Port: port})
	require.NoError(t, err)
	require.NotNil(t, rdb)
	defer rdb.Close()

	mr.Close()
	_, err = InitRedis(&config.RedisConfig{Enabled: true, Host: host, Port: port})
	assert.Error(t, err)
}
