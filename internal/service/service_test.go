package service

import (
	"career_match_backend/internal/config"
	"career_match_backend/internal/matching"
	"career_match_backend/internal/repository"
	"career_match_backend/pkg/database"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testCatalog = `
version: 1
roles:
  - slug: frontend-developer
    name: Frontend Developer
    level: entry
    requiredSkills:
      - {skillId: html, skillName: HTML, requiredLevel: 3, importance: essential}
      - {skillId: css, skillName: CSS, requiredLevel: 3, importance: essential}
      - {skillId: js, skillName: JavaScript, requiredLevel: 4, importance: essential}
    desiredRIASEC: {Artistic: 0.7, Investigative: 0.6}
    desiredBigFive: {Openness: high, Conscientiousness: 0.7}
    workValues: [Achievement]
    learningStyles: [visual]
  - slug: data-analyst
    name: Data Analyst
    level: mid
    requiredSkills:
      - {skillName: SQL, requiredLevel: 4, importance: essential}
      - {skillName: Python, requiredLevel: 3, importance: important}
    personalityTraits: [analytical, detailOriented]
paths:
  - slug: web
    name: Web Development
    description: From first pages to production apps
    roles:
      - {name: Junior Web Developer, level: entry, requiredSkills: {HTML: 2, CSS: 2}}
      - {name: Web Developer, level: mid, requiredSkills: {HTML: 4, CSS: 4, JavaScript: 4}}
      - {name: Senior Web Engineer, level: advanced, requiredSkills: {JavaScript: 5, React: 4}}
`

type testEnv struct {
	db       *gorm.DB
	mr       *miniredis.Miniredis
	dir      string
	catalog  *CatalogService
	matching *MatchingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()

	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	storageDir := filepath.Join(dir, "storage")
	storage := &StorageService{Provider: &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: storageDir}}}

	roleRepo := repository.NewCareerRoleRepository(db)
	pathRepo := repository.NewCareerPathRepository(db)

	return &testEnv{
		db:      db,
		mr:      mr,
		dir:     storageDir,
		catalog: NewCatalogService(db, roleRepo, pathRepo, storage, "catalog/export.yaml"),
		matching: NewMatchingService(
			roleRepo,
			pathRepo,
			repository.NewAssessmentRepository(db),
			repository.NewProfileCache(rdb, time.Hour),
			matching.DefaultConfig(),
		),
	}
}

func (e *testEnv) importCatalog(t *testing.T) {
	t.Helper()
	_, err := e.catalog.Import(context.Background(), strings.NewReader(testCatalog), "test")
	require.NoError(t, err)
}

func (e *testEnv) writeStorage(t *testing.T, key, content string) {
	t.Helper()
	dst := filepath.Join(e.dir, filepath.FromSlash(key))
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0755))
	require.NoError(t, os.WriteFile(dst, []byte(content), 0644))
}

func uniformAnswers(score int) matching.Answers {
	a := make(matching.Answers, matching.QuestionCount)
	for id := 1; id <= matching.QuestionCount; id++ {
		a[id] = score
	}
	return a
}

func frontendSkills() matching.SkillMap {
	return matching.SkillMap{
		"HTML":       {Selected: true, Level: 3},
		"CSS":        {Selected: true, Level: 3},
		"JavaScript": {Selected: true, Level: 4},
	}
}
