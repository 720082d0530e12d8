package repository

import (
	"career_match_backend/internal/matching"
	"career_match_backend/internal/model"
	"career_match_backend/pkg/database"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func roleModel(t *testing.T, slug, name string) *model.CareerRole {
	t.Helper()
	m, err := model.NewCareerRole(matching.CareerRole{
		Slug:  slug,
		Name:  name,
		Level: matching.LevelMid,
		RequiredSkills: []matching.RequiredSkill{
			{SkillID: "go", SkillName: "Go", RequiredLevel: 3, Importance: matching.ImportanceEssential},
		},
		DesiredRIASEC:  map[string]float64{matching.RIASECInvestigative: 0.8},
		DesiredBigFive: map[string]matching.TraitTarget{matching.TraitConscientiousness: matching.KeywordTarget("high")},
		WorkValues:     []string{matching.ValueAchievement},
		LearningStyles: []string{matching.StyleHandsOn},
		AverageSalary:  95000,
	})
	require.NoError(t, err)
	return m
}

func TestCareerRoleRepository(t *testing.T) {
	repo := NewCareerRoleRepository(newTestDB(t))

	require.NoError(t, repo.Upsert(roleModel(t, "backend", "Backend Developer")))
	require.NoError(t, repo.Upsert(roleModel(t, "analyst", "Data Analyst")))
	require.NoError(t, repo.Upsert(roleModel(t, "backend", "Backend Engineer")))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Backend Engineer", list[0].Name)
	assert.Equal(t, "Data Analyst", list[1].Name)

	found, err := repo.FindBySlug("backend")
	require.NoError(t, err)
	role, err := found.ToMatching()
	require.NoError(t, err)
	assert.Equal(t, matching.LevelMid, role.Level)
	assert.Equal(t, 0.8, role.DesiredRIASEC[matching.RIASECInvestigative])
	assert.Equal(t, matching.KeywordTarget("high"), role.DesiredBigFive[matching.TraitConscientiousness])
	assert.Equal(t, "Go", role.RequiredSkills[0].SkillName)
	assert.Equal(t, matching.ImportanceEssential, role.RequiredSkills[0].Importance)
	assert.Empty(t, role.PersonalityTraits)

	_, err = repo.FindBySlug("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	bySlugs, err := repo.FindBySlugs([]string{"analyst", "missing", "backend", "analyst"})
	require.NoError(t, err)
	require.Len(t, bySlugs, 2)
	assert.Equal(t, "analyst", bySlugs[0].Slug)
	assert.Equal(t, "backend", bySlugs[1].Slug)
}

func TestCareerPathRepository_ReplaceBySlug(t *testing.T) {
	repo := NewCareerPathRepository(newTestDB(t))

	path, err := model.NewCareerPath(matching.CareerPath{
		Slug: "backend",
		Name: "Backend",
		Roles: []matching.PathRole{
			{Name: "Junior", Level: matching.LevelEntry, RequiredSkills: map[string]int{"Go": 2}},
			{Name: "Senior", Level: matching.LevelAdvanced, RequiredSkills: map[string]int{"Go": 5}},
			{Name: "Mid", Level: matching.LevelMid, RequiredSkills: map[string]int{"Go": 4}},
		},
	}, "server side")
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceBySlug(path))
	firstID := path.ID

	stored, err := repo.FindBySlug("backend")
	require.NoError(t, err)
	require.Len(t, stored.Roles, 3)
	assert.Equal(t, []string{"Junior", "Senior", "Mid"}, []string{stored.Roles[0].Name, stored.Roles[1].Name, stored.Roles[2].Name})

	replacement, err := model.NewCareerPath(matching.CareerPath{
		Slug: "backend",
		Name: "Backend Engineering",
		Roles: []matching.PathRole{
			{Name: "Engineer", Level: matching.LevelMid, RequiredSkills: map[string]int{"Go": 3}},
		},
	}, "")
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceBySlug(replacement))
	assert.Equal(t, firstID, replacement.ID)

	paths, err := repo.List()
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, "Backend Engineering", paths[0].Name)
	require.Len(t, paths[0].Roles, 1)

	converted, err := paths[0].ToMatching()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Go": 3}, converted.Roles[0].RequiredSkills)
	assert.Equal(t, matching.LevelMid, converted.Roles[0].Level)

	var orphaned int64
	require.NoError(t, repo.DB.Unscoped().Model(&model.PathRole{}).Count(&orphaned).Error)
	assert.EqualValues(t, 1, orphaned)
}

func TestAssessmentRepository(t *testing.T) {
	repo := NewAssessmentRepository(newTestDB(t))

	base := time.Now().Add(-time.Hour)
	for i, ref := range []string{"u1", "u1", "u2", "u1"} {
		s, err := model.NewQuizSubmission(ref, matching.Answers{1: 5}, matching.Preferences{}, matching.NeutralProfile(), matching.PolicyPermissiveZero)
		require.NoError(t, err)
		s.TopScore = i
		s.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.CreateSubmission(s))
	}

	list, err := repo.ListSubmissionsByUser("u1", 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 3, list[0].TopScore)
	assert.Equal(t, 1, list[1].TopScore)

	found, err := repo.FindSubmissionByID(list[0].ID)
	require.NoError(t, err)
	profile, err := found.DecodeProfile()
	require.NoError(t, err)
	assert.Equal(t, matching.NeutralProfile(), profile)

	_, err = repo.FindSubmissionByID("nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestCareerRoleRepository_DriverErrors(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCareerRoleRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `career_roles`").WillReturnError(errors.New("connection reset"))
	_, err := repo.FindBySlug("backend")
	require.Error(t, err)
	assert.NotErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Contains(t, err.Error(), "connection reset")

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `career_roles`").WillReturnError(errors.New("timeout"))
	_, err = repo.Count()
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentRepository_DriverErrors(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssessmentRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `quiz_submissions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_ref", "top_score"}).AddRow("s1", "u1", 42))
	list, err := repo.ListSubmissionsByUser("u1", 5)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 42, list[0].TopScore)

	assert.NoError(t, mock.ExpectationsWereMet())
}
