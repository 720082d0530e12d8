package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userWith(skills SkillMap) UserData {
	return NormalizeUser(skills, NeutralProfile(), Preferences{})
}

func TestScorer_WeightedScoreFormula(t *testing.T) {
	s := NewScorer(DefaultConfig())
	for i := 0; i <= 10; i++ {
		for j := 0; j <= 10; j++ {
			skill, pers := float64(i)/10, float64(j)/10
			got, fallback := s.WeightedScore(skill, pers, 1)
			require.False(t, fallback)
			assert.Equal(t, int(math.Round(100*(0.6*skill+0.4*pers))), got, "skill=%v personality=%v", skill, pers)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		}
	}
}

func TestScorer_WeightedScoreFallback(t *testing.T) {
	s := NewScorer(DefaultConfig())

	got, fallback := s.WeightedScore(math.NaN(), 0.5, 1)
	assert.True(t, fallback)
	// 0*0.6 + 50*0.3 + 100*0.1
	assert.Equal(t, 25, got)

	got, fallback = s.WeightedScore(0, 0, 0)
	assert.False(t, fallback)
	assert.Equal(t, 0, got)
}

func TestScorer_ScoreRole(t *testing.T) {
	s := NewScorer(DefaultConfig())
	profile := NeutralProfile()
	profile.RIASEC[RIASECInvestigative] = 1
	user := NormalizeUser(SkillMap{
		"Go":  {Selected: true, Level: 4},
		"SQL": {Selected: true, Level: 1},
	}, profile, Preferences{LearningStyle: []string{StyleReading}})

	role := RoleSpec{
		Name:           "Backend Developer",
		Level:          LevelMid,
		RequiredSkills: map[string]int{"Go": 4, "SQL": 2, "Docker": 2},
		Personality:    VectorSpec{RIASEC: map[string]float64{RIASECInvestigative: 1}},
		LearningStyles: []string{StyleReading, StyleVisual},
	}
	rs := s.ScoreRole(role, user)

	assert.InDelta(t, 0.5, rs.SkillFit, 1e-9)
	assert.InDelta(t, 0.45, rs.PersonalityFit, 1e-9)
	assert.InDelta(t, 0.5, rs.LearningFit, 1e-9)
	assert.Equal(t, 48, rs.WeightedScore)
	assert.False(t, rs.Qualifies)
	assert.False(t, rs.Fallback)
	assert.Equal(t, []MissingSkill{
		{Skill: "Docker", Have: 0, Need: 2},
		{Skill: "SQL", Have: 1, Need: 2},
	}, rs.MissingSkills)
}

func TestScorer_ThresholdInclusive(t *testing.T) {
	s := NewScorer(DefaultConfig())
	required := map[string]int{"Go": 10}

	tests := []struct {
		level Level
		have  int
		want  bool
	}{
		{LevelEntry, 3, true},
		{LevelEntry, 2, false},
		{LevelMid, 6, true},
		{LevelMid, 5, false},
		{LevelAdvanced, 8, true},
		{LevelAdvanced, 7, false},
		{Level(42), 3, true},
	}
	for _, tt := range tests {
		user := userWith(SkillMap{"Go": {Selected: true, Level: tt.have}})
		rs := s.ScoreRole(RoleSpec{Level: tt.level, RequiredSkills: required}, user)
		assert.Equal(t, tt.want, rs.Qualifies, "level=%s have=%d", tt.level, tt.have)
	}
}

func TestBelowGap(t *testing.T) {
	assert.False(t, belowGap(3-0.4, 3, 0.5))
	assert.True(t, belowGap(3-0.6, 3, 0.5))
	assert.False(t, belowGap(3, 3, 0.5))
}

func TestScorer_GapDeltaFromConfig(t *testing.T) {
	role := RoleSpec{RequiredSkills: map[string]int{"Go": 3}}
	user := userWith(SkillMap{"Go": {Selected: true, Level: 2}})

	cfg := DefaultConfig()
	assert.Len(t, NewScorer(cfg).ScoreRole(role, user).MissingSkills, 1)

	cfg.GapDelta = 1
	assert.Empty(t, NewScorer(cfg).ScoreRole(role, user).MissingSkills)
}

func TestScorer_MalformedRequirementUsesFallback(t *testing.T) {
	s := NewScorer(DefaultConfig())
	profile := NeutralProfile()
	profile.RIASEC[RIASECInvestigative] = 1
	user := NormalizeUser(SkillMap{}, profile, Preferences{})

	rs := s.ScoreRole(RoleSpec{
		RequiredSkills: map[string]int{"Go": 0},
		Personality:    VectorSpec{RIASEC: map[string]float64{RIASECInvestigative: 1}},
	}, user)

	assert.True(t, rs.Fallback)
	assert.Equal(t, 0.0, rs.SkillFit)
	// round(45*0.3) = 14
	assert.Equal(t, 14, rs.WeightedScore)
	assert.False(t, rs.Qualifies)
}

func TestScorer_EmptyRoleScoresZeroWithoutFallback(t *testing.T) {
	rs := NewScorer(DefaultConfig()).ScoreRole(RoleSpec{}, userWith(SkillMap{"Go": {Selected: true, Level: 5}}))
	assert.Equal(t, 0, rs.WeightedScore)
	assert.False(t, rs.Fallback)
	assert.NotNil(t, rs.MissingSkills)
}
