package matching

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformAnswers(score int) Answers {
	a := make(Answers, QuestionCount)
	for id := 1; id <= QuestionCount; id++ {
		a[id] = score
	}
	return a
}

func TestScorePersonality_AllFives(t *testing.T) {
	p, err := ScorePersonality(uniformAnswers(5), Preferences{}, DefaultConfig())
	require.NoError(t, err)

	// 正反向题各半，Big Five 落在中间
	for _, trait := range []string{TraitOpenness, TraitConscientiousness, TraitExtraversion, TraitAgreeableness, TraitNeuroticism} {
		assert.InDelta(t, 0.5, p.BigFive[trait], 1e-9, trait)
	}
	assert.Len(t, p.RIASEC, 6)
	assert.Len(t, p.WorkValues, 6)
	for _, v := range p.RIASEC {
		assert.Equal(t, 1.0, v)
	}
	assert.Equal(t, []string{StyleVisual, StyleHandsOn, StyleReading, StyleAuditory}, p.LearningStyle)
}

func TestScorePersonality_Completeness(t *testing.T) {
	for score := 1; score <= 5; score++ {
		p, err := ScorePersonality(uniformAnswers(score), Preferences{}, DefaultConfig())
		require.NoError(t, err)
		for _, group := range []map[string]float64{p.BigFive, p.RIASEC, p.WorkValues} {
			for k, v := range group {
				assert.GreaterOrEqual(t, v, 0.0, k)
				assert.LessOrEqual(t, v, 1.0, k)
			}
		}
		assert.NotEmpty(t, p.LearningStyle)
	}
}

func TestScorePersonality_TraitAssignment(t *testing.T) {
	a := uniformAnswers(3)
	a[1], a[2], a[3], a[4] = 5, 5, 1, 1
	a[22] = 5
	a[28] = 1

	p, err := ScorePersonality(a, Preferences{}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.BigFive[TraitExtraversion])
	assert.Equal(t, 0.5, p.BigFive[TraitAgreeableness])
	assert.Equal(t, 1.0, p.RIASEC[RIASECInvestigative])
	assert.Equal(t, 0.0, p.WorkValues[ValueIndependence])
	assert.Equal(t, []string{StyleAuditory}, p.LearningStyle)
}

func TestScorePersonality_DefaultAndPreferredStyles(t *testing.T) {
	p, err := ScorePersonality(uniformAnswers(3), Preferences{}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{StyleHandsOn}, p.LearningStyle)

	p, err = ScorePersonality(uniformAnswers(3), Preferences{LearningStyle: []string{StyleVisual, " visual ", ""}}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{StyleVisual}, p.LearningStyle)
}

func TestScorePersonality_MissingAnswerPolicies(t *testing.T) {
	cfg := DefaultConfig()

	p, err := ScorePersonality(Answers{}, Preferences{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.BigFive[TraitOpenness])
	assert.Equal(t, 0.0, p.RIASEC[RIASECSocial])

	cfg.MissingAnswers = PolicyPermissiveNeutral
	p, err = ScorePersonality(Answers{}, Preferences{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, NeutralProfile().BigFive, p.BigFive)
	assert.Equal(t, NeutralProfile().RIASEC, p.RIASEC)

	cfg.MissingAnswers = PolicyStrict
	a := uniformAnswers(4)
	delete(a, 7)
	delete(a, 32)
	_, err = ScorePersonality(a, Preferences{}, cfg)
	require.ErrorIs(t, err, ErrIncompleteAnswers)
	assert.Contains(t, err.Error(), "[7 32]")

	_, err = ScorePersonality(uniformAnswers(4), Preferences{}, cfg)
	assert.NoError(t, err)
}

func TestAnswers_UnmarshalJSON(t *testing.T) {
	var a Answers
	require.NoError(t, json.Unmarshal([]byte(`{"1":4,"q2":5,"Q3":2}`), &a))
	assert.Equal(t, Answers{1: 4, 2: 5, 3: 2}, a)

	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"score":3},{"id":"q10","score":5}]`), &a))
	assert.Equal(t, Answers{1: 3, 10: 5}, a)

	assert.Error(t, json.Unmarshal([]byte(`{"abc":4}`), &a))
	assert.Error(t, json.Unmarshal([]byte(`[{"id":true,"score":4}]`), &a))
}

func TestAnswers_Missing(t *testing.T) {
	a := uniformAnswers(2)
	delete(a, 5)
	a[6] = 0
	assert.Equal(t, []int{5, 6}, a.Missing())
}

func TestNeutralProfile(t *testing.T) {
	p := NeutralProfile()
	assert.Len(t, p.BigFive, 5)
	assert.Len(t, p.RIASEC, 6)
	assert.Len(t, p.WorkValues, 6)
	assert.Equal(t, 0.5, p.WorkValues[ValueWorkingConditions])
	assert.Equal(t, []string{StyleHandsOn}, p.LearningStyle)
}

func TestProfile_WithPreferences(t *testing.T) {
	p := NeutralProfile().WithPreferences(Preferences{LearningStyle: []string{StyleVisual, StyleHandsOn, " "}})
	assert.Equal(t, []string{StyleHandsOn, StyleVisual}, p.LearningStyle)
	assert.Equal(t, 0.5, p.BigFive[TraitOpenness])
}
