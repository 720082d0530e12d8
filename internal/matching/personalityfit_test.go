package matching

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRIASECFit(t *testing.T) {
	user := map[string]float64{RIASECInvestigative: 0.8, RIASECRealistic: 0.2}

	assert.Equal(t, 0.0, RIASECFit(user, nil))
	assert.InDelta(t, 0.9, RIASECFit(user, map[string]float64{RIASECInvestigative: 0.9, RIASECRealistic: 0.3}), 1e-9)
	// 用户缺失的维度按 0 计
	assert.InDelta(t, 0.0, RIASECFit(user, map[string]float64{RIASECArtistic: 1}), 1e-9)
}

func TestBigFiveFit(t *testing.T) {
	user := map[string]float64{
		TraitOpenness:          0.9,
		TraitConscientiousness: 0.3,
		TraitNeuroticism:       0.2,
	}

	tests := []struct {
		name    string
		desired map[string]TraitTarget
		want    float64
	}{
		{"empty", nil, 0},
		{"high", map[string]TraitTarget{TraitOpenness: KeywordTarget("high")}, 0.8},
		{"high below midpoint clamps", map[string]TraitTarget{TraitConscientiousness: KeywordTarget("High")}, 0},
		{"low", map[string]TraitTarget{TraitNeuroticism: KeywordTarget("low")}, 0.6},
		{"neutral", map[string]TraitTarget{TraitConscientiousness: KeywordTarget("neutral")}, 1},
		{"unknown keyword", map[string]TraitTarget{TraitOpenness: KeywordTarget("very")}, 0},
		{"numeric", map[string]TraitTarget{TraitOpenness: NumericTarget(0.7)}, 0.8},
		{"mixed", map[string]TraitTarget{TraitOpenness: KeywordTarget("high"), TraitConscientiousness: KeywordTarget("neutral")}, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BigFiveFit(user, tt.desired), 1e-9)
		})
	}
}

func TestWorkValuesFit(t *testing.T) {
	user := map[string]float64{ValueAchievement: 1, ValueWorkingConditions: 0.5}

	assert.Equal(t, 0.0, WorkValuesFit(user, nil))
	assert.InDelta(t, 0.75, WorkValuesFit(user, []string{ValueAchievement, "Working Conditions"}), 1e-9)
	assert.InDelta(t, 0.5, WorkValuesFit(user, []string{ValueAchievement, ValueSupport}), 1e-9)
}

func TestTraitTarget_JSON(t *testing.T) {
	var targets map[string]TraitTarget
	require.NoError(t, json.Unmarshal([]byte(`{"Openness":"HIGH","Neuroticism":0.25}`), &targets))
	assert.Equal(t, KeywordTarget("high"), targets[TraitOpenness])
	assert.Equal(t, NumericTarget(0.25), targets[TraitNeuroticism])

	out, err := json.Marshal(targets)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Openness":"high","Neuroticism":0.25}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"Openness":[1]}`), &targets))
}

func TestNewPersonalitySpec(t *testing.T) {
	spec := NewPersonalitySpec(nil, nil, []string{ValueAchievement}, []string{FlagAnalytical})
	assert.Equal(t, "vector", spec.Kind())

	spec = NewPersonalitySpec(nil, nil, nil, []string{FlagAnalytical})
	assert.Equal(t, LegacyFlags{Traits: []string{FlagAnalytical}}, spec)
}

func TestPersonalityFit_Vector(t *testing.T) {
	profile := NeutralProfile()
	profile.RIASEC[RIASECInvestigative] = 1
	profile.WorkValues[ValueAchievement] = 1
	user := NormalizeUser(nil, profile, Preferences{})

	spec := VectorSpec{
		RIASEC:     map[string]float64{RIASECInvestigative: 1},
		BigFive:    map[string]TraitTarget{TraitOpenness: KeywordTarget(TargetNeutral)},
		WorkValues: []string{ValueAchievement},
	}
	assert.InDelta(t, 1.0, PersonalityFit(spec, user, DefaultConfig().PersonalityWeights), 1e-9)

	spec.BigFive = nil
	assert.InDelta(t, 0.65, PersonalityFit(spec, user, DefaultConfig().PersonalityWeights), 1e-9)
}

func TestPersonalityFit_Legacy(t *testing.T) {
	profile := NeutralProfile()
	profile.RIASEC[RIASECInvestigative] = 0.9
	user := NormalizeUser(nil, profile, Preferences{})

	w := DefaultConfig().PersonalityWeights
	assert.Equal(t, 0.5, PersonalityFit(LegacyFlags{Traits: []string{FlagAnalytical, FlagCreative}}, user, w))
	assert.Equal(t, 0.0, PersonalityFit(LegacyFlags{}, user, w))
}

func TestPersonalityFit_LegacyFoldsTraitNames(t *testing.T) {
	user := UserData{TraitFlags: map[string]bool{FlagAnalytical: true, FlagDetailOriented: true, FlagCreative: false}}
	w := DefaultConfig().PersonalityWeights

	traits := []string{"Analytical", "detail oriented", " Creative "}
	assert.InDelta(t, 2.0/3.0, PersonalityFit(LegacyFlags{Traits: traits}, user, w), 1e-9)
	assert.Equal(t, 0.0, PersonalityFit(nil, user, w))
}

func TestLearningFit(t *testing.T) {
	assert.Equal(t, 0.0, LearningFit(nil, []string{StyleVisual}))
	assert.Equal(t, 0.5, LearningFit([]string{StyleVisual, StyleReading}, []string{"Visual", StyleHandsOn}))
	assert.Equal(t, 1.0, LearningFit([]string{StyleHandsOn}, []string{StyleHandsOn}))
}
