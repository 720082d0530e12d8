package matching

import (
	"errors"
	"fmt"
)

// MissingAnswerPolicy 决定缺失题目的处理方式
type MissingAnswerPolicy string

const (
	// PolicyStrict 缺题直接报错
	PolicyStrict MissingAnswerPolicy = "strict"
	// PolicyPermissiveZero 缺题按 0 计（默认行为）
	PolicyPermissiveZero MissingAnswerPolicy = "permissive-zero"
	// PolicyPermissiveNeutral 缺题按中性值 0.5 计
	PolicyPermissiveNeutral MissingAnswerPolicy = "permissive-neutral"
)

// 回退公式的固定权重，不随配置变化
const (
	fallbackSkillWeight       = 0.6
	fallbackPersonalityWeight = 0.3
	fallbackLearningWeight    = 0.1
)

type Weights struct {
	Skills        float64 `json:"skills" mapstructure:"skills"`
	Personality   float64 `json:"personality" mapstructure:"personality"`
	LearningStyle float64 `json:"learningStyle" mapstructure:"learning_style"`
}

type PersonalityWeights struct {
	RIASEC     float64 `json:"riasec" mapstructure:"riasec"`
	BigFive    float64 `json:"bigFive" mapstructure:"big_five"`
	WorkValues float64 `json:"workValues" mapstructure:"work_values"`
}

// Thresholds 各等级的技能匹配合格线（闭区间）
type Thresholds struct {
	Entry    float64 `json:"entry" mapstructure:"entry"`
	Mid      float64 `json:"mid" mapstructure:"mid"`
	Advanced float64 `json:"advanced" mapstructure:"advanced"`
}

func (t Thresholds) For(level Level) float64 {
	switch level {
	case LevelMid:
		return t.Mid
	case LevelAdvanced:
		return t.Advanced
	default:
		return t.Entry
	}
}

// Config 匹配引擎的全部可调参数。按值传递，引擎内部不持有全局状态。
type Config struct {
	Weights            Weights             `json:"weights"`
	PersonalityWeights PersonalityWeights  `json:"personalityWeights"`
	Thresholds         Thresholds          `json:"thresholds"`
	GapDelta           float64             `json:"gapDelta"`
	MissingAnswers     MissingAnswerPolicy `json:"missingAnswers"`
}

func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Skills:        0.60,
			Personality:   0.40,
			LearningStyle: 0.00,
		},
		PersonalityWeights: PersonalityWeights{
			RIASEC:     0.45,
			BigFive:    0.35,
			WorkValues: 0.20,
		},
		Thresholds: Thresholds{
			Entry:    0.30,
			Mid:      0.60,
			Advanced: 0.80,
		},
		GapDelta:       0.5,
		MissingAnswers: PolicyPermissiveZero,
	}
}

func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"weights.skills":                c.Weights.Skills,
		"weights.personality":           c.Weights.Personality,
		"weights.learningStyle":         c.Weights.LearningStyle,
		"personalityWeights.riasec":     c.PersonalityWeights.RIASEC,
		"personalityWeights.bigFive":    c.PersonalityWeights.BigFive,
		"personalityWeights.workValues": c.PersonalityWeights.WorkValues,
		"thresholds.entry":              c.Thresholds.Entry,
		"thresholds.mid":                c.Thresholds.Mid,
		"thresholds.advanced":           c.Thresholds.Advanced,
		"gapDelta":                      c.GapDelta,
	} {
		if v < 0 {
			return fmt.Errorf("matching config: %s must not be negative (got %v)", name, v)
		}
	}

	switch c.MissingAnswers {
	case PolicyStrict, PolicyPermissiveZero, PolicyPermissiveNeutral:
	default:
		return fmt.Errorf("matching config: %w: %q", ErrUnknownPolicy, c.MissingAnswers)
	}
	return nil
}

var (
	ErrUnknownPolicy     = errors.New("unknown missing answer policy")
	ErrIncompleteAnswers = errors.New("incomplete quiz answers")
)
