package matching

import "math"

// RoleScorer 两种排序策略（扁平角色 / 分级路径）共用的单角色打分接口
type RoleScorer interface {
	ScoreRole(role RoleSpec, user UserData) RoleScore
}

// Scorer 默认打分器，权重与阈值来自构造时传入的 Config
type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

func (s *Scorer) Config() Config { return s.cfg }

func (s *Scorer) ScoreRole(role RoleSpec, user UserData) RoleScore {
	levels := user.levels()

	skillFit := computeSkillFit(role.RequiredSkills, levels)
	personalityFit := PersonalityFit(role.Personality, user, s.cfg.PersonalityWeights)
	learningFit := LearningFit(role.LearningStyles, user.LearningStyles)

	score, fallback := s.WeightedScore(skillFit, personalityFit, learningFit)

	return RoleScore{
		SkillFit:       finiteOrZero(skillFit),
		PersonalityFit: finiteOrZero(personalityFit),
		LearningFit:    finiteOrZero(learningFit),
		WeightedScore:  score,
		Qualifies:      skillFit >= s.cfg.Thresholds.For(role.Level),
		MissingSkills:  s.missingSkills(role.RequiredSkills, levels),
		Fallback:       fallback,
	}
}

// WeightedScore 返回 0..100 的整数分；主公式结果无效时改用回退公式，第二个返回值标记是否回退
func (s *Scorer) WeightedScore(skillFit, personalityFit, learningFit float64) (int, bool) {
	w := s.cfg.Weights
	weighted := w.Skills*skillFit + w.Personality*personalityFit + w.LearningStyle*learningFit
	score := math.Round(clamp01(weighted) * 100)
	if isFinite(score) && score >= 0 && score <= 100 {
		return int(score), false
	}
	return fallbackScore(skillFit, personalityFit, learningFit), true
}

func fallbackScore(skillFit, personalityFit, learningFit float64) int {
	pct := func(v float64) float64 {
		return math.Round(finiteOrZero(clamp01(v)) * 100)
	}
	raw := pct(skillFit)*fallbackSkillWeight +
		pct(personalityFit)*fallbackPersonalityWeight +
		pct(learningFit)*fallbackLearningWeight
	return int(math.Round(math.Max(0, math.Min(100, raw))))
}

func (s *Scorer) missingSkills(required map[string]int, levels map[string]int) []MissingSkill {
	missing := make([]MissingSkill, 0)
	for _, name := range sortedSkillNames(required) {
		need := required[name]
		have := levels[NormalizeSkillKey(name)]
		if belowGap(float64(have), float64(need), s.cfg.GapDelta) {
			missing = append(missing, MissingSkill{Skill: name, Have: have, Need: need})
		}
	}
	return missing
}

// belowGap 差距在 gapDelta 以内不算缺失
func belowGap(have, need, gapDelta float64) bool {
	return have+gapDelta < need
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOrZero(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}
