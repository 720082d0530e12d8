package matching

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Big Five 目标关键字
const (
	TargetHigh    = "high"
	TargetLow     = "low"
	TargetNeutral = "neutral"
)

// TraitTarget Big Five 期望值：数值目标或 high/low/neutral 关键字
type TraitTarget struct {
	Value   float64
	Keyword string
}

func NumericTarget(v float64) TraitTarget { return TraitTarget{Value: v} }

func KeywordTarget(k string) TraitTarget {
	return TraitTarget{Keyword: strings.ToLower(strings.TrimSpace(k))}
}

func (t TraitTarget) IsKeyword() bool { return t.Keyword != "" }

func (t TraitTarget) MarshalJSON() ([]byte, error) {
	if t.IsKeyword() {
		return json.Marshal(t.Keyword)
	}
	return json.Marshal(t.Value)
}

func (t *TraitTarget) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*t = NumericTarget(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("trait target must be a number or keyword: %w", err)
	}
	*t = KeywordTarget(s)
	return nil
}

// closeness 未知关键字记 0
func (t TraitTarget) closeness(v float64) float64 {
	if !t.IsKeyword() {
		return 1 - math.Abs(t.Value-v)
	}
	switch t.Keyword {
	case TargetHigh:
		return clamp01((v - 0.5) / 0.5)
	case TargetLow:
		return clamp01((0.5 - v) / 0.5)
	case TargetNeutral:
		return 1
	default:
		return 0
	}
}

// PersonalitySpec 角色的人格期望，VectorSpec 或 LegacyFlags 二选一
type PersonalitySpec interface {
	Kind() string
	fit(user UserData, w PersonalityWeights) float64
}

// VectorSpec 以 RIASEC / Big Five / Work Values 目标向量描述
type VectorSpec struct {
	RIASEC     map[string]float64
	BigFive    map[string]TraitTarget
	WorkValues []string
}

func (VectorSpec) Kind() string { return "vector" }

func (v VectorSpec) fit(user UserData, w PersonalityWeights) float64 {
	p := user.Profile
	return w.RIASEC*RIASECFit(p.RIASEC, v.RIASEC) +
		w.BigFive*BigFiveFit(p.BigFive, v.BigFive) +
		w.WorkValues*WorkValuesFit(p.WorkValues, v.WorkValues)
}

// LegacyFlags 以布尔特质列表描述的旧角色
type LegacyFlags struct {
	Traits []string
}

func (LegacyFlags) Kind() string { return "legacy" }

func (l LegacyFlags) fit(user UserData, _ PersonalityWeights) float64 {
	if len(l.Traits) == 0 {
		return 0
	}
	hit := 0
	for _, t := range l.Traits {
		if lookupFlag(user.TraitFlags, t) {
			hit++
		}
	}
	return float64(hit) / float64(len(l.Traits))
}

// lookupFlag 与向量特质一致，忽略大小写与空白
func lookupFlag(flags map[string]bool, name string) bool {
	if v, ok := flags[name]; ok {
		return v
	}
	want := foldTraitName(name)
	for k, v := range flags {
		if foldTraitName(k) == want {
			return v
		}
	}
	return false
}

// NewPersonalitySpec 只要定义了任一向量目标就走 VectorSpec
func NewPersonalitySpec(riasec map[string]float64, bigFive map[string]TraitTarget, workValues, traits []string) PersonalitySpec {
	if len(riasec) > 0 || len(bigFive) > 0 || len(workValues) > 0 {
		return VectorSpec{RIASEC: riasec, BigFive: bigFive, WorkValues: workValues}
	}
	return LegacyFlags{Traits: traits}
}

func PersonalityFit(spec PersonalitySpec, user UserData, w PersonalityWeights) float64 {
	if spec == nil {
		return 0
	}
	return spec.fit(user, w)
}

func RIASECFit(user, desired map[string]float64) float64 {
	if len(desired) == 0 {
		return 0
	}
	keys := sortedKeys(desired)
	sum := 0.0
	for _, k := range keys {
		sum += 1 - math.Abs(desired[k]-traitValue(user, k))
	}
	return sum / float64(len(keys))
}

func BigFiveFit(user map[string]float64, desired map[string]TraitTarget) float64 {
	if len(desired) == 0 {
		return 0
	}
	keys := make([]string, 0, len(desired))
	for k := range desired {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sum := 0.0
	for _, k := range keys {
		sum += desired[k].closeness(traitValue(user, k))
	}
	return sum / float64(len(keys))
}

func WorkValuesFit(user map[string]float64, desired []string) float64 {
	if len(desired) == 0 {
		return 0
	}
	sum := 0.0
	for _, name := range desired {
		sum += traitValue(user, name)
	}
	return sum / float64(len(desired))
}

// LearningFit 角色学习风格中用户具备的比例，仅用于展示
func LearningFit(roleStyles, userStyles []string) float64 {
	if len(roleStyles) == 0 {
		return 0
	}
	have := make(map[string]bool, len(userStyles))
	for _, s := range userStyles {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}
	hit := 0
	for _, s := range roleStyles {
		if have[strings.ToLower(strings.TrimSpace(s))] {
			hit++
		}
	}
	return float64(hit) / float64(len(roleStyles))
}

// traitValue 先精确匹配，再忽略大小写与空格（"Working Conditions" == "WorkingConditions"）
func traitValue(m map[string]float64, name string) float64 {
	if v, ok := m[name]; ok {
		return v
	}
	want := foldTraitName(name)
	for k, v := range m {
		if foldTraitName(k) == want {
			return v
		}
	}
	return 0
}

func foldTraitName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
