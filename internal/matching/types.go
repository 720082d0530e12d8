package matching

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Level 角色等级，排序关系 entry < mid < advanced
type Level int

const (
	LevelEntry Level = iota
	LevelMid
	LevelAdvanced
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mid":
		return LevelMid
	case "advanced":
		return LevelAdvanced
	default:
		return LevelEntry
	}
}

func (l Level) String() string {
	switch l {
	case LevelMid:
		return "mid"
	case LevelAdvanced:
		return "advanced"
	default:
		return "entry"
	}
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("level must be a string: %w", err)
	}
	*l = ParseLevel(s)
	return nil
}

// Importance 技能重要程度
type Importance string

const (
	ImportanceEssential  Importance = "essential"
	ImportanceImportant  Importance = "important"
	ImportanceNiceToHave Importance = "nice-to-have"
)

func (i Importance) multiplier() int {
	switch i {
	case ImportanceEssential:
		return 3
	case ImportanceImportant:
		return 2
	default:
		return 1
	}
}

// SkillEntry 用户自评的单项技能
type SkillEntry struct {
	Selected bool `json:"selected"`
	Level    int  `json:"level"`
}

// SkillMap 技能名 -> 自评
type SkillMap map[string]SkillEntry

// NormalizeSkillKey 技能名比较时忽略大小写与多余空白
func NormalizeSkillKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// index 以规范化的技能名建立索引，未勾选的技能视为未掌握
func (m SkillMap) index() map[string]int {
	idx := make(map[string]int, len(m))
	for name, entry := range m {
		if !entry.Selected {
			continue
		}
		idx[NormalizeSkillKey(name)] = entry.Level
	}
	return idx
}

// SelectedCount 已勾选的技能数量
func (m SkillMap) SelectedCount() int {
	n := 0
	for _, entry := range m {
		if entry.Selected {
			n++
		}
	}
	return n
}

type RequiredSkill struct {
	SkillID       string     `json:"skillId"`
	SkillName     string     `json:"skillName"`
	RequiredLevel int        `json:"requiredLevel"`
	Importance    Importance `json:"importance"`
}

// CareerRole 扁平职业角色，引擎只读
type CareerRole struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Slug              string                 `json:"slug"`
	Description       string                 `json:"description,omitempty"`
	Level             Level                  `json:"level"`
	RequiredSkills    []RequiredSkill        `json:"requiredSkills"`
	DesiredRIASEC     map[string]float64     `json:"desiredRIASEC,omitempty"`
	DesiredBigFive    map[string]TraitTarget `json:"desiredBigFive,omitempty"`
	WorkValues        []string               `json:"workValues,omitempty"`
	PersonalityTraits []string               `json:"personalityTraits,omitempty"`
	LearningStyles    []string               `json:"learningStyles,omitempty"`
	AverageSalary     float64                `json:"averageSalary,omitempty"`
	JobGrowth         string                 `json:"jobGrowth,omitempty"`
	Roadmap           json.RawMessage        `json:"roadmap,omitempty"`
	DetailedRoadmap   json.RawMessage        `json:"detailedRoadmap,omitempty"`
}

// Spec 转换为打分用的角色描述
func (r CareerRole) Spec() RoleSpec {
	required := make(map[string]int, len(r.RequiredSkills))
	for _, s := range r.RequiredSkills {
		required[s.SkillName] = s.RequiredLevel
	}
	return RoleSpec{
		Name:           r.Name,
		Level:          r.Level,
		RequiredSkills: required,
		Personality:    NewPersonalitySpec(r.DesiredRIASEC, r.DesiredBigFive, r.WorkValues, r.PersonalityTraits),
		LearningStyles: r.LearningStyles,
	}
}

// PathRole 旧版职业路径中的某一级角色
type PathRole struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Level             Level                  `json:"level"`
	RequiredSkills    map[string]int         `json:"requiredSkills"`
	DesiredRIASEC     map[string]float64     `json:"desiredRIASEC,omitempty"`
	DesiredBigFive    map[string]TraitTarget `json:"desiredBigFive,omitempty"`
	WorkValues        []string               `json:"workValues,omitempty"`
	PersonalityTraits []string               `json:"personalityTraits,omitempty"`
	LearningStyles    []string               `json:"learningStyles,omitempty"`
}

func (r PathRole) Spec() RoleSpec {
	return RoleSpec{
		Name:           r.Name,
		Level:          r.Level,
		RequiredSkills: r.RequiredSkills,
		Personality:    NewPersonalitySpec(r.DesiredRIASEC, r.DesiredBigFive, r.WorkValues, r.PersonalityTraits),
		LearningStyles: r.LearningStyles,
	}
}

// CareerPath 旧版分级职业路径，Roles 按录入顺序排列
type CareerPath struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Slug  string     `json:"slug"`
	Roles []PathRole `json:"roles"`
}

// RoleSpec 两种匹配策略共用的角色打分输入
type RoleSpec struct {
	Name           string
	Level          Level
	RequiredSkills map[string]int
	Personality    PersonalitySpec
	LearningStyles []string
}

// Preferences 用户额外声明的偏好
type Preferences struct {
	LearningStyle []string `json:"learningStyle,omitempty"`
}

// UserData 每次请求只构建一次的规范化用户数据
type UserData struct {
	Skills         SkillMap
	Profile        Profile
	TraitFlags     map[string]bool
	LearningStyles []string

	skillIndex map[string]int
}

func NormalizeUser(skills SkillMap, profile Profile, prefs Preferences) UserData {
	styles := mergeStyles(profile.LearningStyle, prefs.LearningStyle)
	return UserData{
		Skills:         skills,
		Profile:        profile,
		TraitFlags:     MapProfileToTraitFlags(profile),
		LearningStyles: styles,
		skillIndex:     skills.index(),
	}
}

func (u UserData) levels() map[string]int {
	if u.skillIndex != nil {
		return u.skillIndex
	}
	return u.Skills.index()
}

type MissingSkill struct {
	Skill string `json:"skill"`
	Have  int    `json:"have"`
	Need  int    `json:"need"`
}

// RoleScore 单个角色的打分结果
type RoleScore struct {
	SkillFit       float64        `json:"skillFit"`
	PersonalityFit float64        `json:"personalityFit"`
	LearningFit    float64        `json:"learningFit"`
	WeightedScore  int            `json:"weightedScore"`
	Qualifies      bool           `json:"qualifies"`
	MissingSkills  []MissingSkill `json:"missingSkills"`
	Fallback       bool           `json:"fallback,omitempty"`
}

type RoleMatch struct {
	Role CareerRole `json:"role"`
	RoleScore
}

type PathRoleMatch struct {
	Role PathRole `json:"role"`
	RoleScore
}

type PathMatch struct {
	PathID      string          `json:"pathId"`
	PathName    string          `json:"pathName"`
	PathSlug    string          `json:"pathSlug"`
	CurrentRole *PathRoleMatch  `json:"currentRole"`
	NextRole    *PathRoleMatch  `json:"nextRole"`
	PathScore   int             `json:"pathScore"`
	Roles       []PathRoleMatch `json:"roles"`
}
