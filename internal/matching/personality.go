package matching

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// QuestionCount 题库固定 32 题，题号即与前端问卷的约定
const QuestionCount = 32

// Big Five
const (
	TraitOpenness          = "Openness"
	TraitConscientiousness = "Conscientiousness"
	TraitExtraversion      = "Extraversion"
	TraitAgreeableness     = "Agreeableness"
	TraitNeuroticism       = "Neuroticism"
)

// RIASEC
const (
	RIASECRealistic     = "Realistic"
	RIASECInvestigative = "Investigative"
	RIASECArtistic      = "Artistic"
	RIASECSocial        = "Social"
	RIASECEnterprising  = "Enterprising"
	RIASECConventional  = "Conventional"
)

// Work Values
const (
	ValueAchievement       = "Achievement"
	ValueIndependence      = "Independence"
	ValueRecognition       = "Recognition"
	ValueRelationships     = "Relationships"
	ValueSupport           = "Support"
	ValueWorkingConditions = "WorkingConditions"
)

// 学习风格标签
const (
	StyleVisual   = "visual"
	StyleHandsOn  = "handsOn"
	StyleReading  = "reading"
	StyleAuditory = "auditory"
)

type quizItem struct {
	id      int
	reverse bool
}

type traitItems struct {
	trait string
	items []quizItem
}

var bigFiveItems = []traitItems{
	{TraitExtraversion, []quizItem{{1, false}, {2, false}, {3, true}, {4, true}}},
	{TraitAgreeableness, []quizItem{{5, false}, {6, false}, {7, true}, {8, true}}},
	{TraitConscientiousness, []quizItem{{9, false}, {10, false}, {11, true}, {12, true}}},
	{TraitNeuroticism, []quizItem{{13, false}, {14, false}, {15, true}, {16, true}}},
	{TraitOpenness, []quizItem{{17, false}, {18, false}, {19, true}, {20, true}}},
}

var riasecItems = []traitItems{
	{RIASECRealistic, []quizItem{{21, false}}},
	{RIASECInvestigative, []quizItem{{22, false}}},
	{RIASECArtistic, []quizItem{{23, false}}},
	{RIASECSocial, []quizItem{{24, false}}},
	{RIASECEnterprising, []quizItem{{25, false}}},
	{RIASECConventional, []quizItem{{26, false}}},
}

var workValueItems = []traitItems{
	{ValueAchievement, []quizItem{{27, false}}},
	{ValueIndependence, []quizItem{{28, false}}},
	{ValueRecognition, []quizItem{{29, false}}},
	{ValueRelationships, []quizItem{{30, false}}},
	{ValueSupport, []quizItem{{31, false}}},
	{ValueWorkingConditions, []quizItem{{32, false}}},
}

// Profile 由答题结果推导出的人格画像，所有数值均在 [0,1]
type Profile struct {
	BigFive       map[string]float64 `json:"bigFive"`
	RIASEC        map[string]float64 `json:"riasec"`
	WorkValues    map[string]float64 `json:"workValues"`
	LearningStyle []string           `json:"learningStyle"`
}

// NeutralProfile 完全没有答题数据时使用的中性画像
func NeutralProfile() Profile {
	fill := func(groups []traitItems) map[string]float64 {
		m := make(map[string]float64, len(groups))
		for _, g := range groups {
			m[g.trait] = 0.5
		}
		return m
	}
	return Profile{
		BigFive:       fill(bigFiveItems),
		RIASEC:        fill(riasecItems),
		WorkValues:    fill(workValueItems),
		LearningStyle: []string{StyleHandsOn},
	}
}

// WithPreferences 把用户声明的学习风格并入画像
func (p Profile) WithPreferences(prefs Preferences) Profile {
	p.LearningStyle = mergeStyles(p.LearningStyle, prefs.LearningStyle)
	return p
}

// Answers 题号(1..32) -> 分值(1..5)
type Answers map[int]int

type AnswerItem struct {
	ID    questionID `json:"id"`
	Score int        `json:"score"`
}

type questionID int

func (q *questionID) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*q = questionID(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("question id must be a number or string: %w", err)
	}
	id, err := parseQuestionID(s)
	if err != nil {
		return err
	}
	*q = questionID(id)
	return nil
}

func parseQuestionID(s string) (int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "q"), "Q")
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid question id %q", s)
	}
	return id, nil
}

func AnswersFromList(items []AnswerItem) Answers {
	a := make(Answers, len(items))
	for _, it := range items {
		a[int(it.ID)] = it.Score
	}
	return a
}

// UnmarshalJSON 同时支持 {"1":4,"q2":5} 与 [{"id":1,"score":4}] 两种提交格式
func (a *Answers) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []AnswerItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*a = AnswersFromList(items)
		return nil
	}

	var raw map[string]int
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	out := make(Answers, len(raw))
	for k, v := range raw {
		id, err := parseQuestionID(k)
		if err != nil {
			return err
		}
		out[id] = v
	}
	*a = out
	return nil
}

// Missing 返回 1..32 中未作答的题号（升序）
func (a Answers) Missing() []int {
	var missing []int
	for id := 1; id <= QuestionCount; id++ {
		if a[id] == 0 {
			missing = append(missing, id)
		}
	}
	return missing
}

// ScorePersonality 把 32 道题的作答聚合成人格画像。
// 只有 strict 策略且存在缺题时才返回错误。
func ScorePersonality(answers Answers, prefs Preferences, cfg Config) (Profile, error) {
	policy := cfg.MissingAnswers
	if policy == PolicyStrict {
		if missing := answers.Missing(); len(missing) > 0 {
			return Profile{}, fmt.Errorf("%w: missing questions %v", ErrIncompleteAnswers, missing)
		}
	}

	itemScore := func(it quizItem) float64 {
		raw := answers[it.id]
		if raw == 0 && policy == PolicyPermissiveNeutral {
			return 0.5
		}
		return Normalize(raw, it.reverse)
	}

	aggregate := func(groups []traitItems) map[string]float64 {
		out := make(map[string]float64, len(groups))
		for _, g := range groups {
			sum := 0.0
			for _, it := range g.items {
				sum += itemScore(it)
			}
			out[g.trait] = sum / float64(len(g.items))
		}
		return out
	}

	p := Profile{
		BigFive:    aggregate(bigFiveItems),
		RIASEC:     aggregate(riasecItems),
		WorkValues: aggregate(workValueItems),
	}
	p.LearningStyle = mergeStyles(deriveLearningStyles(p), prefs.LearningStyle)
	return p, nil
}

func deriveLearningStyles(p Profile) []string {
	var styles []string
	if p.BigFive[TraitOpenness] >= 0.60 || p.RIASEC[RIASECArtistic] >= 0.60 {
		styles = append(styles, StyleVisual)
	}
	if p.WorkValues[ValueAchievement] >= 0.55 || p.WorkValues[ValueIndependence] >= 0.55 {
		styles = append(styles, StyleHandsOn)
	}
	if p.WorkValues[ValueWorkingConditions] >= 0.55 || p.BigFive[TraitConscientiousness] >= 0.62 {
		styles = append(styles, StyleReading)
	}
	if p.BigFive[TraitExtraversion] >= 0.60 || p.RIASEC[RIASECSocial] >= 0.60 {
		styles = append(styles, StyleAuditory)
	}
	return styles
}

// mergeStyles 按出现顺序去重合并，结果为空时默认 handsOn
func mergeStyles(base, extra []string) []string {
	seen := make(map[string]bool, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, s := range list {
			s = strings.TrimSpace(s)
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		out = append(out, StyleHandsOn)
	}
	return out
}

// sortedKeys 供日志与测试输出稳定顺序
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
