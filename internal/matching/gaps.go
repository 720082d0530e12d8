package matching

import (
	"fmt"
	"math"
	"sort"
)

type SkillStatus string

const (
	StatusMet              SkillStatus = "met"
	StatusNeedsImprovement SkillStatus = "needs_improvement"
	StatusMissing          SkillStatus = "missing"
)

const (
	weeksPerMissingSkill = 4
	weeksPerLevel        = 2
	maxRecommendations   = 5
)

type SkillDetail struct {
	SkillID       string      `json:"skillId"`
	SkillName     string      `json:"skillName"`
	Importance    Importance  `json:"importance"`
	CurrentLevel  int         `json:"currentLevel"`
	RequiredLevel int         `json:"requiredLevel"`
	LevelsNeeded  int         `json:"levelsNeeded"`
	Status        SkillStatus `json:"status"`
	Priority      int         `json:"priority"`
}

type Recommendation struct {
	Type       string     `json:"type"`
	SkillName  string     `json:"skillName,omitempty"`
	Priority   int        `json:"priority"`
	Importance Importance `json:"importance,omitempty"`
	Message    string     `json:"message"`
}

type TimeEstimate struct {
	TotalWeeks int    `json:"totalWeeks"`
	Months     int    `json:"months"`
	Weeks      int    `json:"weeks"`
	Display    string `json:"display"`
}

// SkillGapReport 单个角色的技能差距报告，不参与排序打分
type SkillGapReport struct {
	RoleID                   string           `json:"roleId"`
	RoleName                 string           `json:"roleName"`
	RoleSlug                 string           `json:"roleSlug"`
	TotalSkills              int              `json:"totalSkills"`
	SkillsMet                int              `json:"skillsMet"`
	SkillsNeedingImprovement int              `json:"skillsNeedingImprovement"`
	SkillsMissing            int              `json:"skillsMissing"`
	OverallProgress          int              `json:"overallProgress"`
	SkillDetails             []SkillDetail    `json:"skillDetails"`
	Recommendations          []Recommendation `json:"recommendations"`
	EstimatedTimeToComplete  TimeEstimate     `json:"estimatedTimeToComplete"`
}

func AnalyzeSkillGaps(role CareerRole, skills SkillMap) SkillGapReport {
	index := make(map[string]SkillEntry, len(skills))
	for name, entry := range skills {
		index[NormalizeSkillKey(name)] = entry
	}

	report := SkillGapReport{
		RoleID:       role.ID,
		RoleName:     role.Name,
		RoleSlug:     role.Slug,
		TotalSkills:  len(role.RequiredSkills),
		SkillDetails: make([]SkillDetail, 0, len(role.RequiredSkills)),
	}

	var have, need, weeks int
	for _, req := range role.RequiredSkills {
		entry := index[NormalizeSkillKey(req.SkillName)]
		current := 0
		if entry.Selected {
			current = entry.Level
		}

		d := SkillDetail{
			SkillID:       req.SkillID,
			SkillName:     req.SkillName,
			Importance:    req.Importance,
			CurrentLevel:  current,
			RequiredLevel: req.RequiredLevel,
		}
		switch {
		case current >= req.RequiredLevel:
			d.Status = StatusMet
			report.SkillsMet++
		case entry.Selected:
			d.Status = StatusNeedsImprovement
			d.LevelsNeeded = req.RequiredLevel - current
			report.SkillsNeedingImprovement++
			weeks += weeksPerLevel * d.LevelsNeeded
		default:
			d.Status = StatusMissing
			d.LevelsNeeded = req.RequiredLevel
			report.SkillsMissing++
			weeks += weeksPerMissingSkill
		}
		d.Priority = req.Importance.multiplier() * d.LevelsNeeded

		have += minInt(current, req.RequiredLevel)
		need += req.RequiredLevel
		report.SkillDetails = append(report.SkillDetails, d)
	}

	sort.SliceStable(report.SkillDetails, func(i, j int) bool {
		a, b := report.SkillDetails[i], report.SkillDetails[j]
		if (a.Status == StatusMissing) != (b.Status == StatusMissing) {
			return a.Status == StatusMissing
		}
		return a.Priority > b.Priority
	})

	if need > 0 {
		report.OverallProgress = int(math.Round(float64(have) / float64(need) * 100))
	}
	report.EstimatedTimeToComplete = estimateTime(weeks)
	report.Recommendations = recommend(report)
	return report
}

// AnalyzeMultipleCareerGaps 按整体进度降序，同进度保持输入顺序
func AnalyzeMultipleCareerGaps(roles []CareerRole, skills SkillMap) []SkillGapReport {
	reports := make([]SkillGapReport, 0, len(roles))
	for _, r := range roles {
		reports = append(reports, AnalyzeSkillGaps(r, skills))
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].OverallProgress > reports[j].OverallProgress
	})
	return reports
}

func estimateTime(totalWeeks int) TimeEstimate {
	t := TimeEstimate{
		TotalWeeks: totalWeeks,
		Months:     totalWeeks / 4,
		Weeks:      totalWeeks % 4,
	}
	switch {
	case totalWeeks == 0:
		t.Display = "Ready now"
	case t.Months == 0:
		t.Display = plural(t.Weeks, "week")
	case t.Weeks == 0:
		t.Display = plural(t.Months, "month")
	default:
		t.Display = plural(t.Months, "month") + " " + plural(t.Weeks, "week")
	}
	return t
}

func recommend(report SkillGapReport) []Recommendation {
	recs := make([]Recommendation, 0, maxRecommendations)
	for _, d := range report.SkillDetails {
		if len(recs) == maxRecommendations {
			break
		}
		switch d.Status {
		case StatusMissing:
			recs = append(recs, Recommendation{
				Type:       "learn",
				SkillName:  d.SkillName,
				Priority:   d.Priority,
				Importance: d.Importance,
				Message:    fmt.Sprintf("Start learning %s and reach level %d", d.SkillName, d.RequiredLevel),
			})
		case StatusNeedsImprovement:
			recs = append(recs, Recommendation{
				Type:       "improve",
				SkillName:  d.SkillName,
				Priority:   d.Priority,
				Importance: d.Importance,
				Message:    fmt.Sprintf("Improve %s from level %d to %d", d.SkillName, d.CurrentLevel, d.RequiredLevel),
			})
		}
	}

	if report.TotalSkills > 0 && report.SkillsMet == report.TotalSkills {
		recs = append(recs, Recommendation{
			Type:    "ready",
			Message: fmt.Sprintf("You meet every skill requirement for %s", report.RoleName),
		})
	}
	return recs
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
