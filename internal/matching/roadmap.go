package matching

type RoadmapSkill struct {
	SkillName  string      `json:"skillName"`
	Importance Importance  `json:"importance"`
	Status     SkillStatus `json:"status"`
	FromLevel  int         `json:"fromLevel"`
	ToLevel    int         `json:"toLevel"`
	Weeks      int         `json:"weeks"`
}

type Phase struct {
	Phase          int            `json:"phase"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Skills         []RoadmapSkill `json:"skills"`
	EstimatedWeeks int            `json:"estimatedWeeks"`
}

// GenerateSkillRoadmap 把差距报告拆成三个阶段：
// Foundation（缺失的 essential）、Core Skills（缺失的 important 及 essential/important 的提升）、
// Specialization（nice-to-have 与未知重要度）。空阶段跳过，编号从 1 连续。
func GenerateSkillRoadmap(report SkillGapReport) []Phase {
	templates := []Phase{
		{Title: "Foundation", Description: "Essential skills you have not started yet"},
		{Title: "Core Skills", Description: "Important skills to learn and core skills to strengthen"},
		{Title: "Specialization", Description: "Nice-to-have skills that round out the role"},
	}

	for _, d := range report.SkillDetails {
		if d.Status == StatusMet {
			continue
		}
		idx := phaseFor(d)
		s := RoadmapSkill{
			SkillName:  d.SkillName,
			Importance: d.Importance,
			Status:     d.Status,
			FromLevel:  d.CurrentLevel,
			ToLevel:    d.RequiredLevel,
		}
		if d.Status == StatusMissing {
			s.Weeks = weeksPerMissingSkill
		} else {
			s.Weeks = weeksPerLevel * d.LevelsNeeded
		}
		templates[idx].Skills = append(templates[idx].Skills, s)
		templates[idx].EstimatedWeeks += s.Weeks
	}

	phases := make([]Phase, 0, len(templates))
	for _, p := range templates {
		if len(p.Skills) == 0 {
			continue
		}
		p.Phase = len(phases) + 1
		phases = append(phases, p)
	}
	return phases
}

func phaseFor(d SkillDetail) int {
	switch d.Importance {
	case ImportanceEssential:
		if d.Status == StatusMissing {
			return 0
		}
		return 1
	case ImportanceImportant:
		return 1
	default:
		return 2
	}
}
