package service

import "career_match_backend/internal/matching"

type ProfileRequest struct {
	Answers     matching.Answers     `json:"answers"`
	Preferences matching.Preferences `json:"preferences"`
}

type SkillFitRequest struct {
	RequiredSkills map[string]int    `json:"requiredSkills" binding:"required,min=1"`
	Skills         matching.SkillMap `json:"skills"`
}

// SkillsRequest 单个角色的差距分析/路线图
type SkillsRequest struct {
	Skills matching.SkillMap `json:"skills"`
}

// GapRequest RoleSlugs 为空时分析全部角色
type GapRequest struct {
	Skills    matching.SkillMap `json:"skills"`
	RoleSlugs []string          `json:"roleSlugs"`
}

type SkillFitResponse struct {
	SkillFit float64 `json:"skillFit"`
	Percent  int     `json:"percent"`
}
