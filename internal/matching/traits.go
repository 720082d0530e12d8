package matching

// 旧版布尔特质标签
const (
	FlagAnalytical        = "analytical"
	FlagCreative          = "creative"
	FlagDetailOriented    = "detailOriented"
	FlagTeamPlayer        = "teamPlayer"
	FlagLeadership        = "leadership"
	FlagProblemSolving    = "problemSolving"
	FlagStructured        = "structured"
	FlagCalmUnderPressure = "calmUnderPressure"
	FlagCommunication     = "communication"
)

// MapProfileToTraitFlags 兼容仍以 personalityTraits 列表描述的旧角色
func MapProfileToTraitFlags(p Profile) map[string]bool {
	b5 := p.BigFive
	ri := p.RIASEC

	return map[string]bool{
		FlagAnalytical:        ri[RIASECInvestigative] >= 0.6 || b5[TraitConscientiousness] >= 0.6,
		FlagCreative:          ri[RIASECArtistic] >= 0.6 || b5[TraitOpenness] >= 0.65,
		FlagDetailOriented:    b5[TraitConscientiousness] >= 0.6 || ri[RIASECConventional] >= 0.6,
		FlagTeamPlayer:        ri[RIASECSocial] >= 0.6 || b5[TraitAgreeableness] >= 0.6,
		FlagLeadership:        ri[RIASECEnterprising] >= 0.6 || (b5[TraitExtraversion] >= 0.6 && b5[TraitConscientiousness] >= 0.5),
		FlagProblemSolving:    ri[RIASECInvestigative] >= 0.55 || ri[RIASECRealistic] >= 0.6,
		FlagStructured:        ri[RIASECConventional] >= 0.55 || b5[TraitConscientiousness] >= 0.65,
		FlagCalmUnderPressure: b5[TraitNeuroticism] <= 0.4,
		FlagCommunication:     b5[TraitExtraversion] >= 0.6 || ri[RIASECSocial] >= 0.55,
	}
}
