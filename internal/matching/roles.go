package matching

import "sort"

// MatchCareerRoles 对所有扁平角色打分并按分数降序返回，不做资格过滤。
// 同分保持输入顺序。
func MatchCareerRoles(roles []CareerRole, user UserData, scorer RoleScorer) []RoleMatch {
	matches := make([]RoleMatch, 0, len(roles))
	for _, r := range roles {
		matches = append(matches, RoleMatch{
			Role:      r,
			RoleScore: scorer.ScoreRole(r.Spec(), user),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].WeightedScore > matches[j].WeightedScore
	})
	return matches
}
