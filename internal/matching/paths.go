package matching

import "sort"

// MatchCareers 旧版分级路径匹配：为每条路径确定当前角色与下一角色，再按路径分排序
func MatchCareers(paths []CareerPath, user UserData, scorer RoleScorer) []PathMatch {
	results := make([]PathMatch, 0, len(paths))
	for _, p := range paths {
		results = append(results, matchPath(p, user, scorer))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PathScore > results[j].PathScore
	})
	return results
}

func matchPath(p CareerPath, user UserData, scorer RoleScorer) PathMatch {
	scored := make([]PathRoleMatch, 0, len(p.Roles))
	for _, r := range p.Roles {
		scored = append(scored, PathRoleMatch{Role: r, RoleScore: scorer.ScoreRole(r.Spec(), user)})
	}

	result := PathMatch{
		PathID:   p.ID,
		PathName: p.Name,
		PathSlug: p.Slug,
		Roles:    scored,
	}

	var qualified []PathRoleMatch
	for _, m := range scored {
		if m.Qualifies {
			qualified = append(qualified, m)
		}
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		if qualified[i].Role.Level != qualified[j].Role.Level {
			return qualified[i].Role.Level > qualified[j].Role.Level
		}
		return qualified[i].WeightedScore > qualified[j].WeightedScore
	})

	if len(qualified) > 0 {
		current := qualified[0]
		result.CurrentRole = &current
		result.NextRole = nextAbove(scored, current.Role.Level)
		result.PathScore = current.WeightedScore
		return result
	}

	result.NextRole = entryOrFirst(scored)
	best := 0
	for _, m := range scored {
		if m.WeightedScore > best {
			best = m.WeightedScore
		}
	}
	result.PathScore = best
	return result
}

// nextAbove 严格高于 level 的最低等级角色，同级取分高者
func nextAbove(scored []PathRoleMatch, level Level) *PathRoleMatch {
	var next *PathRoleMatch
	for i := range scored {
		m := scored[i]
		if m.Role.Level <= level {
			continue
		}
		if next == nil ||
			m.Role.Level < next.Role.Level ||
			(m.Role.Level == next.Role.Level && m.WeightedScore > next.WeightedScore) {
			picked := m
			next = &picked
		}
	}
	return next
}

func entryOrFirst(scored []PathRoleMatch) *PathRoleMatch {
	for i := range scored {
		if scored[i].Role.Level == LevelEntry {
			m := scored[i]
			return &m
		}
	}
	if len(scored) > 0 {
		m := scored[0]
		return &m
	}
	return nil
}
