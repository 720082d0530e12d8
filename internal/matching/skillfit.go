package matching

import "sort"

// ComputeSkillFit 计算技能覆盖度 [0,1]。
// 无技能要求时返回 0；未勾选的技能按 0 级计。
func ComputeSkillFit(required map[string]int, user SkillMap) float64 {
	return computeSkillFit(required, user.index())
}

func computeSkillFit(required map[string]int, levels map[string]int) float64 {
	if len(required) == 0 {
		return 0
	}

	sum := 0.0
	for _, name := range sortedSkillNames(required) {
		need := float64(required[name])
		have := float64(levels[NormalizeSkillKey(name)])
		// need 为 0 时这里会得到 NaN/Inf，交给打分器的回退公式处理
		ratio := have / need
		if ratio > 1 {
			ratio = 1
		}
		sum += ratio
	}
	return sum / float64(len(required))
}

func sortedSkillNames(required map[string]int) []string {
	names := make([]string, 0, len(required))
	for name := range required {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
