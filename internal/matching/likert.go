package matching

// Normalize 将 1..5 的李克特答案映射到 [0,1]，reverse 为反向计分题。
// 缺失答案（0）按 0 计；越界输入在公式之后截断到 [0,1]。
func Normalize(raw int, reverse bool) float64 {
	if raw == 0 {
		return 0
	}
	effective := raw
	if reverse {
		effective = 6 - raw
	}
	return clamp01(float64(effective-1) / 4)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
