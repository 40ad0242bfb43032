package util

func MaxI(a, b int64) int64 {
	if a < b {
		return b
	}
	return a
}

func MinI(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
