package util

// SatSub returns a - b, saturating to zero instead of wrapping when
// b > a. Counter arithmetic must never underflow into huge values.
func SatSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// Pct returns n as a percentage of total, in floating point. Callers
// must handle total == 0 themselves; this reports 0 for it.
func Pct(n, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
