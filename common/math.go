package common

import "github.com/jakecoffman/cp"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return cp.Clamp(v, lo, hi)
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	return int(cp.Clamp(float64(v), float64(lo), float64(hi)))
}

// AbsInt returns |v|.
func AbsInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
