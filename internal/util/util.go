package util

// Pointer simply returns a pointer to the supplied value
func Pointer[T any](v T) *T {
	return &v
}

// ValueOrDefault dereferences ptr or falls back to defaultVal when unset
func ValueOrDefault[T any](ptr *T, defaultVal T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultVal
}

// CloneStrings returns an independent copy of s. A nil or empty input yields
// an empty non-nil slice so JSON renders [] instead of null.
func CloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
