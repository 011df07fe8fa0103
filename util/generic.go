package util

func First[T any](slice []T, fallback T) T {
	if len(slice) > 0 {
		return slice[0]
	}
	return fallback
}

func Ternary[T any](expression bool, pass, otherwise T) T {
	if expression {
		return pass
	}
	return otherwise
}
