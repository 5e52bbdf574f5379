package utils

import "golang.org/x/exp/constraints"

func Max[T constraints.Integer | constraints.Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// AlignUp rounds value up to the next multiple of align.
func AlignUp[T constraints.Integer](value, align T) T {
	if align <= 0 {
		return value
	}
	return (value + align - 1) / align * align
}

// Wrap returns value reduced modulo n, for n > 0.
func Wrap[T constraints.Integer](value, n T) T {
	if n <= 0 {
		return 0
	}
	value %= n
	if value < 0 {
		value += n
	}
	return value
}
