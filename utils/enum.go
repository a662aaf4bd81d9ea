package utils

// Cycle steps current by direction over the closed range [0, last],
// wrapping at both ends.
func Cycle[T ~int](current T, direction int, last T) T {
	n := int(last) + 1
	return T(((int(current)+direction)%n + n) % n)
}

func GetNextEnum[T ~int](current T, last T) T {
	return Cycle(current, 1, last)
}

func GetPrevEnum[T ~int](current T, last T) T {
	return Cycle(current, -1, last)
}
