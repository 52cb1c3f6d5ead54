package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Without returns slice minus every occurrence of items, preserving order.
func Without[T comparable](slice []T, items ...T) []T {
	out := slice[:0:0]
	for _, v := range slice {
		if FindIndex(items, v) == -1 {
			out = append(out, v)
		}
	}
	return out
}
