package util

func Contains[T comparable](items []T, wantedItem T) bool {
	for _, item := range items {
		if item == wantedItem {
			return true
		}
	}
	return false
}
