package models

type Item interface {
	GetID() string
}

// IndexOf returns the position of the first item with itemID, or -1.
func IndexOf[T Item](items []T, itemID string) int {

	for i, item := range items {
		if item.GetID() == itemID {
			return i
		}
	}

	return -1
}

// Contains reports whether any item has itemID.
func Contains[T Item](items []T, itemID string) bool {
	return IndexOf(items, itemID) >= 0
}
