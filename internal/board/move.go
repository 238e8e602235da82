package board

import "slices"

// Move returns a copy of items in which the element at index from ends up
// exactly at index to of the result. Every other element keeps its relative
// order. Out-of-range indices or from == to yield an unchanged copy.
//
// Every reorder on the board goes through Move so columns and cards share
// one definition of where an element lands.
func Move[T any](items []T, from, to int) []T {
	out := slices.Clone(items)
	if from == to || from < 0 || to < 0 || from >= len(out) || to >= len(out) {
		return out
	}

	item := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, item)
}
