// Package builder provides internal helper functions and types
// for configuring node label schemes in forest constructors.
package builder

import (
	"fmt"
	"strconv"
)

// LabelFn generates a node label from its zero-based index.
// It must be pure: given the same idx, it always returns the same string.
type LabelFn func(idx int) string

// DefaultLabelFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultLabelFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolLabelFn returns the "Excel-style" column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(k) time where k ≈ log₍₂₆₎(idx).
// Panics if idx < 0.
func SymbolLabelFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("SymbolLabelFn: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixLabelFn returns a LabelFn producing prefix + decimal index,
// e.g. PrefixLabelFn("X")(3) → "X3".
func PrefixLabelFn(prefix string) LabelFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
