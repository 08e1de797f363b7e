package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based node index to a node ID.
type IDFn func(idx int) string

// DefaultIDFn names nodes like spreadsheet columns: A, B, …, Z, AA, AB, …
var DefaultIDFn IDFn = LetterIDFn

// LetterIDFn returns the spreadsheet column name of idx (0 → "A", 26 → "AA").
// Panics on a negative index.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// DecimalIDFn returns idx in base 10.
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn returns an IDFn producing prefix+idx ("V0", "V1", …).
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
