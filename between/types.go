// Package between defines the Alphabet type and the default symbol set
// for the between subpackage of github.com/lexkey/lexkey.
package between

// DefaultSymbols is the printable-ASCII symbol set used by Default():
// '!' (lowest), digits, uppercase, '_', lowercase, '~' (highest),
// already in ascending code-point order.
const DefaultSymbols = "!0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz~"

// Alphabet is the ordered universe of runes an order key may contain.
// symbols holds the distinct runes ascending by code point; rank maps each
// rune to its zero-based position and doubles as the membership set.
// low and high cache symbols[0] and symbols[len-1], the implicit padding
// sentinels of the Between construction.
//
// An Alphabet is immutable once built and safe for concurrent readers.
type Alphabet struct {
	symbols []rune
	rank    map[rune]int
	low     rune
	high    rune
}
