package between

import "slices"

// New builds an Alphabet from symbols, deduplicating and sorting them
// ascending by code point. Returns ErrAlphabetSize if fewer than two
// distinct runes remain: a usable alphabet needs at least a low and a
// high sentinel to express strict betweenness.
func New(symbols []rune) (*Alphabet, error) {
	set := slices.Clone(symbols)
	slices.Sort(set)
	set = slices.Compact(set)
	if len(set) < 2 {
		return nil, ErrAlphabetSize
	}

	rank := make(map[rune]int, len(set))
	for i, r := range set {
		rank[r] = i
	}

	return &Alphabet{
		symbols: set,
		rank:    rank,
		low:     set[0],
		high:    set[len(set)-1],
	}, nil
}

// Default builds an Alphabet over DefaultSymbols.
func Default() *Alphabet {
	a, err := New([]rune(DefaultSymbols))
	if err != nil {
		// unreachable: DefaultSymbols holds 65 distinct runes
		panic(err)
	}

	return a
}

// Symbols returns a copy of the alphabet's runes in ascending order.
func (a *Alphabet) Symbols() []rune {
	return slices.Clone(a.symbols)
}

// Low returns the alphabet's minimal rune.
func (a *Alphabet) Low() rune { return a.low }

// High returns the alphabet's maximal rune.
func (a *Alphabet) High() rune { return a.high }

// Valid reports whether s is a well-formed key over this alphabet:
// non-empty, with every rune a member of the alphabet.
func (a *Alphabet) Valid(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if _, ok := a.rank[r]; !ok {
			return false
		}
	}

	return true
}
