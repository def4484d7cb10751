package between

import (
	"math"
	"slices"
)

// Between generates a key that sorts strictly between this and that under
// code-point lexicographic order, using only the alphabet's runes. The
// boolean is false when no key was produced: the bounds are not strictly
// increasing once trailing low runes are trimmed, a bound contains runes
// outside the alphabet (an empty this is allowed and means "no lower
// bound"), or the bounded greedy search ran out of positions. A false
// result means this search found nothing, not that no key can exist.
//
// The result is the shortest key reachable by greedy digit-by-digit
// construction and never ends in the low rune, so Between(this, result)
// and Between(result, that) both remain usable.
func (a *Alphabet) Between(this, that string) (string, bool) {
	lo := trimTrailing([]rune(this), a.low)
	hi := trimTrailing([]rune(that), a.low)

	if slices.Compare(lo, hi) >= 0 ||
		(len(lo) > 0 && !a.Valid(string(lo))) ||
		!a.Valid(string(hi)) {
		return "", false
	}

	// invariant: lo < hi, hi valid, lo valid or empty

	guard := len(lo) + len(hi)
	longest := max(len(lo), len(hi))
	key := make([]rune, 0, longest+1)

	for index := 0; index <= guard; index++ {
		// positions past either bound pad with the sentinels
		loRank := 0
		if index < len(lo) {
			loRank = a.rank[lo[index]]
		}
		hiRank := len(a.symbols) - 1
		if index < len(hi) {
			hiRank = a.rank[hi[index]]
		}

		pick := loRank
		if loRank+1 < hiRank || index >= longest {
			pick = int(math.Round(float64(loRank+hiRank) / 2))
		}
		candidate := a.symbols[pick]
		key = append(key, candidate)

		if slices.Compare(lo, key) < 0 && slices.Compare(key, hi) < 0 && candidate != a.low {
			return string(key), true
		}
	}

	return "", false
}

// After generates the smallest key this construction can produce that
// sorts after s. False when s already sorts at or above every possible
// key (for example a run of the alphabet's high rune).
func (a *Alphabet) After(s string) (string, bool) {
	return a.Between(s, string(a.high))
}

// Before generates a key sorting before s. False when s trims to the
// empty lower bound (nothing sorts below it) or already sorts at or
// below every possible key.
func (a *Alphabet) Before(s string) (string, bool) {
	return a.Between(string(a.low), s)
}

// First proposes a key for the first item of an empty collection, leaving
// room on both sides for later Before/After insertions.
func (a *Alphabet) First() (string, bool) {
	return a.After("")
}

// Spread generates n keys sorting strictly between this and that, in
// strictly increasing order, by recursive bisection of the range. The
// bounds follow the Between contract (this may be empty). All-or-nothing:
// if any bisection fails the result is nil, false. n <= 0 yields nil, true.
func (a *Alphabet) Spread(this, that string, n int) ([]string, bool) {
	if n <= 0 {
		return nil, true
	}
	keys := make([]string, n)
	if !a.bisect(this, that, keys) {
		return nil, false
	}

	return keys, true
}

// bisect fills out with keys strictly between lo and hi: the middle slot
// gets Between(lo, hi), then each half recurses against the new pivot.
func (a *Alphabet) bisect(lo, hi string, out []string) bool {
	if len(out) == 0 {
		return true
	}
	mid, ok := a.Between(lo, hi)
	if !ok {
		return false
	}
	m := len(out) / 2
	out[m] = mid

	return a.bisect(lo, mid, out[:m]) && a.bisect(mid, hi, out[m+1:])
}

// trimTrailing drops trailing occurrences of r from s. Trailing low runes
// do not change a key's rank, and trimming them keeps the comparisons in
// Between honest (e.g. "abc" versus "abc"+low).
func trimTrailing(s []rune, r rune) []rune {
	end := len(s)
	for end > 0 && s[end-1] == r {
		end--
	}

	return s[:end]
}
