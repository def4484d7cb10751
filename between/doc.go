// Package between constructs order keys: strings over a restricted, sorted
// alphabet that sort strictly between two given boundary strings.
//
// What:
//
//   - Alphabet wraps an immutable, sorted, deduplicated set of runes with
//     positional ranks and low/high sentinel characters.
//   - Between(this, that) builds the shortest string reachable by greedy
//     digit-by-digit construction that sorts strictly between the bounds.
//   - After(s) / Before(s) specialize Between against the high/low sentinel.
//   - First() proposes an initial key for an empty collection.
//   - Spread(this, that, n) bisects a range into n strictly increasing keys.
//
// Why:
//
//   - Ordered lists: insert an item between two neighbors without touching
//     any other item's sort key.
//   - Ranked records: dense, renumbering-free ordering columns.
//   - Collaborative editing: stable positions that merge without conflicts.
//
// Algorithm outline (Between):
//
//  1. Trim trailing low-sentinel runes from both bounds; such suffixes do
//     not affect a string's rank.
//  2. Reject unless trimmed this < that, that is valid, and this is valid
//     or empty (empty this means "no lower bound").
//  3. Walk positions 0..len(this)+len(that); at each, read this's rank
//     (low's rank when exhausted) and that's rank (high's rank when
//     exhausted). When the ranks leave room, or the position has passed
//     both inputs, append the rounded midpoint symbol; otherwise repeat
//     this's own symbol and defer disambiguation.
//  4. Return as soon as the accumulated string sorts after this, before
//     that, and does not end in the low sentinel.
//
// Complexity:
//
//	Between/After/Before: O(n²) time worst case with n = len(this)+len(that)
//	  (n+1 bounded iterations, each with an O(n) comparison), O(n) memory.
//	Spread: n-1 Between calls over progressively longer keys.
//
// Errors:
//
//   - ErrAlphabetSize — New was given fewer than two distinct runes.
//   - Between/After/Before/First/Spread never error: "no such key" is a
//     normal outcome reported through their boolean result.
package between
