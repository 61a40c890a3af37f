package unicorn

import "golang.org/x/exp/slices"

// Table primitives (spec.md §4.1, C1).
//
// Three lookup shapes back nearly every property query in this package:
// sparse-range lookup, exact-key lookup, and the variable-length
// "extended" lookup used for multi-output mappings. Membership on a
// sorted code-point set is a plain binary search.
//
// The sparse-range scan is grounded on the teacher's propertySearch
// generic (github.com/scalecode-solutions/runeseg's properties.go),
// which does the same "greatest start <= target" binary search over a
// [3]int/[4]int row shape. The exact-key and set-membership shapes are
// ordinary binary search and are expressed with
// golang.org/x/exp/slices.BinarySearchFunc rather than hand-rolled, since
// no per-row scan logic is needed there.

// rangeEntry is one row of a sparse-range table: (start, value).
type rangeEntry[T any] struct {
	Start rune
	Value T
}

// rangeLookup returns the value of the last entry whose Start <= c, or def
// if c precedes the first entry's Start. Table must be sorted ascending
// by Start with Start[0] == 0, per spec.md §6.
func rangeLookup[T any](table []rangeEntry[T], c rune, def T) T {
	if len(table) == 0 || c < table[0].Start {
		return def
	}
	lo, hi := 0, len(table)
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if table[mid].Start <= c {
			lo = mid
		} else {
			hi = mid
		}
	}
	return table[lo].Value
}

// keyEntry is one row of an exact-key table: (key, value).
type keyEntry[T any] struct {
	Key   rune
	Value T
}

// keyLookup performs an exact binary search and returns (value, true) on a
// hit, or (def, false) on a miss. Table must be sorted ascending by Key.
func keyLookup[T any](table []keyEntry[T], key rune, def T) (T, bool) {
	i, found := slices.BinarySearchFunc(table, key, func(e keyEntry[T], k rune) int {
		return int(e.Key) - int(k)
	})
	if !found {
		return def, false
	}
	return table[i].Value, true
}

// setContains reports whether c is a member of a strictly increasing
// sorted set of code points.
func setContains(set []rune, c rune) bool {
	_, found := slices.BinarySearchFunc(set, c, func(a, b rune) int { return int(a) - int(b) })
	return found
}

// extEntry is one row of an "extended" table: a key mapping to 1..N
// output code points (full case maps, decompositions).
type extEntry struct {
	Key    rune
	Values []rune
}

// extLookup performs an exact binary search on an extended table. On a
// hit it returns the stored values and their count. On a miss, if
// fallback is non-nil, it invokes fallback(c); if the result differs from
// c, that becomes a length-1 mapping, otherwise the lookup reports no
// mapping at all (count 0). This mirrors spec.md §4.1's rule that "a
// simple mapping is equivalent to a full mapping of length 1 when no
// explicit full mapping exists."
func extLookup(table []extEntry, c rune, fallback func(rune) rune) []rune {
	i, found := slices.BinarySearchFunc(table, c, func(e extEntry, k rune) int {
		return int(e.Key) - int(k)
	})
	if found {
		return table[i].Values
	}
	if fallback == nil {
		return nil
	}
	if v := fallback(c); v != c {
		return []rune{v}
	}
	return nil
}
