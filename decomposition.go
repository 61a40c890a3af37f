package unicorn

import "golang.org/x/exp/slices"

// Decomposition/composition engine (spec.md §4.7, C7). Hangul arithmetic
// is first-class per spec.md; the extended-table lookups fall in behind
// it exactly the way rangeLookup/extLookup back every other engine in
// this package.

const (
	hangulSBase  rune = 0xAC00
	hangulLBase  rune = 0x1100
	hangulVBase  rune = 0x1161
	hangulTBase  rune = 0x11A7
	hangulTCount rune = 28
	hangulNCount rune = 588
	hangulLCount rune = 19
	hangulVCount rune = 21
)

// HangulDecomposition writes c's Hangul jamo decomposition into out and
// returns how many code points were written (0 or 2). LV syllables
// decompose to (L,V); LVT syllables decompose to (LV,T).
func HangulDecomposition(c rune, out []rune) int {
	switch HangulSyllableTypeOf(c) {
	case HSTLV:
		sIndex := c - hangulSBase
		lIndex := sIndex / hangulNCount
		vIndex := (sIndex % hangulNCount) / hangulTCount
		out[0] = hangulLBase + lIndex
		out[1] = hangulVBase + vIndex
		return 2
	case HSTLVT:
		sIndex := c - hangulSBase
		lvSyllable := hangulSBase + (sIndex/hangulTCount)*hangulTCount
		tIndex := sIndex % hangulTCount
		out[0] = lvSyllable
		out[1] = hangulTBase + tIndex
		return 2
	default:
		return 0
	}
}

// HangulComposition composes an (L,V) or (LV,T) jamo pair into its
// syllable, or returns 0 if u1/u2 do not form a valid pair.
func HangulComposition(u1, u2 rune) rune {
	if u1 >= hangulLBase && u1 < hangulLBase+hangulLCount &&
		u2 >= hangulVBase && u2 < hangulVBase+hangulVCount {
		lIndex := u1 - hangulLBase
		vIndex := u2 - hangulVBase
		return hangulSBase + lIndex*hangulNCount + vIndex*hangulTCount
	}
	if HangulSyllableTypeOf(u1) == HSTLV && u2 > hangulTBase && u2 < hangulTBase+hangulTCount {
		return u1 + (u2 - hangulTBase)
	}
	return 0
}

// CanonicalDecomposition writes c's canonical decomposition into out
// (capacity >= MaxCanonicalDecomposition) and returns the count written.
// Hangul syllables are decomposed algorithmically; everything else goes
// through the canonical extended table.
func CanonicalDecomposition(c rune, out []rune) int {
	if n := HangulDecomposition(c, out); n > 0 {
		return n
	}
	vs := extLookup(canonicalDecompositionTable, c, nil)
	copy(out, vs)
	return len(vs)
}

// CompatibilityDecomposition writes c's compatibility decomposition into
// out (capacity >= MaxCompatibilityDecomposition): canonical first, then
// the short compatibility table, then the long one.
func CompatibilityDecomposition(c rune, out []rune) int {
	if n := CanonicalDecomposition(c, out); n > 0 {
		return n
	}
	if vs := extLookup(shortCompatibilityDecompositionTable, c, nil); vs != nil {
		copy(out, vs)
		return len(vs)
	}
	if vs := extLookup(longCompatibilityDecompositionTable, c, nil); vs != nil {
		copy(out, vs)
		return len(vs)
	}
	return 0
}

// CanonicalComposition returns the character formed by composing u1 and
// u2, or 0 if they do not compose. Hangul jamo pairs are checked first,
// then canonicalCompositionTable, which is sorted by u1 (spec.md §3, C1)
// and searched the same way keyLookup searches its own sorted tables.
func CanonicalComposition(u1, u2 rune) rune {
	if s := HangulComposition(u1, u2); s != 0 {
		return s
	}
	i, ok := slices.BinarySearchFunc(canonicalCompositionTable, u1, func(e compositionEntry, target rune) int {
		return int(e.u1 - target)
	})
	if !ok {
		return 0
	}
	// u1 may repeat (multiple u2 combine with the same base); scan the
	// run of matching u1 entries on both sides of the found index.
	for j := i; j >= 0 && canonicalCompositionTable[j].u1 == u1; j-- {
		if canonicalCompositionTable[j].u2 == u2 {
			return canonicalCompositionTable[j].composed
		}
	}
	for j := i + 1; j < len(canonicalCompositionTable) && canonicalCompositionTable[j].u1 == u1; j++ {
		if canonicalCompositionTable[j].u2 == u2 {
			return canonicalCompositionTable[j].composed
		}
	}
	return 0
}

// canonicalOrder applies the Unicode canonical ordering algorithm in
// place: within each maximal run of characters with non-zero combining
// class, characters are stably reordered by ascending combining class.
// This is a plain insertion sort — each element only ever moves left
// past strictly greater combining classes, so it stops at the first
// combining-class-0 boundary (or an equal class) on its own.
func canonicalOrder(rs []rune) {
	for i := 1; i < len(rs); i++ {
		cls := CombiningClassOf(rs[i])
		if cls == 0 {
			continue
		}
		for j := i; j > 0 && CombiningClassOf(rs[j-1]) > cls; j-- {
			rs[j-1], rs[j] = rs[j], rs[j-1]
		}
	}
}

// FullCanonicalDecomposition recursively expands c to a fixed point under
// canonical decomposition and applies canonical ordering by combining
// class, returning the flattened sequence of code points (SPEC_FULL.md's
// C7 supplement over the single-step engine spec.md §4.7 defines; the
// single-step API remains the primitive that normalization clients are
// expected to drive themselves).
func FullCanonicalDecomposition(c rune) []rune {
	var buf [MaxCanonicalDecomposition]rune
	n := CanonicalDecomposition(c, buf[:])
	if n == 0 {
		return []rune{c}
	}
	var out []rune
	for _, u := range buf[:n] {
		out = append(out, FullCanonicalDecomposition(u)...)
	}
	canonicalOrder(out)
	return out
}

// FullCompatibilityDecomposition is FullCanonicalDecomposition's
// compatibility-mapping counterpart.
func FullCompatibilityDecomposition(c rune) []rune {
	var buf [MaxCompatibilityDecomposition]rune
	n := CompatibilityDecomposition(c, buf[:])
	if n == 0 {
		return []rune{c}
	}
	var out []rune
	for _, u := range buf[:n] {
		out = append(out, FullCompatibilityDecomposition(u)...)
	}
	canonicalOrder(out)
	return out
}
