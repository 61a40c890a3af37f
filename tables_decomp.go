package unicorn

// Embedded decomposition/composition data (spec.md §3, §4.7, C12).
//
// canonicalDecompositionTable, shortCompatibilityDecompositionTable, and
// longCompatibilityDecompositionTable are disjoint by construction
// (spec.md §8's table-disjointness invariant): no key appears in more
// than one of the three.

var canonicalDecompositionTable = []extEntry{
	{0x00C0, []rune{0x0041, 0x0300}}, // A + combining grave
	{0x00C1, []rune{0x0041, 0x0301}},
	{0x00C8, []rune{0x0045, 0x0300}},
	{0x00C9, []rune{0x0045, 0x0301}},
	{0x00CA, []rune{0x0045, 0x0302}},
	{0x00D1, []rune{0x004E, 0x0303}},
	{0x00D6, []rune{0x004F, 0x0308}},
	{0x00DC, []rune{0x0055, 0x0308}},
	{0x00E0, []rune{0x0061, 0x0300}},
	{0x00E9, []rune{0x0065, 0x0301}},
	{0x0344, []rune{0x0308, 0x0301}}, // combining Greek dialytika tonos
	{0xFB1D, []rune{0x05D9, 0x05B4}}, // Hebrew letter yod with hiriq
	// Hangul syllables (e.g. 0xD4CC, 0xD4DB) are never listed here: their
	// canonical decomposition is entirely algorithmic (HangulDecomposition)
	// and CanonicalDecomposition tries that before consulting this table.
}

// shortCompatibilityDecompositionTable holds compatibility decompositions
// of 1-3 code points, kept apart from the longer table only for grounding
// clarity (spec.md's own layering into short/long compatibility tables).
var shortCompatibilityDecompositionTable = []extEntry{
	{0x00A8, []rune{0x0020, 0x0308}}, // DIAERESIS
	{0x00AA, []rune{0x0061}},         // FEMININE ORDINAL -> a
	{0x00BC, []rune{0x0031, 0x2044, 0x0034}},
	{0x2126, []rune{0x03A9}}, // OHM SIGN -> capital omega
	{0xFB00, []rune{0x0066, 0x0066}},
	{0xFB03, []rune{0x0066, 0x0066, 0x0069}},
}

// longCompatibilityDecompositionTable holds compatibility decompositions
// that run to the full 18-code-point cap.
var longCompatibilityDecompositionTable = []extEntry{
	// ARABIC LIGATURE SALLALLAHOU ALAYHE WASALLAM: the canonical
	// UnicodeData.txt <compat> expansion, 18 code points.
	{0xFDFA, []rune{
		0x0635, 0x0644, 0x0649, 0x0020, 0x0627, 0x0644, 0x0644, 0x0647,
		0x0020, 0x0639, 0x0644, 0x064A, 0x0647, 0x0020, 0x0648, 0x0633,
		0x0644, 0x0645,
	}},
}

// canonicalCompositionTable maps a (u1,u2) pair to its composed
// character, keyed by u1 with the u2/result pair as the payload. Every
// entry's u1 has combining_class 0 (spec.md §8 invariant 7); this table
// is the mechanical inverse of canonicalDecompositionTable's non-Hangul
// entries, except 0x0344, whose decomposition starts with a non-starter
// and so has no composition entry.
type compositionEntry struct {
	u1, u2, composed rune
}

var canonicalCompositionTable = []compositionEntry{
	{0x0041, 0x0300, 0x00C0},
	{0x0041, 0x0301, 0x00C1},
	{0x0045, 0x0300, 0x00C8},
	{0x0045, 0x0301, 0x00C9},
	{0x0045, 0x0302, 0x00CA},
	{0x004E, 0x0303, 0x00D1},
	{0x004F, 0x0308, 0x00D6},
	{0x0055, 0x0308, 0x00DC},
	{0x0061, 0x0300, 0x00E0},
	{0x0065, 0x0301, 0x00E9},
	{0x05D9, 0x05B4, 0xFB1D},
}
