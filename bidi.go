package unicorn

// Bidi & mirroring (spec.md §4.5, C5).

// BidiClassOf returns the bidirectional class of c. If the table has no
// entry (or the entry is the Default sentinel), the range-based fallback
// in spec.md §4.5 applies, in the stated priority order.
func BidiClassOf(c rune) BidiClass {
	bc := rangeLookup(bidiClassTable, c, BidiDefault)
	if bc != BidiDefault {
		return bc
	}
	switch {
	case inAny(c,
		rng{0x0600, 0x07BF}, rng{0x08A0, 0x08FF}, rng{0xFB50, 0xFDCF},
		rng{0xFDF0, 0xFDFF}, rng{0xFE70, 0xFEFF}, rng{0x1EE00, 0x1EEFF}):
		return BidiAL
	case inAny(c,
		rng{0x0590, 0x05FF}, rng{0x07C0, 0x089F}, rng{0xFB1D, 0xFB4F},
		rng{0x10800, 0x10FFF}, rng{0x1E800, 0x1EDFF}, rng{0x1EF00, 0x1EFFF}):
		return BidiR
	case inAny(c, rng{0x20A0, 0x20CF}):
		return BidiET
	case IsDefaultIgnorable(c) || IsNoncharacter(c):
		return BidiBN
	default:
		return BidiL
	}
}

type rng struct{ lo, hi rune }

func inAny(c rune, ranges ...rng) bool {
	for _, r := range ranges {
		if c >= r.lo && c <= r.hi {
			return true
		}
	}
	return false
}

// IsBidiMirrored reports whether c is marked as mirrored under bidi.
func IsBidiMirrored(c rune) bool { return setContains(mirroredSet, c) }

// BidiMirroringGlyph returns c's mirroring glyph, or 0 if none.
func BidiMirroringGlyph(c rune) rune {
	v, _ := keyLookup(bidiMirroringTable, c, 0)
	return v
}

// BidiPairedBracket returns c's paired-bracket partner, or 0 if none.
func BidiPairedBracket(c rune) rune {
	v, _ := keyLookup(bidiPairedBracketTable, c, 0)
	return v
}

// BidiPairedBracketType returns c's paired-bracket type, defaulting to
// BracketNone.
func BidiPairedBracketType(c rune) PairedBracketType {
	v, _ := keyLookup(bidiPairedBracketTypeTable, c, BracketNone)
	return v
}
