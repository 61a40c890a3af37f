package unicorn

// Enumerated-property engine (spec.md §4.9, C9). Ten of these are
// direct sparse-range lookups; hangul_syllable_type and joining_type carry
// an extra algorithmic layer on top, and numeric_value is a direct lookup
// that returns a rational pair.

func CombiningClassOf(c rune) byte                  { return rangeLookup(combiningClassTable, c, 0) }
func EastAsianWidthOf(c rune) EastAsianWidth        { return rangeLookup(eastAsianWidthTable, c, EAWN) }
func LineBreakOf(c rune) LineBreak                  { return rangeLookup(lineBreakTable, c, LBAL) }
func WordBreakOf(c rune) WordBreak                  { return rangeLookup(wordBreakTable, c, WBOther) }
func SentenceBreakOf(c rune) SentenceBreak          { return rangeLookup(sentenceBreakTable, c, SBOther) }
func GraphemeClusterBreakOf(c rune) GraphemeClusterBreak {
	return rangeLookup(graphemeClusterBreakTable, c, GCBOther)
}
func IndicPositionalCategoryOf(c rune) IndicPositionalCategory {
	return rangeLookup(indicPositionalCategoryTable, c, InPCNA)
}
func IndicSyllabicCategoryOf(c rune) IndicSyllabicCategory {
	return rangeLookup(indicSyllabicCategoryTable, c, InSCOther)
}
func JoiningGroupOf(c rune) JoiningGroup { return rangeLookup(joiningGroupTable, c, JoiningGroupNone) }
func NumericTypeOf(c rune) NumericType   { return rangeLookup(numericTypeTable, c, NumericTypeNone) }

// HangulSyllableTypeOf classifies c's role in Hangul syllable composition.
// The AC00..D7A3 precomposed-syllable block is algorithmic (spec.md
// §4.7's Hangul arithmetic): whether a syllable is LV or LVT depends on
// c's offset from S_BASE modulo T_COUNT, which a plain sparse-range row
// cannot express, so it is handled here rather than in the table.
func HangulSyllableTypeOf(c rune) HangulSyllableType {
	if c >= hangulSBase && c < hangulSBase+hangulNCount*hangulLCount {
		if (c-hangulSBase)%hangulTCount == 0 {
			return HSTLV
		}
		return HSTLVT
	}
	return rangeLookup(hangulSyllableTypeTable, c, HSTNotApplicable)
}

// JoiningTypeOf returns c's Arabic joining type, falling back per
// spec.md §4.9 when the table has no entry: Cf/Me/Mn code points are
// Transparent, everything else is Non_Joining.
func JoiningTypeOf(c rune) JoiningType {
	jt := rangeLookup(joiningTypeTable, c, JoiningTypeDefault)
	if jt != JoiningTypeDefault {
		return jt
	}
	switch GeneralCategoryOf(c) {
	case GCCf, GCMe, GCMn:
		return JoiningTypeT
	default:
		return JoiningTypeU
	}
}

// NumericValue returns c's numeric value as a (numerator, denominator)
// pair, defaulting to (0, 1).
func NumericValue(c rune) (numerator, denominator int32) {
	r := rangeLookup(numericValueTable, c, numericRatio{0, 1})
	return r.num, r.den
}

// NumericValueFloat is a convenience wrapper over NumericValue for callers
// that want a plain float64 rather than a rational pair (SPEC_FULL.md's
// C9 supplement).
func NumericValueFloat(c rune) float64 {
	num, den := NumericValue(c)
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
