package unicorn

// Case engine (spec.md §4.6, C6).

// IsUppercase reports whether c is uppercase (Other_Uppercase or gc == Lu).
func IsUppercase(c rune) bool { return IsOtherUppercase(c) || GeneralCategoryOf(c) == GCLu }

// IsLowercase reports whether c is lowercase (Other_Lowercase or gc == Ll).
func IsLowercase(c rune) bool { return IsOtherLowercase(c) || GeneralCategoryOf(c) == GCLl }

// IsTitlecase reports whether c is a titlecase letter.
func IsTitlecase(c rune) bool { return GeneralCategoryOf(c) == GCLt }

// IsCased reports whether c participates in casing at all.
func IsCased(c rune) bool {
	if IsOtherUppercase(c) || IsOtherLowercase(c) {
		return true
	}
	switch GeneralCategoryOf(c) {
	case GCLl, GCLt, GCLu:
		return true
	}
	return false
}

// IsCaseIgnorable reports whether c is transparent to case operations
// (word-break MidLetter/MidNumLet/Single_Quote, or gc in
// {Cf, Lm, Me, Mn, Sk}).
func IsCaseIgnorable(c rune) bool {
	switch WordBreakOf(c) {
	case WBMidLetter, WBMidNumLet, WBSingleQuote:
		return true
	}
	switch GeneralCategoryOf(c) {
	case GCCf, GCLm, GCMe, GCMn, GCSk:
		return true
	}
	return false
}

// SimpleUppercase returns c's simple uppercase mapping, defaulting to c.
func SimpleUppercase(c rune) rune {
	v, _ := keyLookup(simpleUppercaseTable, c, c)
	return v
}

// SimpleLowercase returns c's simple lowercase mapping, defaulting to c.
func SimpleLowercase(c rune) rune {
	v, _ := keyLookup(simpleLowercaseTable, c, c)
	return v
}

// SimpleTitlecase returns c's simple titlecase mapping, falling back to
// SimpleUppercase on miss.
func SimpleTitlecase(c rune) rune {
	if v, ok := keyLookup(simpleTitlecaseTable, c, 0); ok {
		return v
	}
	return SimpleUppercase(c)
}

// SimpleCasefold returns c's simple case-fold mapping, falling back to
// SimpleLowercase on miss.
func SimpleCasefold(c rune) rune {
	if v, ok := keyLookup(simpleCasefoldTable, c, 0); ok {
		return v
	}
	return SimpleLowercase(c)
}

// fullMap looks up c in an extended table; on miss it synthesizes a
// length-1 mapping from simple. If simple itself returns c (no mapping),
// the result is the length-1 identity slice [c], never an empty slice
// (spec.md §9's Open Question decision on identity handling).
func fullMap(table []extEntry, c rune, simple func(rune) rune) []rune {
	if vs := extLookup(table, c, nil); vs != nil {
		return vs
	}
	s := simple(c)
	return []rune{s}
}

// FullUppercase returns c's full uppercase mapping (1..3 code points).
func FullUppercase(c rune) []rune { return fullMap(fullUppercaseTable, c, SimpleUppercase) }

// FullLowercase returns c's full lowercase mapping (1..3 code points).
func FullLowercase(c rune) []rune { return fullMap(fullLowercaseTable, c, SimpleLowercase) }

// FullCasefold returns c's full case-fold mapping (1..3 code points).
func FullCasefold(c rune) []rune { return fullMap(fullCasefoldTable, c, SimpleCasefold) }
