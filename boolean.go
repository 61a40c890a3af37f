package unicorn

// Boolean-property engine (spec.md §4.4, C4). Each of these is a
// set-membership query against its own sorted table (tables_boolean.go),
// following the same setContains binary search for every property.

func IsWhiteSpace(c rune) bool         { return setContains(whiteSpaceSet, c) }
func IsIDStart(c rune) bool            { return setContains(idStartSet, c) }
func IsIDNonstart(c rune) bool         { return setContains(idNonstartSet, c) }
func IsXIDStart(c rune) bool           { return setContains(xidStartSet, c) }
func IsXIDNonstart(c rune) bool        { return setContains(xidNonstartSet, c) }
func IsPatternSyntax(c rune) bool      { return setContains(patternSyntaxSet, c) }
func IsPatternWhiteSpace(c rune) bool  { return setContains(patternWhiteSpaceSet, c) }
func IsDefaultIgnorable(c rune) bool   { return setContains(defaultIgnorableSet, c) }
func IsSoftDotted(c rune) bool         { return setContains(softDottedSet, c) }
func IsOtherUppercase(c rune) bool     { return setContains(otherUppercaseSet, c) }
func IsOtherLowercase(c rune) bool     { return setContains(otherLowercaseSet, c) }

// IsLineBreak reports whether c is one of the seven characters that force
// a hard line break (spec.md §4.4).
func IsLineBreak(c rune) bool {
	switch c {
	case '\n', '\v', '\f', '\r', 0x0085, LineSeparatorChar, ParagraphSeparator:
		return true
	}
	return false
}

// IsInlineSpace reports whether c is white space but not a line break.
func IsInlineSpace(c rune) bool { return IsWhiteSpace(c) && !IsLineBreak(c) }

// IsIDContinue reports whether c may continue an identifier.
func IsIDContinue(c rune) bool { return IsIDStart(c) || IsIDNonstart(c) }

// IsXIDContinue is the NFKC-closed analogue of IsIDContinue.
func IsXIDContinue(c rune) bool { return IsXIDStart(c) || IsXIDNonstart(c) }
