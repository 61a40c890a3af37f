package unicorn

// Constants describing notable boundaries in the Unicode code space.
// Grounded on original_source/unicorn/character.hpp's block of
// `constexpr char32_t ...` constants.
const (
	LastASCIIChar        rune = 0x7f
	LastLatin1Char       rune = 0xff
	LineSeparatorChar    rune = 0x2028
	ParagraphSeparator   rune = 0x2029
	FirstSurrogateChar   rune = 0xd800
	FirstHighSurrogate   rune = 0xd800
	LastHighSurrogate    rune = 0xdbff
	FirstLowSurrogate    rune = 0xdc00
	LastLowSurrogate     rune = 0xdfff
	LastSurrogateChar    rune = 0xdfff
	FirstPrivateUseChar  rune = 0xe000
	LastPrivateUseChar   rune = 0xf8ff
	FirstNoncharacter    rune = 0xfdd0
	LastNoncharacter     rune = 0xfdef
	ByteOrderMark        rune = 0xfeff
	ReplacementChar      rune = 0xfffd
	LastBMPChar          rune = 0xffff
	FirstPrivateUseAChar rune = 0xf0000
	LastPrivateUseAChar  rune = 0xffffd
	FirstPrivateUseBChar rune = 0x100000
	LastPrivateUseBChar  rune = 0x10fffd
	LastUnicodeChar      rune = 0x10ffff

	// NotUnicode is the sentinel used by some APIs to mean "beyond Unicode".
	NotUnicode rune = 0x110000

	// MaxCaseDecomposition is the maximum length of a full case mapping.
	MaxCaseDecomposition = 3
	// MaxCanonicalDecomposition is the maximum length of a canonical decomposition.
	MaxCanonicalDecomposition = 2
	// MaxCompatibilityDecomposition is the maximum length of a compatibility decomposition.
	MaxCompatibilityDecomposition = 18
)

// IsASCII reports whether c is in the ASCII range.
func IsASCII(c rune) bool { return c >= 0 && c <= LastASCIIChar }

// IsLatin1 reports whether c is in the Latin-1 range.
func IsLatin1(c rune) bool { return c >= 0 && c <= LastLatin1Char }

// IsSurrogate reports whether c is a UTF-16 surrogate code point.
// Surrogates are valid query inputs (spec.md §1) even though they are
// never assigned characters.
func IsSurrogate(c rune) bool { return c >= FirstSurrogateChar && c <= LastSurrogateChar }

// IsHighSurrogate reports whether c is a UTF-16 high surrogate.
func IsHighSurrogate(c rune) bool { return c >= FirstHighSurrogate && c <= LastHighSurrogate }

// IsLowSurrogate reports whether c is a UTF-16 low surrogate.
func IsLowSurrogate(c rune) bool { return c >= FirstLowSurrogate && c <= LastLowSurrogate }

// IsBMP reports whether c lies in the Basic Multilingual Plane and is not a surrogate.
func IsBMP(c rune) bool { return c >= 0 && c <= LastBMPChar && !IsSurrogate(c) }

// IsAstral reports whether c lies above the BMP, within Unicode's range.
func IsAstral(c rune) bool { return c > LastBMPChar && c <= LastUnicodeChar }

// IsUnicode reports whether c is a valid Unicode scalar value (in range, not a surrogate).
func IsUnicode(c rune) bool { return c >= 0 && c <= LastUnicodeChar && !IsSurrogate(c) }

// IsNoncharacter reports whether c is one of the 66 permanently reserved noncharacters.
func IsNoncharacter(c rune) bool {
	return (c >= FirstNoncharacter && c <= LastNoncharacter) || (c&0xfffe) == 0xfffe
}

// IsPrivateUse reports whether c falls in a private-use area.
func IsPrivateUse(c rune) bool {
	return (c >= FirstPrivateUseChar && c <= LastPrivateUseChar) ||
		(c >= FirstPrivateUseAChar && c <= LastPrivateUseAChar) ||
		(c >= FirstPrivateUseBChar && c <= LastPrivateUseBChar)
}

// IsAssigned reports whether c has an assigned general category (not Cn).
func IsAssigned(c rune) bool { return GeneralCategoryOf(c) != GCCn }

// IsUnassigned is the negation of IsAssigned.
func IsUnassigned(c rune) bool { return !IsAssigned(c) }

// CharAsHex formats c as "U+" followed by uppercase hex, at least 4 digits.
// Grounded on original_source/unicorn/character.hpp: char_as_hex.
func CharAsHex(c rune) string {
	return "U+" + hexPad4(uint32(c))
}

const hexDigits = "0123456789ABCDEF"

// hexPad4 renders v as uppercase hex, zero-padded to at least 4 digits,
// without pulling in fmt on this hot path (mirrors the teacher's habit of
// hand-rolling small formatting helpers next to binary-search primitives).
func hexPad4(v uint32) string {
	var buf [8]byte
	i := len(buf)
	if v == 0 {
		i--
		buf[i] = '0'
	}
	for v > 0 {
		i--
		buf[i] = hexDigits[v&0xf]
		v >>= 4
	}
	for len(buf)-i < 4 {
		i--
		buf[i] = '0'
	}
	return string(buf[i:])
}
