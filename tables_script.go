package unicorn

// Embedded script data (spec.md §3, §4.10, C12).

// scriptCode packs a 4-letter ISO-15924 abbreviation as four lowercased
// bytes into a uint32, for fast exact comparison (spec.md §3's Script
// abbreviation encoding).
type scriptCode uint32

func encodeScript(abbr string) scriptCode {
	var b [4]byte
	for i := 0; i < 4 && i < len(abbr); i++ {
		c := abbr[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return scriptCode(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// decodeScript renders a scriptCode back to its canonical 4-letter
// spelling with the first letter upper-cased.
func decodeScript(sc scriptCode) string {
	b := [4]byte{byte(sc >> 24), byte(sc >> 16), byte(sc >> 8), byte(sc)}
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b[:])
}

var scriptTable = []rangeEntry[scriptCode]{
	{0x0000, encodeScript("Zyyy")}, // Common
	{0x0041, encodeScript("Latn")},
	{0x005B, encodeScript("Zyyy")},
	{0x0061, encodeScript("Latn")},
	{0x007B, encodeScript("Zyyy")},
	{0x00C0, encodeScript("Latn")},
	{0x0370, encodeScript("Grek")},
	{0x0400, encodeScript("Cyrl")},
	{0x0530, encodeScript("Armn")},
	{0x0590, encodeScript("Hebr")},
	{0x0600, encodeScript("Arab")},
	{0x0700, encodeScript("Syrc")},
	{0x0750, encodeScript("Arab")},
	{0x0900, encodeScript("Deva")},
	{0x0980, encodeScript("Beng")},
	{0x1100, encodeScript("Hang")},
	{0x1200, encodeScript("Ethi")},
	{0x1780, encodeScript("Khmr")},
	{0x2000, encodeScript("Zyyy")},
	{0x3040, encodeScript("Hira")},
	{0x30A0, encodeScript("Kana")},
	{0x3400, encodeScript("Hani")},
	{0x4E00, encodeScript("Hani")},
	{0xAC00, encodeScript("Hang")},
	{0x10800, encodeScript("Cprt")},
	{0x17000, encodeScript("Tang")},
	{0x1B170, encodeScript("Nshu")},
	{0x20000, encodeScript("Hani")},
}

// scriptExtensionTable holds explicit Script_Extensions strings (space
// separated ISO-15924 abbreviations) for code points that belong to more
// than one script. Absent here means "just the primary script" (spec.md
// §4.10's char_script_list fallback).
var scriptExtensionTable = []keyEntry[string]{
	{0x0640, "Arab Mand Mani Phlp Syrc"}, // ARABIC TATWEEL
	{0x064B, "Arab Syrc"},
}

var scriptNameTable = []keyEntry[string]{
	{uint32ToRune(encodeScript("Arab")), "Arabic"},
	{uint32ToRune(encodeScript("Armn")), "Armenian"},
	{uint32ToRune(encodeScript("Beng")), "Bengali"},
	{uint32ToRune(encodeScript("Cprt")), "Cypriot"},
	{uint32ToRune(encodeScript("Cyrl")), "Cyrillic"},
	{uint32ToRune(encodeScript("Deva")), "Devanagari"},
	{uint32ToRune(encodeScript("Ethi")), "Ethiopic"},
	{uint32ToRune(encodeScript("Grek")), "Greek"},
	{uint32ToRune(encodeScript("Hang")), "Hangul"},
	{uint32ToRune(encodeScript("Hani")), "Han"},
	{uint32ToRune(encodeScript("Hebr")), "Hebrew"},
	{uint32ToRune(encodeScript("Hira")), "Hiragana"},
	{uint32ToRune(encodeScript("Kana")), "Katakana"},
	{uint32ToRune(encodeScript("Khmr")), "Khmer"},
	{uint32ToRune(encodeScript("Latn")), "Latin"},
	{uint32ToRune(encodeScript("Mand")), "Mandaic"},
	{uint32ToRune(encodeScript("Mani")), "Manichaean"},
	{uint32ToRune(encodeScript("Nshu")), "Nushu"},
	{uint32ToRune(encodeScript("Phlp")), "Psalter Pahlavi"},
	{uint32ToRune(encodeScript("Syrc")), "Syriac"},
	{uint32ToRune(encodeScript("Tang")), "Tangut"},
	{uint32ToRune(encodeScript("Zyyy")), "Common"},
}

// uint32ToRune reinterprets a scriptCode as a rune so it can share
// keyLookup's rune-keyed shape without a second generic table type.
func uint32ToRune(sc scriptCode) rune { return rune(sc) }
