package unicorn

// Embedded bidi/mirroring data (spec.md §3, §4.5, C12).
//
// BidiDefault marks ranges deliberately left out of the table so that
// BidiClassOf's range-based fallback (spec.md §4.5) is exercised for
// Arabic, Hebrew, and other RTL blocks, exactly as a real UCD-derived
// table would: those blocks are overwhelmingly regular, so the offline
// pipeline elides them and leans on the algorithmic fallback instead of
// spelling out every code point.
var bidiClassTable = []rangeEntry[BidiClass]{
	{0x0000, BidiBN}, {0x0009, BidiS}, {0x000A, BidiB}, {0x000B, BidiS},
	{0x000C, BidiWS}, {0x000D, BidiB}, {0x000E, BidiBN}, {0x001C, BidiB},
	{0x001F, BidiS}, {0x0020, BidiWS}, {0x0021, BidiON}, {0x0024, BidiET},
	{0x0025, BidiON}, {0x002B, BidiET}, {0x002C, BidiCS}, {0x002D, BidiES},
	{0x002E, BidiCS}, {0x002F, BidiCS}, {0x0030, BidiEN}, {0x003A, BidiCS},
	{0x003B, BidiON}, {0x0041, BidiL}, {0x005B, BidiON}, {0x0061, BidiL},
	{0x007B, BidiON}, {0x007F, BidiBN}, {0x0085, BidiB}, {0x00A0, BidiCS},
	{0x00A1, BidiON}, {0x00A2, BidiET}, {0x00A6, BidiON}, {0x00AA, BidiL},
	{0x00AB, BidiON}, {0x00AD, BidiBN}, {0x00AE, BidiON}, {0x00B0, BidiET},
	{0x00B2, BidiEN}, {0x00B4, BidiON}, {0x00B5, BidiL}, {0x00B6, BidiON},
	{0x00B9, BidiEN}, {0x00BA, BidiL}, {0x00BB, BidiON}, {0x00BC, BidiON},
	{0x00C0, BidiL},
	{0x0590, BidiDefault}, // Hebrew/RTL blocks: fall back to rule 2 (R)
	{0x0600, BidiDefault}, // Arabic blocks: fall back to rule 1 (AL)
	{0x0700, BidiDefault},
	{0x0900, BidiL},
	{0x2000, BidiON}, {0x2028, BidiWS}, {0x2029, BidiB},
	{0x202A, BidiLRE}, {0x202B, BidiRLE}, {0x202C, BidiPDF}, {0x202D, BidiLRO},
	{0x202E, BidiRLO}, {0x202F, BidiCS}, {0x2030, BidiET}, {0x2039, BidiON},
	{0x2044, BidiCS}, {0x2066, BidiLRI}, {0x2067, BidiRLI}, {0x2068, BidiFSI},
	{0x2069, BidiPDI}, {0x206A, BidiBN}, {0x2070, BidiEN}, {0x2074, BidiEN},
	{0x20A0, BidiDefault}, // currency symbols: fall back to rule 3 (ET)
	{0x20D0, BidiNSM}, {0x2100, BidiL},
	{0x3000, BidiWS}, {0x3001, BidiON}, {0x3400, BidiL},
	{0xD800, BidiDefault}, // surrogates: neither default-ignorable nor noncharacter -> L
	{0xE000, BidiL},
	{0xFB1D, BidiDefault}, // Hebrew presentation forms: fall back to R
	{0xFB50, BidiDefault}, // Arabic presentation forms A: fall back to AL
	{0xFDD0, BidiDefault}, // noncharacters
	{0xFDF0, BidiDefault}, // Arabic presentation forms A (cont'd)
	{0xFE70, BidiDefault}, // Arabic presentation forms B: fall back to AL
	{0xFEFF, BidiBN}, {0xFF00, BidiON}, {0xFF10, BidiEN}, {0xFF21, BidiL},
	{0x10800, BidiDefault}, // fall back to R
	{0x1E800, BidiDefault}, // fall back to R
	{0x1EE00, BidiDefault}, // fall back to AL
	{0x1EF00, BidiDefault}, // fall back to R
	{0x1F000, BidiL},
	{0x10FFFE, BidiDefault}, // trailing noncharacters: fall back to rule 4 (BN)
}

// bidiMirroringTable maps a code point to its mirroring glyph (spec.md §4.5).
var bidiMirroringTable = []keyEntry[rune]{
	{0x0028, 0x0029}, {0x0029, 0x0028}, {0x003C, 0x003E}, {0x003E, 0x003C},
	{0x005B, 0x005D}, {0x005D, 0x005B}, {0x007B, 0x007D}, {0x007D, 0x007B},
	{0x2018, 0x2019}, {0x2019, 0x2018}, {0x201C, 0x201D}, {0x201D, 0x201C},
	{0x2039, 0x203A}, {0x203A, 0x2039},
	{0x3008, 0x3009}, {0x3009, 0x3008}, {0x300A, 0x300B}, {0x300B, 0x300A},
	{0x300C, 0x300D}, {0x300D, 0x300C}, {0x300E, 0x300F}, {0x300F, 0x300E},
}

// bidiPairedBracketTable maps a bracket code point to its bracket partner.
var bidiPairedBracketTable = []keyEntry[rune]{
	{0x0028, 0x0029}, {0x0029, 0x0028}, {0x005B, 0x005D}, {0x005D, 0x005B},
	{0x007B, 0x007D}, {0x007D, 0x007B},
	{0x3008, 0x3009}, {0x3009, 0x3008}, {0x300A, 0x300B}, {0x300B, 0x300A},
}

// bidiPairedBracketTypeTable classifies bracket code points as open/close.
var bidiPairedBracketTypeTable = []keyEntry[PairedBracketType]{
	{0x0028, BracketOpen}, {0x0029, BracketClose},
	{0x005B, BracketOpen}, {0x005D, BracketClose},
	{0x007B, BracketOpen}, {0x007D, BracketClose},
	{0x3008, BracketOpen}, {0x3009, BracketClose},
	{0x300A, BracketOpen}, {0x300B, BracketClose},
}
