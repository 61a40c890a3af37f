package unicorn

// Embedded block data (spec.md §3, §4.10, C12). blockTable is a sparse
// range table keyed by each block's first code point; an empty Value
// marks a reserved gap between named blocks (spec.md §4.10's
// "possibly empty for reserved gaps").
var blockTable = []rangeEntry[string]{
	{0x0000, "Basic Latin"},
	{0x0080, "Latin-1 Supplement"},
	{0x0100, "Latin Extended-A"},
	{0x0180, "Latin Extended-B"},
	{0x0250, "IPA Extensions"},
	{0x0300, "Combining Diacritical Marks"},
	{0x0370, "Greek and Coptic"},
	{0x0400, "Cyrillic"},
	{0x0500, "Cyrillic Supplement"},
	{0x0530, "Armenian"},
	{0x0590, "Hebrew"},
	{0x0600, "Arabic"},
	{0x0700, "Syriac"},
	{0x0750, "Arabic Supplement"},
	{0x0780, "Thaana"},
	{0x07C0, "NKo"},
	{0x0800, "Samaritan"},
	{0x0840, "Mandaic"},
	{0x08A0, "Arabic Extended-A"},
	{0x0900, "Devanagari"},
	{0x0980, "Bengali"},
	{0x1100, "Hangul Jamo"},
	{0x1200, ""}, // reserved gap
	{0x1780, "Khmer"},
	{0x2000, "General Punctuation"},
	{0x2100, "Letterlike Symbols"},
	{0x2460, "Enclosed Alphanumerics"},
	{0x2E80, "CJK Radicals Supplement"},
	{0x3000, "CJK Symbols and Punctuation"},
	{0x3040, "Hiragana"},
	{0x30A0, "Katakana"},
	{0x3400, "CJK Unified Ideographs Extension A"},
	{0x4E00, "CJK Unified Ideographs"},
	{0xA960, "Hangul Jamo Extended-A"},
	{0xAC00, "Hangul Syllables"},
	{0xD7B0, "Hangul Jamo Extended-B"},
	{0xD800, "High Surrogates"},
	{0xE000, "Private Use Area"},
	{0xF900, "CJK Compatibility Ideographs"},
	{0xFB00, "Alphabetic Presentation Forms"},
	{0xFB50, "Arabic Presentation Forms-A"},
	{0xFE70, "Arabic Presentation Forms-B"},
	{0xFF00, "Halfwidth and Fullwidth Forms"},
	{0x10000, "Linear B Syllabary"},
	{0x10800, "Cypriot Syllabary"},
	{0x17000, "Tangut"},
	{0x18D00, "Tangut Supplement"},
	{0x1B170, "Nushu"},
	{0x1F1E6, ""}, // reserved gap ahead of Regional Indicator Symbols
	{0x20000, "CJK Unified Ideographs Extension B"},
	{0x2A700, "CJK Unified Ideographs Extension C"},
	{0x2F800, "CJK Compatibility Ideographs Supplement"},
	{0xE0000, "Tags"},
	{0xF0000, "Supplementary Private Use Area-A"},
	{0x100000, "Supplementary Private Use Area-B"},
}
