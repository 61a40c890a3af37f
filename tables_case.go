package unicorn

// Embedded case-mapping data (spec.md §3, §4.6, C12). Simple maps are
// sorted key tables (exact lookup); full maps are extended tables (up to
// MaxCaseDecomposition code points per entry).

var simpleUppercaseTable = []keyEntry[rune]{
	{0x0061, 0x0041}, {0x0062, 0x0042}, {0x0063, 0x0043}, {0x0064, 0x0044},
	{0x0065, 0x0045}, {0x0066, 0x0046}, {0x0067, 0x0047}, {0x0068, 0x0048},
	{0x0069, 0x0049}, {0x006A, 0x004A}, {0x006B, 0x004B}, {0x006C, 0x004C},
	{0x006D, 0x004D}, {0x006E, 0x004E}, {0x006F, 0x004F}, {0x0070, 0x0050},
	{0x0071, 0x0051}, {0x0072, 0x0052}, {0x0073, 0x0053}, {0x0074, 0x0054},
	{0x0075, 0x0055}, {0x0076, 0x0056}, {0x0077, 0x0057}, {0x0078, 0x0058},
	{0x0079, 0x0059}, {0x007A, 0x005A},
	{0x00E0, 0x00C0}, {0x00E1, 0x00C1}, {0x00E8, 0x00C8}, {0x00E9, 0x00C9},
	{0x00F8, 0x00D8}, {0x00FF, 0x0178},
	{0x01C5, 0x01C4}, // titlecase Dž maps up to all-caps DŽ under simple_uppercase
	{0x03B1, 0x0391}, {0x03B2, 0x0392}, {0x03C2, 0x03A3}, {0x03C3, 0x03A3},
	{0x0430, 0x0410}, {0x0431, 0x0411},
}

var simpleLowercaseTable = []keyEntry[rune]{
	{0x0041, 0x0061}, {0x0042, 0x0062}, {0x0043, 0x0063}, {0x0044, 0x0064},
	{0x0045, 0x0065}, {0x0046, 0x0066}, {0x0047, 0x0067}, {0x0048, 0x0068},
	{0x0049, 0x0069}, {0x004A, 0x006A}, {0x004B, 0x006B}, {0x004C, 0x006C},
	{0x004D, 0x006D}, {0x004E, 0x006E}, {0x004F, 0x006F}, {0x0050, 0x0070},
	{0x0051, 0x0071}, {0x0052, 0x0072}, {0x0053, 0x0073}, {0x0054, 0x0074},
	{0x0055, 0x0075}, {0x0056, 0x0076}, {0x0057, 0x0077}, {0x0058, 0x0078},
	{0x0059, 0x0079}, {0x005A, 0x007A},
	{0x00C0, 0x00E0}, {0x00C1, 0x00E1}, {0x00C8, 0x00E8}, {0x00C9, 0x00E9},
	{0x00D8, 0x00F8}, {0x0178, 0x00FF},
	{0x01C4, 0x01C6}, {0x01C5, 0x01C6}, // Ǆ/ǅ (titlecase) both lowercase to ǆ
	{0x0391, 0x03B1}, {0x0392, 0x03B2}, {0x03A3, 0x03C3},
	{0x0410, 0x0430}, {0x0411, 0x0431},
}

var simpleTitlecaseTable = []keyEntry[rune]{
	{0x01C4, 0x01C5}, // DŽ -> titlecase Dž
	{0x01C6, 0x01C5}, // dž -> titlecase Dž
	{0x01C7, 0x01C8},
	{0x01CA, 0x01CB},
	{0x01F1, 0x01F2},
}

var simpleCasefoldTable = []keyEntry[rune]{
	{0x00DF, 0x00DF}, // ß has no simple casefold distinct from itself
	{0x0130, 0x0069}, // İ folds to plain i (the dot is dropped for simple casefold)
}

var fullUppercaseTable = []extEntry{
	{0x00DF, []rune{0x0053, 0x0053}}, // ß -> "SS"
	{0x0130, []rune{0x0130}},
	{0x0149, []rune{0x02BC, 0x004E}},
	{0x0587, []rune{0x0535, 0x0552}},
	{0xFB00, []rune{0x0046, 0x0046}},         // ﬀ -> "FF"
	{0xFB03, []rune{0x0046, 0x0046, 0x0049}}, // ﬃ -> "FFI"
}

var fullLowercaseTable = []extEntry{
	{0x0130, []rune{0x0069, 0x0307}}, // İ -> "i" + combining dot above
}

var fullCasefoldTable = []extEntry{
	{0x00DF, []rune{0x0073, 0x0073}},         // ß -> "ss"
	{0x0130, []rune{0x0069, 0x0307}},
	{0xFB00, []rune{0x0066, 0x0066}},         // ﬀ -> "ff"
	{0xFB03, []rune{0x0066, 0x0066, 0x0069}}, // ﬃ -> "ffi"
}
