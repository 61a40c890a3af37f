package unicorn

// Embedded name data (spec.md §3, §4.8, §7, C12). The name blob itself
// (nameBlobDeflated, nameBlobDecompressedSize) lives in
// tables_name_blob.go, the file cmd/gentables regenerates from
// UnicodeData.txt; everything in this file is hand-curated data that the
// generator does not touch.

// correctedNamesTable holds the UPDATE-flag overrides applied over the
// main name map (spec.md §4.8 step 2). U+01A2 is the module's canonical
// example: the 1990s Unicode 1.0 book called it "LATIN CAPITAL LETTER OI"
// before the 5.1 erratum corrected it to "GHA".
var correctedNamesTable = []keyEntry[string]{
	{0x01A2, "LATIN CAPITAL LETTER GHA"},
	{0x01A3, "LATIN SMALL LETTER GHA"},
}

// preUpdateNamesTable is the pre-correction spelling used when UPDATE is
// not set, for the same code points correctedNamesTable overrides. In a
// full UCD build these would come from the main name map directly; here
// they stand in for that fallback path.
var preUpdateNamesTable = []keyEntry[string]{
	{0x01A2, "LATIN CAPITAL LETTER OI"},
	{0x01A3, "LATIN SMALL LETTER OI"},
}

// controlNames is the fixed ISO-6429 table of 65 uppercase control-name
// phrases for C0 (0x00-0x1F, 0x7F) and C1 (0x80-0x9F).
var controlNames = [65]string{
	"NULL", "START OF HEADING", "START OF TEXT", "END OF TEXT",
	"END OF TRANSMISSION", "ENQUIRY", "ACKNOWLEDGE", "ALERT",
	"BACKSPACE", "CHARACTER TABULATION", "LINE FEED",
	"LINE TABULATION", "FORM FEED", "CARRIAGE RETURN",
	"SHIFT OUT", "SHIFT IN", "DATA LINK ESCAPE", "DEVICE CONTROL ONE",
	"DEVICE CONTROL TWO", "DEVICE CONTROL THREE", "DEVICE CONTROL FOUR",
	"NEGATIVE ACKNOWLEDGE", "SYNCHRONOUS IDLE", "END OF TRANSMISSION BLOCK",
	"CANCEL", "END OF MEDIUM", "SUBSTITUTE", "ESCAPE", "FILE SEPARATOR",
	"GROUP SEPARATOR", "RECORD SEPARATOR", "UNIT SEPARATOR",
	"DELETE",
	"PADDING CHARACTER", "HIGH OCTET PRESET", "BREAK PERMITTED HERE",
	"NO BREAK HERE", "INDEX", "NEXT LINE", "START OF SELECTED AREA",
	"END OF SELECTED AREA", "CHARACTER TABULATION SET",
	"CHARACTER TABULATION WITH JUSTIFICATION", "LINE TABULATION SET",
	"PARTIAL LINE FORWARD", "PARTIAL LINE BACKWARD",
	"REVERSE LINE FEED", "SINGLE SHIFT TWO", "SINGLE SHIFT THREE",
	"DEVICE CONTROL STRING", "PRIVATE USE ONE", "PRIVATE USE TWO",
	"SET TRANSMIT STATE", "CANCEL CHARACTER", "MESSAGE WAITING",
	"START OF PROTECTED AREA", "END OF PROTECTED AREA",
	"START OF STRING", "SINGLE GRAPHIC CHARACTER INTRODUCER",
	"SINGLE CHARACTER INTRODUCER", "CONTROL SEQUENCE INTRODUCER",
	"STRING TERMINATOR", "OPERATING SYSTEM COMMAND",
	"PRIVACY MESSAGE", "APPLICATION PROGRAM COMMAND",
}

// hangulJamoL, hangulJamoV, hangulJamoT are the Unicode Standard's
// romanization tables for Hangul syllable name synthesis (spec.md §4.8
// step 4). hangulJamoT[0] is the empty trailing-consonant form.
var hangulJamoL = [19]string{
	"G", "GG", "N", "D", "DD", "R", "M", "B", "BB", "S", "SS",
	"", "J", "JJ", "C", "K", "T", "P", "H",
}

var hangulJamoV = [21]string{
	"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O", "WA", "WAE",
	"OE", "YO", "U", "WEO", "WE", "WI", "YU", "EU", "YI", "I",
}

var hangulJamoT = [28]string{
	"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG", "LM",
	"LB", "LS", "LT", "LP", "LH", "M", "B", "BS", "S", "SS", "NG",
	"J", "C", "K", "T", "P", "H",
}
