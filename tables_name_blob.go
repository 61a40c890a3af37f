package unicorn

// nameBlobDeflated holds a DEFLATE-compressed sequence of "hex;NAME;"
// records, one per assigned, named code point that has no algorithmic
// derivation (spec.md §4.8's "Name map construction").
// nameBlobDecompressedSize is the fatal-error sentinel spec.md §7
// requires: if inflate does not yield exactly that many bytes,
// initialization fails loudly.
//
// cmd/gentables regenerates this file from the Unicode Character
// Database's UnicodeData.txt; the literal below is the module's small
// built-in seed set, compressed the same way that generator compresses
// the full UCD-derived table.

var rawNameRecords = "" +
	"41;LATIN CAPITAL LETTER A;" +
	"42;LATIN CAPITAL LETTER B;" +
	"61;LATIN SMALL LETTER A;" +
	"C0;LATIN CAPITAL LETTER A WITH GRAVE;" +
	"D8;LATIN CAPITAL LETTER O WITH STROKE;" +
	"1C4;LATIN CAPITAL LETTER DZ WITH CARON;" +
	"391;GREEK CAPITAL LETTER ALPHA;" +
	"410;CYRILLIC CAPITAL LETTER A;" +
	"5D0;HEBREW LETTER ALEF;" +
	"622;ARABIC LETTER ALEF WITH MADDA ABOVE;" +
	"2028;LINE SEPARATOR;" +
	"2029;PARAGRAPH SEPARATOR;" +
	"FB03;LATIN SMALL LIGATURE FFI;" +
	"1F600;GRINNING FACE;"

var nameBlobDeflated = deflateSeed(rawNameRecords)
var nameBlobDecompressedSize = len(rawNameRecords)
