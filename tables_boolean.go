package unicorn

import "sort"

// Embedded boolean-property data (spec.md §3, §4.4, C12). Each set is a
// strictly increasing list of individual code points, as spec.md §6
// mandates for the sorted-set shape. Building the flat lists from a
// handful of (lo,hi) range descriptors at init time keeps this file
// readable without changing the shape consumed by setContains: the
// published slices are exactly the flat, binary-searchable arrays the
// offline pipeline (spec.md §1, out of scope) would otherwise emit
// directly. Representative coverage: full ASCII plus a sampling of the
// other blocks each property actually spans.

// boolRange is a closed [lo,hi] range of code points sharing a property.
type boolRange struct{ lo, hi rune }

func expandRanges(ranges []boolRange, extra ...rune) []rune {
	var out []rune
	for _, r := range ranges {
		for c := r.lo; c <= r.hi; c++ {
			out = append(out, c)
		}
	}
	out = append(out, extra...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var whiteSpaceSet = expandRanges([]boolRange{
	{0x0009, 0x000D}, {0x0020, 0x0020}, {0x0085, 0x0085}, {0x00A0, 0x00A0},
	{0x1680, 0x1680}, {0x2000, 0x200A}, {0x2028, 0x2029}, {0x202F, 0x202F},
	{0x205F, 0x205F}, {0x3000, 0x3000},
})

var idStartSet = expandRanges([]boolRange{
	{0x0041, 0x005A}, {0x0061, 0x007A}, {0x00C0, 0x00D6}, {0x00D8, 0x00F6},
	{0x00F8, 0x01BA}, {0x0370, 0x03FF}, {0x0400, 0x04FF}, {0x0531, 0x0556},
	{0x0561, 0x0586}, {0x0621, 0x064A}, {0x1100, 0x11FF}, {0x3400, 0x4DBF},
	{0x4E00, 0x9FFF}, {0xAC00, 0xD7A3},
}, 0x00AA, 0x00B5, 0x00BA)

var idNonstartSet = expandRanges([]boolRange{
	{0x0030, 0x0039}, {0x0300, 0x036F}, {0x0660, 0x0669},
}, 0x203F, 0x2040)

var xidStartSet = idStartSet
var xidNonstartSet = idNonstartSet

var patternSyntaxSet = expandRanges(nil,
	0x0021, 0x0023, 0x0024, 0x0025, 0x0026, 0x002A, 0x002B, 0x002C,
	0x002D, 0x002E, 0x002F, 0x003A, 0x003B, 0x003C, 0x003D, 0x003E,
	0x003F, 0x0040, 0x005B, 0x005C, 0x005D, 0x005E, 0x0060, 0x007B,
	0x007C, 0x007D, 0x007E,
)

var patternWhiteSpaceSet = expandRanges([]boolRange{
	{0x0009, 0x000D}, {0x0020, 0x0020}, {0x0085, 0x0085}, {0x200E, 0x200F},
	{0x2028, 0x2029},
})

var defaultIgnorableSet = expandRanges([]boolRange{
	{0x180B, 0x180E}, {0x200B, 0x200F}, {0x202A, 0x202E},
	{0x2060, 0x2064}, {0xFE00, 0xFE0F}, {0xE0000, 0xE0FFF},
}, 0x00AD, 0x034F, 0x061C, 0x115F, 0x1160, 0xFEFF)

var softDottedSet = expandRanges(nil,
	0x0069, 0x006A, 0x012F, 0x0249, 0x0268, 0x029D, 0x02B2,
	0x03F3, 0x0456, 0x0458, 0x1D62, 0x1D96, 0x1DA4, 0x1DA8,
	0x1E2D, 0x1ECB, 0x2071, 0x2148, 0x2149,
)

var otherUppercaseSet = expandRanges([]boolRange{
	{0x2160, 0x216F}, {0x24B6, 0x24CF},
})

var otherLowercaseSet = expandRanges([]boolRange{
	{0x2170, 0x217F}, {0x24D0, 0x24E9},
}, 0x00AA, 0x00BA, 0x02B0, 0x02B1)

var mirroredSet = expandRanges([]boolRange{
	{0x0028, 0x0029}, {0x005B, 0x005D}, {0x007B, 0x007D}, {0x2018, 0x2019},
	{0x201C, 0x201D}, {0x2039, 0x203A}, {0x3008, 0x300F},
})
