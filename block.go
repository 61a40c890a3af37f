package unicorn

import "sync"

// Block engine (spec.md §4.10, C10).

// BlockOf returns c's block name, or "" for a reserved gap.
func BlockOf(c rune) string { return rangeLookup(blockTable, c, "") }

// UnicodeBlock is one entry of UnicodeBlockList's result.
type UnicodeBlock struct {
	Name       string
	First, Last rune
}

var (
	blockListOnce sync.Once
	blockList     []UnicodeBlock
)

// UnicodeBlockList lazily builds the list of named blocks with their
// [First,Last] extents. Per spec.md §9's Open Question resolution, each
// named entry's Last is the code point just before the next table key,
// computed by walking the table pairwise; the truly final table entry's
// Last is LastUnicodeChar rather than left unpatched.
func UnicodeBlockList() []UnicodeBlock {
	blockListOnce.Do(func() {
		for i, e := range blockTable {
			if e.Value == "" {
				continue
			}
			last := LastUnicodeChar
			if i+1 < len(blockTable) {
				last = blockTable[i+1].Start - 1
			}
			blockList = append(blockList, UnicodeBlock{Name: e.Value, First: e.Start, Last: last})
		}
	})
	return blockList
}
