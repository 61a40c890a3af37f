package unicorn

import "testing"

func TestBlockOf(t *testing.T) {
	if got := BlockOf(0x41); got != "Basic Latin" {
		t.Errorf("BlockOf(0x41) = %q, want Basic Latin", got)
	}
	if got := BlockOf(0x4E00); got != "CJK Unified Ideographs" {
		t.Errorf("BlockOf(0x4E00) = %q, want CJK Unified Ideographs", got)
	}
}

func TestUnicodeBlockListFirstBlock(t *testing.T) {
	blocks := UnicodeBlockList()
	if len(blocks) == 0 {
		t.Fatal("UnicodeBlockList() returned no blocks")
	}
	first := blocks[0]
	if first.Name != "Basic Latin" || first.First != 0x0000 || first.Last != 0x007F {
		t.Errorf("first block = %+v, want {Basic Latin 0 0x7F}", first)
	}
}

func TestUnicodeBlockListFinalBlock(t *testing.T) {
	blocks := UnicodeBlockList()
	last := blocks[len(blocks)-1]
	if last.Last != LastUnicodeChar {
		t.Errorf("final block Last = %#x, want %#x", last.Last, LastUnicodeChar)
	}
}

func TestUnicodeBlockListSkipsGaps(t *testing.T) {
	for _, b := range UnicodeBlockList() {
		if b.Name == "" {
			t.Error("UnicodeBlockList() should never include an unnamed gap")
		}
	}
}
