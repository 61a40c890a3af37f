package unicorn

import "testing"

func TestRangeLookup(t *testing.T) {
	table := []rangeEntry[int]{{0, 1}, {10, 2}, {20, 3}}
	tests := []struct {
		c    rune
		want int
	}{
		{0, 1}, {5, 1}, {10, 2}, {15, 2}, {20, 3}, {100, 3},
	}
	for _, tt := range tests {
		if got := rangeLookup(table, tt.c, 0); got != tt.want {
			t.Errorf("rangeLookup(%d) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestRangeLookupBeforeFirstEntry(t *testing.T) {
	table := []rangeEntry[int]{{10, 1}}
	if got := rangeLookup(table, 5, -1); got != -1 {
		t.Errorf("rangeLookup before first entry = %d, want default -1", got)
	}
}

func TestKeyLookup(t *testing.T) {
	table := []keyEntry[string]{{1, "one"}, {5, "five"}, {10, "ten"}}
	if v, ok := keyLookup(table, 5, ""); !ok || v != "five" {
		t.Errorf("keyLookup(5) = (%q,%v), want (five,true)", v, ok)
	}
	if v, ok := keyLookup(table, 6, "default"); ok || v != "default" {
		t.Errorf("keyLookup(6) = (%q,%v), want (default,false)", v, ok)
	}
}

func TestSetContains(t *testing.T) {
	set := []rune{1, 3, 5, 7}
	if !setContains(set, 5) {
		t.Error("setContains(5) = false, want true")
	}
	if setContains(set, 4) {
		t.Error("setContains(4) = true, want false")
	}
}

func TestExtLookup(t *testing.T) {
	table := []extEntry{{5, []rune{10, 11}}}
	if got := extLookup(table, 5, nil); len(got) != 2 {
		t.Errorf("extLookup(5) = %v, want length 2", got)
	}
	if got := extLookup(table, 6, nil); got != nil {
		t.Errorf("extLookup(6) with nil fallback = %v, want nil", got)
	}
	if got := extLookup(table, 6, func(r rune) rune { return r + 1 }); len(got) != 1 || got[0] != 7 {
		t.Errorf("extLookup(6) with fallback = %v, want [7]", got)
	}
	if got := extLookup(table, 6, func(r rune) rune { return r }); got != nil {
		t.Errorf("extLookup(6) with identity fallback = %v, want nil", got)
	}
}
