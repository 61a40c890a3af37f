package unicorn

import "testing"

func TestGeneralCategoryOf(t *testing.T) {
	tests := []struct {
		name string
		c    rune
		want GeneralCategory
	}{
		{"capital A", 0x41, GCLu},
		{"digit zero", 0x30, GCNd},
		{"surrogate", 0xD800, GCCs},
		{"reserved gap", 0x20FF, GCCn},
		{"trailing noncharacter", 0x10FFFF, GCCn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GeneralCategoryOf(tt.c); got != tt.want {
				t.Errorf("GeneralCategoryOf(%#x) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestCharPrimaryCategory(t *testing.T) {
	if got := CharPrimaryCategory(0x41); got != 'L' {
		t.Errorf("CharPrimaryCategory(0x41) = %c, want L", got)
	}
}

func TestGCPredicateCasedLetter(t *testing.T) {
	p := GCPredicate("L&")
	if !p.Match(0x1C5) {
		t.Error(`GCPredicate("L&").Match(0x1C5) = false, want true`)
	}
	if p.Match(0x30) {
		t.Error(`GCPredicate("L&").Match(0x30) = true, want false`)
	}
}

func TestGCPredicateUnion(t *testing.T) {
	p := GCPredicate("Zs,L&")
	if !p.Match(0x20) {
		t.Error(`GCPredicate("Zs,L&").Match(0x20) = false, want true`)
	}
}

func TestGCPredicateWholeCategory(t *testing.T) {
	p := GCPredicate("L")
	if !p.Match(0x41) || !p.Match(0x61) {
		t.Error("GCPredicate(\"L\") should match both Lu and Ll")
	}
	if p.Match(0x30) {
		t.Error("GCPredicate(\"L\") should not match Nd")
	}
}

func TestGCPredicateExact(t *testing.T) {
	p := GCPredicateExact(GCLu)
	if !p.Match(0x41) {
		t.Error("GCPredicateExact(GCLu) should match 0x41")
	}
	if p.Match(0x61) {
		t.Error("GCPredicateExact(GCLu) should not match 0x61")
	}
}
