package unicorn

import (
	"reflect"
	"testing"
)

func TestCanonicalDecomposition(t *testing.T) {
	var buf [MaxCanonicalDecomposition]rune
	n := CanonicalDecomposition(0xC0, buf[:])
	if n != 2 || buf[0] != 0x41 || buf[1] != 0x300 {
		t.Errorf("CanonicalDecomposition(0xC0) = %v (n=%d), want [0x41 0x300]", buf[:n], n)
	}
}

func TestCanonicalDecompositionHangul(t *testing.T) {
	var buf [MaxCanonicalDecomposition]rune
	n := CanonicalDecomposition(0xD4DB, buf[:])
	want := []rune{0xD4CC, 0x11B6}
	if n != 2 || !reflect.DeepEqual(buf[:n], want) {
		t.Errorf("CanonicalDecomposition(0xD4DB) = %v, want %v", buf[:n], want)
	}

	n = CanonicalDecomposition(0xD4CC, buf[:])
	want = []rune{0x1111, 0x1171}
	if n != 2 || !reflect.DeepEqual(buf[:n], want) {
		t.Errorf("CanonicalDecomposition(0xD4CC) = %v, want %v", buf[:n], want)
	}
}

func TestCompatibilityDecompositionLong(t *testing.T) {
	var buf [MaxCompatibilityDecomposition]rune
	n := CompatibilityDecomposition(0xFDFA, buf[:])
	if n != 18 {
		t.Fatalf("CompatibilityDecomposition(0xFDFA) length = %d, want 18", n)
	}
	wantPrefix := []rune{0x635, 0x644, 0x649, 0x20}
	if !reflect.DeepEqual(buf[:4], wantPrefix) {
		t.Errorf("CompatibilityDecomposition(0xFDFA) prefix = %v, want %v", buf[:4], wantPrefix)
	}
}

func TestHangulRoundTrip(t *testing.T) {
	var buf [2]rune
	n := HangulDecomposition(0xD4CC, buf[:])
	if n != 2 {
		t.Fatalf("HangulDecomposition(0xD4CC) returned %d, want 2", n)
	}
	if got := HangulComposition(buf[0], buf[1]); got != 0xD4CC {
		t.Errorf("HangulComposition(%#x, %#x) = %#x, want 0xD4CC", buf[0], buf[1], got)
	}
}

func TestCanonicalComposition(t *testing.T) {
	if got := CanonicalComposition(0x41, 0x300); got != 0xC0 {
		t.Errorf("CanonicalComposition(0x41, 0x300) = %#x, want 0xC0", got)
	}
	if got := CanonicalComposition(0x41, 0x41); got != 0 {
		t.Errorf("CanonicalComposition(0x41, 0x41) = %#x, want 0", got)
	}
}

func TestFullCanonicalDecomposition(t *testing.T) {
	got := FullCanonicalDecomposition(0xD4DB)
	want := []rune{0x1111, 0x1171, 0x11B6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FullCanonicalDecomposition(0xD4DB) = %v, want %v", got, want)
	}
}

func TestCanonicalOrderSortsByCombiningClass(t *testing.T) {
	// 0x0316 has combining class 220, 0x0300 has combining class 230;
	// out of canonical order should be swapped into ascending ccc.
	rs := []rune{0x0041, 0x0300, 0x0316}
	canonicalOrder(rs)
	want := []rune{0x0041, 0x0316, 0x0300}
	if !reflect.DeepEqual(rs, want) {
		t.Errorf("canonicalOrder(%v) = %v, want %v", []rune{0x0041, 0x0300, 0x0316}, rs, want)
	}
}

func TestCanonicalOrderStableOnEqualClass(t *testing.T) {
	// Both 0x0300 and 0x0301 have combining class 230: relative order
	// must be preserved.
	rs := []rune{0x0041, 0x0300, 0x0301}
	canonicalOrder(rs)
	want := []rune{0x0041, 0x0300, 0x0301}
	if !reflect.DeepEqual(rs, want) {
		t.Errorf("canonicalOrder(%v) = %v, want %v (stable)", []rune{0x0041, 0x0300, 0x0301}, rs, want)
	}
}

func TestCanonicalOrderStopsAtFixedPoint(t *testing.T) {
	// A combining-class-0 base character never moves and blocks marks
	// from crossing over an earlier base.
	rs := []rune{0x0300, 0x0041, 0x0300}
	canonicalOrder(rs)
	if rs[1] != 0x0041 {
		t.Errorf("canonicalOrder moved base character: %v", rs)
	}
}
