package unicorn

import (
	"strconv"
	"strings"
	"testing"
)

func TestIsNoncharacter(t *testing.T) {
	tests := []struct {
		c    rune
		want bool
	}{
		{0xFDD0, true}, {0xFDEF, true}, {0xFFFE, true}, {0xFFFF, true},
		{0x10FFFE, true}, {0x10FFFF, true}, {0x41, false},
	}
	for _, tt := range tests {
		if got := IsNoncharacter(tt.c); got != tt.want {
			t.Errorf("IsNoncharacter(%#x) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestIsSurrogate(t *testing.T) {
	if !IsSurrogate(0xD800) || !IsSurrogate(0xDFFF) {
		t.Error("surrogate bounds should be classified as surrogates")
	}
	if IsSurrogate(0xE000) {
		t.Error("0xE000 should not be a surrogate")
	}
}

func TestIsAssigned(t *testing.T) {
	if !IsAssigned(0x41) {
		t.Error("IsAssigned(0x41) = false, want true")
	}
	if IsAssigned(0x20FF) {
		t.Error("IsAssigned(0x20FF) = true, want false")
	}
	if !IsUnassigned(0x20FF) {
		t.Error("IsUnassigned(0x20FF) = false, want true")
	}
}

func TestCharAsHexRoundTrip(t *testing.T) {
	for _, h := range []rune{0x0, 0x41, 0xFFFF, 0x10FFFF} {
		got := CharAsHex(h)
		if got == "" {
			t.Errorf("CharAsHex(%#x) returned empty", h)
		}
		v, err := strconv.ParseUint(strings.TrimPrefix(got, "U+"), 16, 32)
		if !strings.HasPrefix(got, "U+") || err != nil || rune(v) != h {
			t.Errorf("CharAsHex(%#x) = %q, does not parse back to %#x", h, got, h)
		}
	}
}
