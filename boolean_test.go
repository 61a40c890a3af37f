package unicorn

import "testing"

func TestIsLineBreak(t *testing.T) {
	for _, c := range []rune{'\n', '\v', '\f', '\r', 0x0085, LineSeparatorChar, ParagraphSeparator} {
		if !IsLineBreak(c) {
			t.Errorf("IsLineBreak(%#x) = false, want true", c)
		}
	}
	if IsLineBreak('a') {
		t.Error("IsLineBreak('a') = true, want false")
	}
}

func TestIsInlineSpace(t *testing.T) {
	if !IsInlineSpace(' ') {
		t.Error("IsInlineSpace(' ') = false, want true")
	}
	if IsInlineSpace('\n') {
		t.Error("IsInlineSpace('\\n') = true, want false")
	}
}

func TestIsIDStart(t *testing.T) {
	tests := []struct {
		c    rune
		want bool
	}{
		{'A', true}, {'B', true}, {'z', true}, {'0', false}, {' ', false},
	}
	for _, tt := range tests {
		if got := IsIDStart(tt.c); got != tt.want {
			t.Errorf("IsIDStart(%q) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestIsIDContinue(t *testing.T) {
	if !IsIDContinue('0') {
		t.Error("IsIDContinue('0') = false, want true")
	}
	if !IsIDContinue('A') {
		t.Error("IsIDContinue('A') = false, want true")
	}
}
