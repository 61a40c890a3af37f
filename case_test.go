package unicorn

import (
	"reflect"
	"testing"
)

func TestSimpleCaseMaps(t *testing.T) {
	if got := SimpleUppercase('a'); got != 'A' {
		t.Errorf("SimpleUppercase('a') = %q, want 'A'", got)
	}
	if got := SimpleLowercase('A'); got != 'a' {
		t.Errorf("SimpleLowercase('A') = %q, want 'a'", got)
	}
	if got := SimpleUppercase('!'); got != '!' {
		t.Errorf("SimpleUppercase('!') = %q, want identity", got)
	}
}

func TestSimpleTitlecaseFallback(t *testing.T) {
	if got := SimpleTitlecase(0x01C4); got != 0x01C5 {
		t.Errorf("SimpleTitlecase(0x1C4) = %#x, want 0x1C5", got)
	}
	if got := SimpleTitlecase('a'); got != 'A' {
		t.Errorf("SimpleTitlecase('a') = %q, want 'A' (uppercase fallback)", got)
	}
}

func TestFullCaseMaps(t *testing.T) {
	tests := []struct {
		name string
		got  []rune
		want []rune
	}{
		{"full uppercase of sharp s", FullUppercase(0xDF), []rune{0x53, 0x53}},
		{"full lowercase of dotted I", FullLowercase(0x130), []rune{0x69, 0x307}},
		{"full casefold of ffi ligature", FullCasefold(0xFB03), []rune{0x66, 0x66, 0x69}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestFullCaseIdentityFallback(t *testing.T) {
	got := FullUppercase('!')
	if !reflect.DeepEqual(got, []rune{'!'}) {
		t.Errorf("FullUppercase('!') = %v, want [!] (length-1 identity)", got)
	}
}

func TestIsCasedPredicates(t *testing.T) {
	if !IsUppercase('A') {
		t.Error("IsUppercase('A') = false, want true")
	}
	if !IsLowercase('a') {
		t.Error("IsLowercase('a') = false, want true")
	}
	if !IsCased('A') || !IsCased('a') {
		t.Error("IsCased should be true for both cases of a letter")
	}
	if IsCased('0') {
		t.Error("IsCased('0') = true, want false")
	}
}
