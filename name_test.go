package unicorn

import "testing"

func TestCharNameUpdateFlag(t *testing.T) {
	if got := CharName(0x1A2, NameUpdate); got != "LATIN CAPITAL LETTER GHA" {
		t.Errorf("CharName(0x1A2, UPDATE) = %q, want LATIN CAPITAL LETTER GHA", got)
	}
	if got := CharName(0x1A2, 0); got != "LATIN CAPITAL LETTER OI" {
		t.Errorf("CharName(0x1A2, 0) = %q, want LATIN CAPITAL LETTER OI", got)
	}
}

func TestCharNameHangulSyllable(t *testing.T) {
	if got := CharName(0xD4DB, 0); got != "HANGUL SYLLABLE PWILH" {
		t.Errorf("CharName(0xD4DB, 0) = %q, want HANGUL SYLLABLE PWILH", got)
	}
}

func TestCharNameControl(t *testing.T) {
	if got := CharName(0x0A, NameControl); got != "LINE FEED" {
		t.Errorf("CharName(0x0A, CONTROL) = %q, want LINE FEED", got)
	}
	if got := CharName(0x07, NameControl); got != "ALERT" {
		t.Errorf("CharName(0x07, CONTROL) = %q, want ALERT", got)
	}
}

func TestCharNameReservedLabel(t *testing.T) {
	if got := CharName(0x20FF, NameLabel); got != "<reserved-20FF>" {
		t.Errorf("CharName(0x20FF, LABEL) = %q, want <reserved-20FF>", got)
	}
}

func TestCharNameCJKUnified(t *testing.T) {
	if got := CharName(0x4E01, 0); got != "CJK UNIFIED IDEOGRAPH-4E01" {
		t.Errorf("CharName(0x4E01, 0) = %q, want CJK UNIFIED IDEOGRAPH-4E01", got)
	}
}

func TestCharNamePrefixAndLower(t *testing.T) {
	got := CharName(0x41, NamePrefix|NameLower)
	want := "U+0041 latin capital letter a"
	if got != want {
		t.Errorf("CharName(0x41, PREFIX|LOWER) = %q, want %q", got, want)
	}
}

func TestControlNameCount(t *testing.T) {
	if len(controlNames) != 65 {
		t.Fatalf("controlNames has %d entries, want 65", len(controlNames))
	}
}
