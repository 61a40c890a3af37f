package unicorn

import "testing"

func TestHangulSyllableTypeOfAlgorithmic(t *testing.T) {
	if got := HangulSyllableTypeOf(0xD4CC); got != HSTLV {
		t.Errorf("HangulSyllableTypeOf(0xD4CC) = %v, want LV", got)
	}
	if got := HangulSyllableTypeOf(0xD4DB); got != HSTLVT {
		t.Errorf("HangulSyllableTypeOf(0xD4DB) = %v, want LVT", got)
	}
	if got := HangulSyllableTypeOf(0x1100); got != HSTL {
		t.Errorf("HangulSyllableTypeOf(0x1100) = %v, want L", got)
	}
}

func TestJoiningTypeFallback(t *testing.T) {
	// U+0300 is Mn (combining grave accent), no table entry -> Transparent.
	if got := JoiningTypeOf(0x0300); got != JoiningTypeT {
		t.Errorf("JoiningTypeOf(0x300) = %v, want Transparent", got)
	}
	// U+0041 is Lu, no table entry -> Non_Joining.
	if got := JoiningTypeOf(0x0041); got != JoiningTypeU {
		t.Errorf("JoiningTypeOf(0x41) = %v, want Non_Joining", got)
	}
	if got := JoiningTypeOf(0x0628); got != JoiningTypeD {
		t.Errorf("JoiningTypeOf(0x628) = %v, want Dual_Joining", got)
	}
}

func TestNumericValue(t *testing.T) {
	num, den := NumericValue(0x00BD)
	if num != 1 || den != 2 {
		t.Errorf("NumericValue(0xBD) = (%d,%d), want (1,2)", num, den)
	}
	if got := NumericValueFloat(0x00BD); got != 0.5 {
		t.Errorf("NumericValueFloat(0xBD) = %v, want 0.5", got)
	}
}

func TestCombiningClass(t *testing.T) {
	if got := CombiningClassOf(0x0300); got != 230 {
		t.Errorf("CombiningClassOf(0x300) = %d, want 230", got)
	}
	if got := CombiningClassOf(0x41); got != 0 {
		t.Errorf("CombiningClassOf(0x41) = %d, want 0", got)
	}
}
