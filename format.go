package unicorn

import "strconv"

// Formatting (spec.md §4.11, C11).
//
// Every enumeration's canonical short name is printable via fmt.Stringer.
// Unknown/default values never panic (the teacher's habit in
// properties.go): most types print a fixed fallback name ("Other", "NA",
// "None", "XX", "U", "Default", "No_Joining_Group"); only BidiClass prints
// the underlying integer, as "Default(n)". GeneralCategory prints "??" for
// zero and its two raw bytes for any other value.

// String implements fmt.Stringer for GeneralCategory, e.g. GCLu -> "Lu".
func (gc GeneralCategory) String() string {
	if gc == 0 {
		return "??"
	}
	return decodeGC(gc)
}

// LongName returns the human-readable long name of a general category,
// e.g. GCLu -> "uppercase letter". Returns "" for unknown values.
func (gc GeneralCategory) LongName() string { return gcLongNames[gc] }

func (b BidiClass) String() string {
	if s, ok := bidiNames[b]; ok {
		return s
	}
	return "Default(" + strconv.Itoa(int(b)) + ")"
}

func (p PairedBracketType) String() string { return string(rune(p)) }

func (w EastAsianWidth) String() string {
	if s, ok := eawNames[w]; ok {
		return s
	}
	return "Default"
}

func (h HangulSyllableType) String() string {
	if s, ok := hstNames[h]; ok {
		return s
	}
	return "NA"
}

func (l LineBreak) String() string {
	if s, ok := lbNames[l]; ok {
		return s
	}
	return "XX"
}

func (w WordBreak) String() string {
	if s, ok := wbNames[w]; ok {
		return s
	}
	return "Other"
}

func (s SentenceBreak) String() string {
	if v, ok := sbNames[s]; ok {
		return v
	}
	return "Other"
}

func (g GraphemeClusterBreak) String() string {
	if s, ok := gcbNames[g]; ok {
		return s
	}
	return "Other"
}

func (p IndicPositionalCategory) String() string {
	if s, ok := inPCNames[p]; ok {
		return s
	}
	return "NA"
}

func (s IndicSyllabicCategory) String() string {
	if v, ok := inSCNames[s]; ok {
		return v
	}
	return "Other"
}

func (j JoiningType) String() string {
	if s, ok := joiningTypeNames[j]; ok {
		return s
	}
	return "U"
}

func (g JoiningGroup) String() string {
	if s, ok := joiningGroupNames[g]; ok {
		return s
	}
	return "No_Joining_Group"
}

func (n NumericType) String() string {
	if s, ok := numericTypeNames[n]; ok {
		return s
	}
	return "None"
}
