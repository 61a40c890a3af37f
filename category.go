package unicorn

import "strings"

// General-category engine (spec.md §4.3, C3).

// GeneralCategoryOf returns the two-letter general category of c, defaulting
// to Cn (unassigned) when c has no table entry.
func GeneralCategoryOf(c rune) GeneralCategory {
	return rangeLookup(generalCategoryTable, c, GCCn)
}

// CharPrimaryCategory returns the single primary-category letter
// ({C,L,M,N,P,S,Z}) of c: the upper byte of its general category.
func CharPrimaryCategory(c rune) byte {
	return byte(GeneralCategoryOf(c) >> 8)
}

// IsAlphanumeric reports whether c's primary category is L or N.
func IsAlphanumeric(c rune) bool {
	p := CharPrimaryCategory(c)
	return p == 'L' || p == 'N'
}

func IsControl(c rune) bool     { return GeneralCategoryOf(c) == GCCc }
func IsFormat(c rune) bool      { return GeneralCategoryOf(c) == GCCf }
func IsLetter(c rune) bool      { return CharPrimaryCategory(c) == 'L' }
func IsMark(c rune) bool        { return CharPrimaryCategory(c) == 'M' }
func IsNumber(c rune) bool      { return CharPrimaryCategory(c) == 'N' }
func IsPunctuation(c rune) bool { return CharPrimaryCategory(c) == 'P' }
func IsSymbol(c rune) bool      { return CharPrimaryCategory(c) == 'S' }
func IsSeparator(c rune) bool   { return CharPrimaryCategory(c) == 'Z' }

// CategoryPredicate is a compiled, cheap-to-copy category-expression
// predicate: an owned list of closed [lo,hi] intervals of 16-bit general
// category codes (spec.md §9's Design Note on gc_predicate). Sharing this
// as a value type rather than a func avoids hiding a closure over
// unexported state, while still evaluating in a short linear scan.
type CategoryPredicate struct {
	intervals []categoryInterval
}

type categoryInterval struct {
	lo, hi GeneralCategory
}

// Match reports whether c's general category falls within any accumulated
// interval.
func (p CategoryPredicate) Match(c rune) bool {
	gc := GeneralCategoryOf(c)
	for _, iv := range p.intervals {
		if gc >= iv.lo && gc <= iv.hi {
			return true
		}
	}
	return false
}

// GCPredicateExact compiles a predicate that matches only the given exact
// general category, mirroring original_source/unicorn's
// gc_predicate(uint16_t) overload alongside the string forms (spec.md
// §4.3 supplement, SPEC_FULL.md C3).
func GCPredicateExact(gc GeneralCategory) CategoryPredicate {
	return CategoryPredicate{intervals: []categoryInterval{{gc, gc}}}
}

// casedLetterSet is the "L&"/"LC" special token: {Ll, Lt, Lu}.
var casedLetterSet = []categoryInterval{{GCLl, GCLl}, {GCLt, GCLt}, {GCLu, GCLu}}

// GCPredicate compiles a textual general-category specification into a
// CategoryPredicate (spec.md §4.3). Accepted forms:
//
//  1. A 2-letter subcategory ("Lu"), exact match.
//  2. A 1-letter primary category ("L"), matches any subcategory under it.
//  3. Clusters: "Llotu" means primary L followed by a run of subcategory
//     letters {l,o,t,u}, matching Ll, Lo, Lt, Lu.
//  4. Comma-separated unions of the above, e.g. "Zs,L&".
//  5. The special tokens "LC" and "L&" denote the cased-letter set.
//
// An unparseable specification yields an always-false predicate rather
// than an error (spec.md §7's Builder failure policy), keeping every
// query total.
func GCPredicate(spec string) CategoryPredicate {
	var out CategoryPredicate

	var prefix byte
	entriesUnderPrefix := 0

	flush := func() {
		if prefix != 0 && entriesUnderPrefix == 0 {
			lo := encodeGC(prefix, 0x00)
			hi := encodeGC(prefix, 0xFF)
			out.intervals = append(out.intervals, categoryInterval{lo, hi})
		}
		prefix = 0
		entriesUnderPrefix = 0
	}

	for i := 0; i < len(spec); i++ {
		ch := spec[i]
		switch {
		case ch == '&':
			// "L&" / "LC" cased-letter token: only meaningful right after L.
			if prefix == 'L' && entriesUnderPrefix == 0 {
				out.intervals = append(out.intervals, casedLetterSet...)
				prefix = 0
				entriesUnderPrefix = 1 // suppress the whole-L flush
				continue
			}
			flush()
		case ch == 'C' && prefix == 'L' && entriesUnderPrefix == 0:
			// "LC" cased-letter token, the uppercase spelling of "L&".
			out.intervals = append(out.intervals, casedLetterSet...)
			prefix = 0
			entriesUnderPrefix = 1
		case ch >= 'A' && ch <= 'Z':
			if prefix == 0 {
				prefix = ch
				continue
			}
			// A second uppercase letter starts a new primary category.
			flush()
			prefix = ch
		case ch >= 'a' && ch <= 'z':
			if prefix == 'L' && ch == 'c' {
				// "Lc" alternate spelling of the cased-letter token.
				out.intervals = append(out.intervals, casedLetterSet...)
				entriesUnderPrefix++
				continue
			}
			if prefix == 0 {
				// No primary set yet; not a valid subcategory letter on its own.
				continue
			}
			gc := encodeGC(prefix, ch)
			out.intervals = append(out.intervals, categoryInterval{gc, gc})
			entriesUnderPrefix++
		default:
			// Comma or any other delimiter: flush current run.
			flush()
		}
	}
	flush()

	return out
}

// GCPredicateStrings compiles a comma-separated specification the same
// way GCPredicate does; provided for parity with
// original_source/unicorn's three gc_predicate overloads (uint16_t,
// u8string, const char*), all of which funnel into the same grammar.
func GCPredicateStrings(spec string) CategoryPredicate {
	return GCPredicate(strings.TrimSpace(spec))
}
