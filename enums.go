package unicorn

// Enumerations (spec.md §4.2, C2).
//
// Each enumerated Unicode property is a small closed set of tag values
// whose canonical short name matches the Unicode Standard exactly.
// BidiClass, EastAsianWidth, LineBreak, WordBreak, SentenceBreak,
// GraphemeClusterBreak and JoiningType carry a Default sentinel, distinct
// from any declared value, used internally to mean "not present in the
// table; apply the algorithmic fallback" (spec.md §4.2). The other
// enumerations have no such sentinel; their tables default to a declared
// value (NA, Other, No_Joining_Group, None). Stringer implementations for all
// of these live in format.go (C11).

// GeneralCategory packs two ASCII letters as (upper<<8)|lower, per
// spec.md §3. Grounded on original_source/unicorn/character.hpp's
// encode_gc/GC enum and CapIDL-UCD-builder's PropValueAliases table.
type GeneralCategory uint16

func encodeGC(a, b byte) GeneralCategory { return GeneralCategory(uint16(a)<<8 | uint16(b)) }

// decodeGC renders a GeneralCategory back to its two-letter spelling.
func decodeGC(gc GeneralCategory) string {
	return string([]byte{byte(gc >> 8), byte(gc)})
}

const (
	GCCc = GeneralCategory('C')<<8 | GeneralCategory('c') // Control
	GCCf = GeneralCategory('C')<<8 | GeneralCategory('f') // Format
	GCCn = GeneralCategory('C')<<8 | GeneralCategory('n') // Unassigned
	GCCo = GeneralCategory('C')<<8 | GeneralCategory('o') // Private use
	GCCs = GeneralCategory('C')<<8 | GeneralCategory('s') // Surrogate
	GCLl = GeneralCategory('L')<<8 | GeneralCategory('l') // Lowercase letter
	GCLm = GeneralCategory('L')<<8 | GeneralCategory('m') // Modifier letter
	GCLo = GeneralCategory('L')<<8 | GeneralCategory('o') // Other letter
	GCLt = GeneralCategory('L')<<8 | GeneralCategory('t') // Titlecase letter
	GCLu = GeneralCategory('L')<<8 | GeneralCategory('u') // Uppercase letter
	GCMc = GeneralCategory('M')<<8 | GeneralCategory('c') // Spacing mark
	GCMe = GeneralCategory('M')<<8 | GeneralCategory('e') // Enclosing mark
	GCMn = GeneralCategory('M')<<8 | GeneralCategory('n') // Nonspacing mark
	GCNd = GeneralCategory('N')<<8 | GeneralCategory('d') // Decimal number
	GCNl = GeneralCategory('N')<<8 | GeneralCategory('l') // Letter number
	GCNo = GeneralCategory('N')<<8 | GeneralCategory('o') // Other number
	GCPc = GeneralCategory('P')<<8 | GeneralCategory('c') // Connector punctuation
	GCPd = GeneralCategory('P')<<8 | GeneralCategory('d') // Dash punctuation
	GCPe = GeneralCategory('P')<<8 | GeneralCategory('e') // Close punctuation
	GCPf = GeneralCategory('P')<<8 | GeneralCategory('f') // Final punctuation
	GCPi = GeneralCategory('P')<<8 | GeneralCategory('i') // Initial punctuation
	GCPo = GeneralCategory('P')<<8 | GeneralCategory('o') // Other punctuation
	GCPs = GeneralCategory('P')<<8 | GeneralCategory('s') // Open punctuation
	GCSc = GeneralCategory('S')<<8 | GeneralCategory('c') // Currency symbol
	GCSk = GeneralCategory('S')<<8 | GeneralCategory('k') // Modifier symbol
	GCSm = GeneralCategory('S')<<8 | GeneralCategory('m') // Math symbol
	GCSo = GeneralCategory('S')<<8 | GeneralCategory('o') // Other symbol
	GCZl = GeneralCategory('Z')<<8 | GeneralCategory('l') // Line separator
	GCZp = GeneralCategory('Z')<<8 | GeneralCategory('p') // Paragraph separator
	GCZs = GeneralCategory('Z')<<8 | GeneralCategory('s') // Space separator
)

// gcLongNames gives the human-readable long name for each subcategory.
var gcLongNames = map[GeneralCategory]string{
	GCCc: "control", GCCf: "format", GCCn: "unassigned", GCCo: "private use", GCCs: "surrogate",
	GCLl: "lowercase letter", GCLm: "modifier letter", GCLo: "other letter", GCLt: "titlecase letter", GCLu: "uppercase letter",
	GCMc: "spacing mark", GCMe: "enclosing mark", GCMn: "nonspacing mark",
	GCNd: "decimal number", GCNl: "letter number", GCNo: "other number",
	GCPc: "connector punctuation", GCPd: "dash punctuation", GCPe: "close punctuation", GCPf: "final punctuation",
	GCPi: "initial punctuation", GCPo: "other punctuation", GCPs: "open punctuation",
	GCSc: "currency symbol", GCSk: "modifier symbol", GCSm: "math symbol", GCSo: "other symbol",
	GCZl: "line separator", GCZp: "paragraph separator", GCZs: "space separator",
}

// AllGeneralCategories returns every declared general-category enumerator.
func AllGeneralCategories() []GeneralCategory {
	return []GeneralCategory{
		GCCc, GCCf, GCCn, GCCo, GCCs, GCLl, GCLm, GCLo, GCLt, GCLu,
		GCMc, GCMe, GCMn, GCNd, GCNl, GCNo, GCPc, GCPd, GCPe, GCPf,
		GCPi, GCPo, GCPs, GCSc, GCSk, GCSm, GCSo, GCZl, GCZp, GCZs,
	}
}

// BidiClass is the Unicode Bidirectional Algorithm category of a code point.
type BidiClass uint8

const (
	BidiDefault BidiClass = iota // not present in the table; apply the range-based fallback
	BidiAL
	BidiAN
	BidiB
	BidiBN
	BidiCS
	BidiEN
	BidiES
	BidiET
	BidiFSI
	BidiL
	BidiLRE
	BidiLRI
	BidiLRO
	BidiNSM
	BidiON
	BidiPDF
	BidiPDI
	BidiR
	BidiRLE
	BidiRLI
	BidiRLO
	BidiS
	BidiWS
)

var bidiNames = map[BidiClass]string{
	BidiAL: "AL", BidiAN: "AN", BidiB: "B", BidiBN: "BN", BidiCS: "CS", BidiEN: "EN",
	BidiES: "ES", BidiET: "ET", BidiFSI: "FSI", BidiL: "L", BidiLRE: "LRE", BidiLRI: "LRI",
	BidiLRO: "LRO", BidiNSM: "NSM", BidiON: "ON", BidiPDF: "PDF", BidiPDI: "PDI", BidiR: "R",
	BidiRLE: "RLE", BidiRLI: "RLI", BidiRLO: "RLO", BidiS: "S", BidiWS: "WS",
}

// PairedBracketType classifies a code point under UAX #9's bracket pairing.
type PairedBracketType byte

const (
	BracketNone  PairedBracketType = 'n'
	BracketOpen  PairedBracketType = 'o'
	BracketClose PairedBracketType = 'c'
)

// EastAsianWidth is defined by UAX #11.
type EastAsianWidth uint8

const (
	EAWDefault EastAsianWidth = iota
	EAWN                      // Neutral
	EAWNa                     // Narrow
	EAWA                      // Ambiguous
	EAWW                      // Wide
	EAWH                      // Halfwidth
	EAWF                      // Fullwidth
)

var eawNames = map[EastAsianWidth]string{EAWN: "N", EAWNa: "Na", EAWA: "A", EAWW: "W", EAWH: "H", EAWF: "F"}

// HangulSyllableType classifies a code point's role in Hangul syllable
// composition (UAX #29's Hangul_Syllable_Type).
type HangulSyllableType uint8

const (
	HSTNotApplicable HangulSyllableType = iota // NA
	HSTL                                       // Leading_Jamo
	HSTV                                       // Vowel_Jamo
	HSTT                                       // Trailing_Jamo
	HSTLV                                      // LV_Syllable
	HSTLVT                                     // LVT_Syllable
)

var hstNames = map[HangulSyllableType]string{
	HSTNotApplicable: "NA", HSTL: "L", HSTV: "V", HSTT: "T", HSTLV: "LV", HSTLVT: "LVT",
}

// LineBreak is defined by UAX #14.
type LineBreak uint8

const (
	LBDefault LineBreak = iota
	LBBK
	LBCR
	LBLF
	LBCM
	LBSG
	LBGL
	LBCB
	LBSP
	LBZW
	LBNL
	LBWJ
	LBJL
	LBJV
	LBJT
	LBH2
	LBH3
	LBAI
	LBAL
	LBB2
	LBBA
	LBBB
	LBCJ
	LBCL
	LBCP
	LBEX
	LBHL
	LBHY
	LBID
	LBIN
	LBIS
	LBNS
	LBNU
	LBOP
	LBPO
	LBPR
	LBQU
	LBRI
	LBSA
	LBSY
	LBEB
	LBEM
	LBZWJ
)

var lbNames = map[LineBreak]string{
	LBBK: "BK", LBCR: "CR", LBLF: "LF", LBCM: "CM", LBSG: "SG", LBGL: "GL", LBCB: "CB",
	LBSP: "SP", LBZW: "ZW", LBNL: "NL", LBWJ: "WJ", LBJL: "JL", LBJV: "JV", LBJT: "JT",
	LBH2: "H2", LBH3: "H3", LBAI: "AI", LBAL: "AL", LBB2: "B2", LBBA: "BA", LBBB: "BB",
	LBCJ: "CJ", LBCL: "CL", LBCP: "CP", LBEX: "EX", LBHL: "HL", LBHY: "HY", LBID: "ID",
	LBIN: "IN", LBIS: "IS", LBNS: "NS", LBNU: "NU", LBOP: "OP", LBPO: "PO", LBPR: "PR",
	LBQU: "QU", LBRI: "RI", LBSA: "SA", LBSY: "SY", LBEB: "EB", LBEM: "EM", LBZWJ: "ZWJ",
}

// WordBreak is defined by UAX #29.
type WordBreak uint8

const (
	WBDefault WordBreak = iota
	WBOther
	WBCR
	WBLF
	WBNewline
	WBExtend
	WBRegionalIndicator
	WBFormat
	WBKatakana
	WBHebrewLetter
	WBALetter
	WBSingleQuote
	WBDoubleQuote
	WBMidNumLet
	WBMidLetter
	WBMidNum
	WBNumeric
	WBExtendNumLet
	WBZWJ
	WBWSegSpace
)

var wbNames = map[WordBreak]string{
	WBOther: "Other", WBCR: "CR", WBLF: "LF", WBNewline: "Newline", WBExtend: "Extend",
	WBRegionalIndicator: "Regional_Indicator", WBFormat: "Format", WBKatakana: "Katakana",
	WBHebrewLetter: "Hebrew_Letter", WBALetter: "ALetter", WBSingleQuote: "Single_Quote",
	WBDoubleQuote: "Double_Quote", WBMidNumLet: "MidNumLet", WBMidLetter: "MidLetter",
	WBMidNum: "MidNum", WBNumeric: "Numeric", WBExtendNumLet: "ExtendNumLet", WBZWJ: "ZWJ",
	WBWSegSpace: "WSegSpace",
}

// SentenceBreak is defined by UAX #29.
type SentenceBreak uint8

const (
	SBDefault SentenceBreak = iota
	SBOther
	SBCR
	SBLF
	SBExtend
	SBSep
	SBFormat
	SBSp
	SBLower
	SBUpper
	SBOLetter
	SBNumeric
	SBATerm
	SBSContinue
	SBSTerm
	SBClose
)

var sbNames = map[SentenceBreak]string{
	SBOther: "Other", SBCR: "CR", SBLF: "LF", SBExtend: "Extend", SBSep: "Sep", SBFormat: "Format",
	SBSp: "Sp", SBLower: "Lower", SBUpper: "Upper", SBOLetter: "OLetter", SBNumeric: "Numeric",
	SBATerm: "ATerm", SBSContinue: "SContinue", SBSTerm: "STerm", SBClose: "Close",
}

// GraphemeClusterBreak is defined by UAX #29.
type GraphemeClusterBreak uint8

const (
	GCBDefault GraphemeClusterBreak = iota
	GCBOther
	GCBCR
	GCBLF
	GCBControl
	GCBExtend
	GCBRegionalIndicator
	GCBPrepend
	GCBSpacingMark
	GCBL
	GCBV
	GCBT
	GCBLV
	GCBLVT
	GCBZWJ
)

var gcbNames = map[GraphemeClusterBreak]string{
	GCBOther: "Other", GCBCR: "CR", GCBLF: "LF", GCBControl: "Control", GCBExtend: "Extend",
	GCBRegionalIndicator: "Regional_Indicator", GCBPrepend: "Prepend", GCBSpacingMark: "SpacingMark",
	GCBL: "L", GCBV: "V", GCBT: "T", GCBLV: "LV", GCBLVT: "LVT", GCBZWJ: "ZWJ",
}

// IndicPositionalCategory is defined by the Indic Syllabic Category data file.
type IndicPositionalCategory uint8

const (
	InPCNA IndicPositionalCategory = iota
	InPCRight
	InPCLeft
	InPCVisualOrderLeft
	InPCLeftAndRight
	InPCTop
	InPCBottom
	InPCTopAndRight
	InPCTopAndLeft
	InPCTopAndBottom
	InPCTopAndBottomAndRight
	InPCTopAndBottomAndLeft
	InPCTopAndLeftAndRight
	InPCOverstruck
	InPCBottomAndRight
	InPCBottomAndLeft
)

var inPCNames = map[IndicPositionalCategory]string{
	InPCNA: "NA", InPCRight: "Right", InPCLeft: "Left", InPCVisualOrderLeft: "Visual_Order_Left",
	InPCLeftAndRight: "Left_And_Right", InPCTop: "Top", InPCBottom: "Bottom",
	InPCTopAndRight: "Top_And_Right", InPCTopAndLeft: "Top_And_Left", InPCTopAndBottom: "Top_And_Bottom",
	InPCTopAndBottomAndRight: "Top_And_Bottom_And_Right", InPCTopAndBottomAndLeft: "Top_And_Bottom_And_Left",
	InPCTopAndLeftAndRight: "Top_And_Left_And_Right", InPCOverstruck: "Overstruck",
	InPCBottomAndRight: "Bottom_And_Right", InPCBottomAndLeft: "Bottom_And_Left",
}

// IndicSyllabicCategory is defined by the Indic Syllabic Category data file.
type IndicSyllabicCategory uint8

const (
	InSCOther IndicSyllabicCategory = iota
	InSCAvagraha
	InSCBindu
	InSCBrahmiJoiningNumber
	InSCCantillationMark
	InSCConsonant
	InSCConsonantDead
	InSCConsonantFinal
	InSCConsonantHeadLetter
	InSCConsonantKiller
	InSCConsonantMedial
	InSCConsonantPlaceholder
	InSCConsonantPrecedingRepha
	InSCConsonantPrefixed
	InSCConsonantSucceedingRepha
	InSCConsonantSubjoined
	InSCConsonantWithStacker
	InSCGeminationMark
	InSCInvisibleStacker
	InSCJoiner
	InSCModifyingLetter
	InSCNonJoiner
	InSCNukta
	InSCNumber
	InSCNumberJoiner
	InSCPureKiller
	InSCRegisterShifter
	InSCSyllableModifier
	InSCToneLetter
	InSCToneMark
	InSCVirama
	InSCVisarga
	InSCVowel
	InSCVowelDependent
	InSCVowelIndependent
)

var inSCNames = map[IndicSyllabicCategory]string{
	InSCOther: "Other", InSCAvagraha: "Avagraha", InSCBindu: "Bindu",
	InSCBrahmiJoiningNumber: "Brahmi_Joining_Number", InSCCantillationMark: "Cantillation_Mark",
	InSCConsonant: "Consonant", InSCConsonantDead: "Consonant_Dead", InSCConsonantFinal: "Consonant_Final",
	InSCConsonantHeadLetter: "Consonant_Head_Letter", InSCConsonantKiller: "Consonant_Killer",
	InSCConsonantMedial: "Consonant_Medial", InSCConsonantPlaceholder: "Consonant_Placeholder",
	InSCConsonantPrecedingRepha: "Consonant_Preceding_Repha", InSCConsonantPrefixed: "Consonant_Prefixed",
	InSCConsonantSucceedingRepha: "Consonant_Succeeding_Repha", InSCConsonantSubjoined: "Consonant_Subjoined",
	InSCConsonantWithStacker: "Consonant_With_Stacker", InSCGeminationMark: "Gemination_Mark",
	InSCInvisibleStacker: "Invisible_Stacker", InSCJoiner: "Joiner", InSCModifyingLetter: "Modifying_Letter",
	InSCNonJoiner: "Non_Joiner", InSCNukta: "Nukta", InSCNumber: "Number", InSCNumberJoiner: "Number_Joiner",
	InSCPureKiller: "Pure_Killer", InSCRegisterShifter: "Register_Shifter", InSCSyllableModifier: "Syllable_Modifier",
	InSCToneLetter: "Tone_Letter", InSCToneMark: "Tone_Mark", InSCVirama: "Virama", InSCVisarga: "Visarga",
	InSCVowel: "Vowel", InSCVowelDependent: "Vowel_Dependent", InSCVowelIndependent: "Vowel_Independent",
}

// JoiningType is defined by UAX #9's Arabic joining behaviour.
type JoiningType uint8

const (
	JoiningTypeDefault JoiningType = iota
	JoiningTypeU                   // Non_Joining
	JoiningTypeC                   // Join_Causing
	JoiningTypeD                   // Dual_Joining
	JoiningTypeL                   // Left_Joining
	JoiningTypeR                   // Right_Joining
	JoiningTypeT                   // Transparent
)

var joiningTypeNames = map[JoiningType]string{
	JoiningTypeU: "U", JoiningTypeC: "C", JoiningTypeD: "D", JoiningTypeL: "L", JoiningTypeR: "R", JoiningTypeT: "T",
}

// JoiningGroup names the Arabic-script joining group of a code point. This
// is a representative subset of the ~90 joining groups defined by
// ArabicShaping.txt, covering the groups exercised by this module's tables
// and tests; No_Joining_Group is the default for code points outside any
// joining group.
type JoiningGroup uint8

const (
	JoiningGroupNone JoiningGroup = iota
	JoiningGroupAin
	JoiningGroupAlaph
	JoiningGroupAlef
	JoiningGroupBeh
	JoiningGroupDal
	JoiningGroupFeh
	JoiningGroupFinalSemkath
	JoiningGroupGaf
	JoiningGroupHah
	JoiningGroupHeh
	JoiningGroupHehGoal
	JoiningGroupKaf
	JoiningGroupLam
	JoiningGroupMeem
	JoiningGroupNoon
	JoiningGroupQaf
	JoiningGroupReh
	JoiningGroupSad
	JoiningGroupSeen
	JoiningGroupTah
	JoiningGroupTehMarbuta
	JoiningGroupTehMarbutaGoal
	JoiningGroupWaw
	JoiningGroupYeh
	JoiningGroupYehBarree
)

var joiningGroupNames = map[JoiningGroup]string{
	JoiningGroupNone: "No_Joining_Group", JoiningGroupAin: "Ain", JoiningGroupAlaph: "Alaph",
	JoiningGroupAlef: "Alef", JoiningGroupBeh: "Beh", JoiningGroupDal: "Dal", JoiningGroupFeh: "Feh",
	JoiningGroupFinalSemkath: "Final_Semkath", JoiningGroupGaf: "Gaf", JoiningGroupHah: "Hah",
	JoiningGroupHeh: "Heh", JoiningGroupHehGoal: "Heh_Goal", JoiningGroupKaf: "Kaf", JoiningGroupLam: "Lam",
	JoiningGroupMeem: "Meem", JoiningGroupNoon: "Noon", JoiningGroupQaf: "Qaf", JoiningGroupReh: "Reh",
	JoiningGroupSad: "Sad", JoiningGroupSeen: "Seen", JoiningGroupTah: "Tah",
	JoiningGroupTehMarbuta: "Teh_Marbuta", JoiningGroupTehMarbutaGoal: "Teh_Marbuta_Goal",
	JoiningGroupWaw: "Waw", JoiningGroupYeh: "Yeh", JoiningGroupYehBarree: "Yeh_Barree",
}

// NumericType is defined by UAX #44.
type NumericType uint8

const (
	NumericTypeNone NumericType = iota
	NumericTypeDecimal
	NumericTypeDigit
	NumericTypeNumeric
)

var numericTypeNames = map[NumericType]string{
	NumericTypeNone: "None", NumericTypeDecimal: "Decimal", NumericTypeDigit: "Digit", NumericTypeNumeric: "Numeric",
}
