package unicorn

// Embedded enumerated-property data (spec.md §3, §4.9, C12). Every table
// here is a sparse-range table with its own declared default (spec.md
// §4.9), following the same rangeEntry shape as generalCategoryTable.
// HangulSyllableTypeOf and JoiningTypeOf add an algorithmic layer over
// their tables; the other lookups read their tables directly.

var combiningClassTable = []rangeEntry[byte]{
	{0x0000, 0}, {0x0300, 230}, {0x0316, 220}, {0x0334, 1}, {0x0340, 230},
	{0x0342, 230}, {0x0343, 230}, {0x0344, 230}, {0x0345, 240}, {0x0346, 230},
	{0x0370, 0},
	{0x0591, 220}, {0x05B0, 10}, {0x05BB, 20}, {0x05C8, 0}, {0x0610, 230},
	{0x061B, 0}, {0x064B, 27}, {0x0654, 33}, {0x0660, 0}, {0x0670, 35},
	{0x0671, 0}, {0x06D6, 230}, {0x06DD, 0}, {0x0951, 230}, {0x0953, 220},
	{0x0955, 0},
	{0x0F71, 129}, {0x0F72, 130}, {0x0F74, 132}, {0x0F7A, 130}, {0x0F80, 130},
	{0x0F82, 230}, {0x0F84, 0}, {0x1DC0, 230}, {0x1E00, 0}, {0x20D0, 230},
	{0x20E1, 216}, {0x20E5, 1}, {0x20F1, 0},
	{0xFE20, 230}, {0xFE30, 0},
}

var eastAsianWidthTable = []rangeEntry[EastAsianWidth]{
	{0x0000, EAWN}, {0x0020, EAWNa}, {0x007F, EAWN}, {0x00A1, EAWA},
	{0x00A4, EAWA}, {0x00A7, EAWA}, {0x00A9, EAWA}, {0x00AE, EAWA},
	{0x1100, EAWW}, {0x2010, EAWA}, {0x2100, EAWA}, {0x2460, EAWA},
	{0x2600, EAWA}, {0x2E80, EAWW}, {0x3000, EAWF}, {0x3001, EAWW},
	{0xAC00, EAWW}, {0xD7A4, EAWN}, {0xFF00, EAWN}, {0xFF01, EAWF},
	{0xFF61, EAWH}, {0xFF65, EAWH}, {0xFFA0, EAWH}, {0xFFE0, EAWF},
	{0x20000, EAWW}, {0x2A6E0, EAWN}, {0x2A700, EAWW}, {0x2FFFE, EAWN},
	{0x30000, EAWW},
}

var hangulSyllableTypeTable = []rangeEntry[HangulSyllableType]{
	{0x0000, HSTNotApplicable},
	{0x1100, HSTL}, {0x1160, HSTV}, {0x11A8, HSTT}, {0x1200, HSTNotApplicable},
	{0xA960, HSTL}, {0xA97D, HSTNotApplicable},
	{0xD7B0, HSTV}, {0xD7C7, HSTNotApplicable}, {0xD7CB, HSTT}, {0xD7FC, HSTNotApplicable},
	// AC00..D7A3 syllable block is handled algorithmically by
	// HangulSyllableTypeOf, not via the table (LV vs LVT depends on the
	// offset from S_BASE modulo T_COUNT, which a plain range can't express).
}

var lineBreakTable = []rangeEntry[LineBreak]{
	{0x0000, LBCM}, {0x0009, LBBA}, {0x000A, LBLF}, {0x000B, LBBK},
	{0x000D, LBCR}, {0x000E, LBCM}, {0x0020, LBSP}, {0x0021, LBEX},
	{0x0022, LBQU}, {0x0023, LBAL}, {0x0024, LBPR}, {0x0025, LBPO},
	{0x0028, LBOP}, {0x0029, LBCP}, {0x002C, LBIS}, {0x002D, LBHY},
	{0x002E, LBIS}, {0x002F, LBSY}, {0x0030, LBNU}, {0x003A, LBIS},
	{0x0041, LBAL}, {0x005B, LBOP}, {0x005D, LBCP}, {0x0061, LBAL},
	{0x007B, LBOP}, {0x007D, LBCP}, {0x0085, LBNL}, {0x00A0, LBGL},
	{0x2000, LBBA}, {0x200B, LBZW}, {0x2028, LBBK}, {0x2029, LBBK},
	{0x2060, LBWJ}, {0x3000, LBID}, {0x3400, LBID}, {0x4E00, LBID},
	{0xAC00, LBH2}, {0xD800, LBSG}, {0xE000, LBAL}, {0x1F000, LBID},
}

var wordBreakTable = []rangeEntry[WordBreak]{
	{0x0000, WBOther}, {0x000A, WBLF}, {0x000B, WBNewline}, {0x000D, WBCR},
	{0x000E, WBNewline}, {0x0022, WBDoubleQuote}, {0x0027, WBSingleQuote},
	{0x0030, WBNumeric}, {0x003A, WBMidLetter}, {0x0041, WBALetter},
	{0x005B, WBOther}, {0x0061, WBALetter}, {0x0300, WBExtend},
	{0x05D0, WBHebrewLetter}, {0x0600, WBOther}, {0x200D, WBZWJ},
	{0x3040, WBKatakana}, {0xFE00, WBExtend}, {0xFF10, WBNumeric},
	{0x1F1E6, WBRegionalIndicator}, {0x1F1FF, WBOther},
}

var sentenceBreakTable = []rangeEntry[SentenceBreak]{
	{0x0000, SBOther}, {0x000A, SBLF}, {0x000B, SBExtend}, {0x000D, SBCR},
	{0x000E, SBOther}, {0x0020, SBSp}, {0x0021, SBSTerm}, {0x0022, SBClose},
	{0x0028, SBClose}, {0x0029, SBOther}, {0x002E, SBATerm}, {0x0030, SBNumeric},
	{0x003A, SBOther}, {0x0041, SBUpper}, {0x0061, SBLower}, {0x007B, SBOther},
	{0x0300, SBExtend}, {0x2028, SBSep}, {0x2029, SBSep}, {0xFF01, SBSTerm},
}

var graphemeClusterBreakTable = []rangeEntry[GraphemeClusterBreak]{
	{0x0000, GCBControl}, {0x000A, GCBLF}, {0x000B, GCBControl}, {0x000D, GCBCR},
	{0x000E, GCBControl}, {0x0020, GCBOther}, {0x0300, GCBExtend}, {0x0600, GCBPrepend},
	{0x0900, GCBOther}, {0x0903, GCBSpacingMark}, {0x0904, GCBOther},
	{0x1100, GCBL}, {0x1160, GCBV}, {0x11A8, GCBT}, {0x1200, GCBOther},
	{0x200D, GCBZWJ}, {0x200E, GCBOther},
	{0xAC00, GCBLV}, {0xD7A4, GCBOther},
	{0xFE00, GCBExtend}, {0xFF00, GCBOther},
	{0x1F1E6, GCBRegionalIndicator}, {0x1F1FF, GCBOther},
}

var indicPositionalCategoryTable = []rangeEntry[IndicPositionalCategory]{
	{0x0000, InPCNA}, {0x0900, InPCTop}, {0x093E, InPCRight}, {0x093F, InPCLeft},
	{0x0940, InPCRight}, {0x0949, InPCTopAndRight}, {0x094E, InPCNA},
	{0x0E00, InPCNA},
}

var indicSyllabicCategoryTable = []rangeEntry[IndicSyllabicCategory]{
	{0x0000, InSCOther}, {0x0900, InSCBindu}, {0x0901, InSCBindu}, {0x0902, InSCBindu},
	{0x0903, InSCVisarga}, {0x0904, InSCVowelIndependent}, {0x0915, InSCConsonant},
	{0x093C, InSCNukta}, {0x093D, InSCConsonantPlaceholder}, {0x093E, InSCVowelDependent},
	{0x094D, InSCVirama}, {0x094E, InSCOther},
}

var joiningTypeTable = []rangeEntry[JoiningType]{
	{0x0000, JoiningTypeDefault},
	{0x0621, JoiningTypeU}, {0x0622, JoiningTypeR}, {0x0623, JoiningTypeR},
	{0x0624, JoiningTypeR}, {0x0625, JoiningTypeR}, {0x0626, JoiningTypeD},
	{0x0627, JoiningTypeR}, {0x0628, JoiningTypeD}, {0x0629, JoiningTypeR},
	{0x062A, JoiningTypeD}, {0x062B, JoiningTypeD}, {0x062C, JoiningTypeD},
	{0x062D, JoiningTypeD}, {0x062E, JoiningTypeD}, {0x062F, JoiningTypeR},
	{0x0630, JoiningTypeR}, {0x0631, JoiningTypeR}, {0x0632, JoiningTypeR},
	{0x0633, JoiningTypeD}, {0x0634, JoiningTypeD}, {0x0635, JoiningTypeD},
	{0x0636, JoiningTypeD}, {0x0637, JoiningTypeD}, {0x0638, JoiningTypeD},
	{0x0639, JoiningTypeD}, {0x063A, JoiningTypeD}, {0x063B, JoiningTypeDefault},
	{0x0641, JoiningTypeD}, {0x0642, JoiningTypeD}, {0x0643, JoiningTypeD},
	{0x0644, JoiningTypeD}, {0x0645, JoiningTypeD}, {0x0646, JoiningTypeD},
	{0x0647, JoiningTypeD}, {0x0648, JoiningTypeR}, {0x0649, JoiningTypeD},
	{0x064A, JoiningTypeD}, {0x064B, JoiningTypeDefault},
}

var joiningGroupTable = []rangeEntry[JoiningGroup]{
	{0x0000, JoiningGroupNone},
	{0x0622, JoiningGroupAlef}, {0x0623, JoiningGroupAlef}, {0x0624, JoiningGroupWaw},
	{0x0625, JoiningGroupAlef}, {0x0626, JoiningGroupYeh}, {0x0627, JoiningGroupAlef},
	{0x0628, JoiningGroupBeh}, {0x0629, JoiningGroupTehMarbuta}, {0x062A, JoiningGroupBeh},
	{0x062B, JoiningGroupBeh}, {0x062C, JoiningGroupHah}, {0x062D, JoiningGroupHah},
	{0x062E, JoiningGroupHah}, {0x062F, JoiningGroupDal}, {0x0630, JoiningGroupDal},
	{0x0631, JoiningGroupReh}, {0x0632, JoiningGroupReh}, {0x0633, JoiningGroupSeen},
	{0x0634, JoiningGroupSeen}, {0x0635, JoiningGroupSad}, {0x0636, JoiningGroupSad},
	{0x0637, JoiningGroupTah}, {0x0638, JoiningGroupTah}, {0x0639, JoiningGroupAin},
	{0x063A, JoiningGroupAin}, {0x063B, JoiningGroupNone},
	{0x0641, JoiningGroupFeh}, {0x0642, JoiningGroupQaf}, {0x0643, JoiningGroupKaf},
	{0x0644, JoiningGroupLam}, {0x0645, JoiningGroupMeem}, {0x0646, JoiningGroupNoon},
	{0x0647, JoiningGroupHeh}, {0x0648, JoiningGroupWaw}, {0x0649, JoiningGroupYeh},
	{0x064A, JoiningGroupYeh}, {0x064B, JoiningGroupNone},
	{0x0710, JoiningGroupAlaph}, {0x0711, JoiningGroupNone},
	{0x0712, JoiningGroupBeh}, {0x0713, JoiningGroupNone},
}

var numericTypeTable = []rangeEntry[NumericType]{
	{0x0000, NumericTypeNone}, {0x0030, NumericTypeDecimal}, {0x003A, NumericTypeNone},
	{0x00B2, NumericTypeDigit}, {0x00B4, NumericTypeNone}, {0x00BC, NumericTypeNumeric},
	{0x00BF, NumericTypeNone}, {0x0660, NumericTypeDecimal}, {0x066A, NumericTypeNone},
	{0x2150, NumericTypeNumeric}, {0x2160, NumericTypeNumeric}, {0x2180, NumericTypeNone},
	{0x2460, NumericTypeDigit}, {0x2474, NumericTypeNone}, {0xFF10, NumericTypeDecimal},
	{0xFF1A, NumericTypeNone},
}

// numericRatio is a rational numeric value (numerator, denominator).
type numericRatio struct{ num, den int32 }

var numericValueTable = []rangeEntry[numericRatio]{
	{0x0000, numericRatio{0, 1}},
	{0x0030, numericRatio{0, 1}}, {0x0031, numericRatio{1, 1}}, {0x0032, numericRatio{2, 1}},
	{0x0033, numericRatio{3, 1}}, {0x0034, numericRatio{4, 1}}, {0x0035, numericRatio{5, 1}},
	{0x0036, numericRatio{6, 1}}, {0x0037, numericRatio{7, 1}}, {0x0038, numericRatio{8, 1}},
	{0x0039, numericRatio{9, 1}}, {0x003A, numericRatio{0, 1}},
	{0x00BC, numericRatio{1, 4}}, {0x00BD, numericRatio{1, 2}}, {0x00BE, numericRatio{3, 4}},
	{0x00BF, numericRatio{0, 1}},
	{0x2150, numericRatio{1, 7}}, {0x2151, numericRatio{1, 9}}, {0x2152, numericRatio{1, 10}},
	{0x2153, numericRatio{1, 3}}, {0x2154, numericRatio{2, 3}}, {0x2160, numericRatio{1, 1}},
	{0x2161, numericRatio{2, 1}}, {0x2162, numericRatio{3, 1}}, {0x2163, numericRatio{4, 1}},
	{0x2164, numericRatio{5, 1}}, {0x2180, numericRatio{0, 1}},
	{0xFF10, numericRatio{0, 1}}, {0xFF11, numericRatio{1, 1}}, {0xFF1A, numericRatio{0, 1}},
}
