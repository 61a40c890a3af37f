/*
Package unicorn implements a Unicode Character Database (UCD) query engine.

Given a Unicode scalar value in the range U+0000..U+10FFFF (or the sentinel
U+110000 meaning "beyond Unicode"), this package returns the authoritative
per-character properties defined by the Unicode Standard: general category,
bidirectional class, decomposition and composition mappings, case mappings
(simple and full), character names (including algorithmically derived
names), block, script, combining class, and the enumerated properties used
by East Asian width, line/word/sentence/grapheme-cluster breaking, Hangul
syllable typing, Indic positional/syllabic categorization, joining
type/group, and numeric type/value.

# Overview

Using this package, you can:
  - Classify a code point's general category, or compile a category
    expression such as "L&" or "Zs,L&" into a reusable predicate
  - Resolve bidirectional class, mirroring, and paired-bracket properties
  - Apply simple or full case mappings
  - Decompose or canonically compose a code point, including the Hangul
    L/V/T arithmetic
  - Look up a code point's official Unicode name, including algorithmic
    names for Hangul syllables and CJK/Tangut/Nüshu ideographs
  - Resolve block, script, and script-extension membership

# Totality

Every query in this package is a pure, total function of its input:
out-of-range or unassigned code points yield documented defaults (Cn, an
empty string, (0,1), etc.) rather than an error. The single fallible path
in the whole library is the one-time inflation of the compressed name blob
on first use of a name-lookup function; see [InitError].

# Concurrency

All tables are compile-time constants. The name map, block list, and
script indices are built lazily and exactly once, guarded by sync.Once, so
that concurrent callers observe a fully published cache with no further
synchronization on the read path.
*/
package unicorn
