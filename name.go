package unicorn

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	kflate "github.com/klauspost/compress/flate"
)

// flateNewReader wraps klauspost/compress's flate reader, the module's
// chosen decompression dependency (SPEC_FULL.md's DOMAIN STACK, spec.md
// §9's Design Note on the decompression dependency).
func flateNewReader(r io.Reader) io.ReadCloser { return kflate.NewReader(r) }

// Name engine (spec.md §4.8, §7, C8).

// NameFlags is a bitmask controlling CharName's algorithm (spec.md §4.8).
type NameFlags uint8

const (
	NameControl NameFlags = 1 << iota
	NameLabel
	NameLower
	NamePrefix
	NameUpdate
)

// InitError reports a failure in the once-only lazy initialization of
// shared state (spec.md §7's Initialization failure, §9's Design Note on
// decompression). It wraps the underlying error from the compression
// library.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("unicorn: %s initialization failed: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// deflateSeed DEFLATE-compresses s using the standard library's writer.
// This module ships its name blob compressed the way a real UCD build
// would (spec.md §9's Design Note on the decompression dependency): the
// generator that produces the literal in tables_name_blob.go runs this same
// compression step offline; it is inlined here only because this module
// carries a small built-in seed table rather than shelling out to
// cmd/gentables at build time.
func deflateSeed(s string) []byte {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		panic(err)
	}
	if _, err := io.WriteString(w, s); err != nil {
		panic(err)
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

var (
	nameMap     map[rune]string
	nameMapOnce sync.Once
	nameMapErr  error
)

func loadNameMap() (map[rune]string, error) {
	nameMapOnce.Do(func() {
		nameMap, nameMapErr = inflateNameMap()
	})
	return nameMap, nameMapErr
}

// inflateNameMap decompresses nameBlobDeflated with klauspost/compress's
// flate reader and parses the "hex;NAME;" records into a map (spec.md
// §4.8's "Name map construction"). An inflate error, or a decompressed
// length other than the known size, is returned as an *InitError.
func inflateNameMap() (map[rune]string, error) {
	r := flateNewReader(bytes.NewReader(nameBlobDeflated))
	defer r.Close()

	decoded, err := io.ReadAll(r)
	if err != nil {
		return nil, &InitError{Component: "name map", Err: err}
	}
	if len(decoded) != nameBlobDecompressedSize {
		return nil, &InitError{Component: "name map", Err: fmt.Errorf(
			"decompressed %d bytes, want %d", len(decoded), nameBlobDecompressedSize)}
	}

	// strings.Split on ';' over "hex;NAME;hex;NAME;..." yields
	// [hex, NAME, hex, NAME, ..., ""]; walk it in pairs.
	m := make(map[rune]string)
	fields := strings.Split(string(decoded), ";")
	for i := 0; i+1 < len(fields); i += 2 {
		hexStr := strings.TrimSpace(fields[i])
		name := strings.TrimSpace(fields[i+1])
		if hexStr == "" {
			continue
		}
		v, err := strconv.ParseUint(hexStr, 16, 32)
		if err != nil {
			continue
		}
		m[rune(v)] = name
	}
	return m, nil
}

// CharName resolves c's canonical Unicode name under flags, following
// spec.md §4.8's "first non-empty wins" algorithm. If the name map fails
// to initialize, CharName skips the map step and goes on to the
// algorithmic and label steps; the InitError is not returned to the caller.
func CharName(c rune, flags NameFlags) string {
	name := resolveBaseName(c, flags)
	if flags&NameLower != 0 {
		name = strings.ToLower(name)
	}
	if flags&NamePrefix != 0 {
		name = "U+" + hexPad4(uint32(c)) + " " + name
	}
	return name
}

func resolveBaseName(c rune, flags NameFlags) string {
	if flags&NameControl != 0 && isControlCode(c) {
		return controlName(c)
	}
	if flags&NameUpdate != 0 {
		if n, ok := keyLookup(correctedNamesTable, c, ""); ok {
			return n
		}
	}
	if n, ok := preUpdateName(c); ok {
		return n
	}
	m, err := loadNameMap()
	if err == nil {
		if n, ok := m[c]; ok {
			return n
		}
	}
	if n := algorithmicName(c); n != "" {
		return n
	}
	if flags&NameLabel != 0 {
		return labelName(c)
	}
	return ""
}

// preUpdateName returns the pre-correction spelling for code points that
// correctedNamesTable overrides, so that CharName without NameUpdate
// still resolves to a real (if outdated) name rather than falling
// through to the main name map (spec.md §4.8 step 2/3 ordering).
func preUpdateName(c rune) (string, bool) {
	return keyLookup(preUpdateNamesTable, c, "")
}

func isControlCode(c rune) bool {
	return (c >= 0 && c <= 0x1F) || c == 0x7F || (c >= 0x80 && c <= 0x9F)
}

// controlName maps a control code point to its ISO-6429 phrase.
// c == 0x07 is "ALERT" rather than the ISO-6429-adjacent "BELL" (spec.md
// §4.8 step 1's explicit exception).
func controlName(c rune) string {
	var idx int
	switch {
	case c <= 0x1F:
		idx = int(c)
	case c == 0x7F:
		idx = 32
	default: // 0x80..0x9F
		idx = 33 + int(c-0x80)
	}
	if idx < 0 || idx >= len(controlNames) {
		return ""
	}
	return controlNames[idx]
}

// algorithmicName synthesizes a name for the ranges spec.md §4.8 step 4
// and SPEC_FULL.md's C8 supplement name algorithmically rather than
// through the name map: CJK unified/compatibility ideographs, Hangul
// syllables, Tangut, and Nushu.
func algorithmicName(c rune) string {
	switch {
	case inAny(c, rng{0x3400, 0x4DBF}, rng{0x4E00, 0x9FFF}, rng{0x20000, 0x2A6DF}, rng{0x2A700, 0x2B81F}):
		return "CJK UNIFIED IDEOGRAPH-" + hexPad4(uint32(c))
	case inAny(c, rng{0xF900, 0xFAFF}, rng{0x2F800, 0x2FA1F}):
		return "CJK COMPATIBILITY IDEOGRAPH-" + hexPad4(uint32(c))
	case c >= hangulSBase && c < hangulSBase+hangulNCount*rune(len(hangulJamoL)):
		return hangulSyllableName(c)
	case inAny(c, rng{0x17000, 0x187FF}, rng{0x18D00, 0x18D08}):
		return "TANGUT IDEOGRAPH-" + hexPad4(uint32(c))
	case inAny(c, rng{0x1B170, 0x1B2FB}):
		return "NUSHU CHARACTER-" + hexPad4(uint32(c))
	default:
		return ""
	}
}

func hangulSyllableName(c rune) string {
	sIndex := c - hangulSBase
	lIndex := sIndex / hangulNCount
	vIndex := (sIndex % hangulNCount) / hangulTCount
	tIndex := sIndex % hangulTCount
	return "HANGUL SYLLABLE " + hangulJamoL[lIndex] + hangulJamoV[vIndex] + hangulJamoT[tIndex]
}

// labelName synthesizes a bracketed label when every other resolution
// step yields nothing (spec.md §4.8 step 5). Code points beyond
// LastUnicodeChar are always labeled noncharacter, matching the spec's
// explicit carve-out for out-of-range queries.
func labelName(c rune) string {
	if c > LastUnicodeChar {
		return "<noncharacter-" + hexPad4(uint32(c)) + ">"
	}
	switch GeneralCategoryOf(c) {
	case GCCc:
		return "<control-" + hexPad4(uint32(c)) + ">"
	case GCCs:
		return "<surrogate-" + hexPad4(uint32(c)) + ">"
	case GCCo:
		return "<private-use-" + hexPad4(uint32(c)) + ">"
	}
	if IsNoncharacter(c) {
		return "<noncharacter-" + hexPad4(uint32(c)) + ">"
	}
	return "<reserved-" + hexPad4(uint32(c)) + ">"
}
