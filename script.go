package unicorn

import (
	"sort"
	"sync"
)

// Script engine (spec.md §4.10, C10).

// CharScript returns c's primary script as its canonical 4-letter
// ISO-15924 abbreviation, decoded from the packed table value.
func CharScript(c rune) string {
	sc := rangeLookup(scriptTable, c, encodeScript("Zzzz")) // Zzzz: Unknown
	return decodeScript(sc)
}

// CharScriptList returns c's script extensions in alphabetical order, or
// the single-element list [CharScript(c)] when c has no explicit
// Script_Extensions entry (spec.md §4.10).
func CharScriptList(c rune) []string {
	if ext, ok := keyLookup(scriptExtensionTable, c, ""); ok && ext != "" {
		var out []string
		start := 0
		for i := 0; i <= len(ext); i++ {
			if i == len(ext) || ext[i] == ' ' {
				if i > start {
					out = append(out, ext[start:i])
				}
				start = i + 1
			}
		}
		sort.Strings(out)
		return out
	}
	return []string{CharScript(c)}
}

// ScriptName looks up abbr's full English name, case-insensitively,
// returning "" when abbr names no known script.
func ScriptName(abbr string) string {
	sc := encodeScript(abbr)
	name, _ := keyLookup(scriptNameTable, uint32ToRune(sc), "")
	return name
}

var (
	scriptIndexOnce sync.Once
	scriptIndex     []string // every distinct script abbreviation appearing in scriptTable, sorted
)

// AllScripts lazily builds and returns the sorted list of every script
// abbreviation this module's table assigns to at least one code point
// (spec.md §9's Once-initialized shared state: "script indices").
func AllScripts() []string {
	scriptIndexOnce.Do(func() {
		seen := make(map[string]bool)
		for _, e := range scriptTable {
			name := decodeScript(e.Value)
			if !seen[name] {
				seen[name] = true
				scriptIndex = append(scriptIndex, name)
			}
		}
		sort.Strings(scriptIndex)
	})
	return scriptIndex
}
