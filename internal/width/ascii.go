package width

import (
	"strings"
	"unicode/utf8"
)

// asciiFallback maps common non-ASCII glyphs to plain-ASCII stand-ins for
// terminals that cannot render Unicode.
var asciiFallback = map[rune]string{
	'…': "...", // ellipsis
	'•': "*",   // bullet
	'·': ".",
	'–': "-",
	'—': "--",
	'‘': "'",
	'’': "'",
	'“': `"`,
	'”': `"`,
	'\u00a0': " ",
	'←': "<-",
	'→': "->",
	'↑': "^",
	'↓': "v",
	'↵': "<-'",
	'▶': ">",
	'◀': "<",
	'▲': "^",
	'▼': "v",
	'✓': "v",
	'✔': "v",
	'✗': "x",
	'✘': "x",
	'×': "x",
	'█': "#",
	'▓': "#",
	'▒': ":",
	'░': ".",
	'─': "-",
	'━': "-",
	'═': "=",
	'│': "|",
	'┃': "|",
	'║': "|",
	'©': "(c)",
	'®': "(R)",
	'™': "TM",
	'°': "o",
}

// latinFold strips diacritics from Latin-1 letters.
var latinFold = map[rune]byte{}

func init() {
	groups := map[byte]string{
		'A': "ÀÁÂÃÄÅ",
		'a': "àáâãäå",
		'C': "Ç",
		'c': "ç",
		'E': "ÈÉÊË",
		'e': "èéêë",
		'I': "ÌÍÎÏ",
		'i': "ìíîï",
		'N': "Ñ",
		'n': "ñ",
		'O': "ÒÓÔÕÖØ",
		'o': "òóôõöø",
		'U': "ÙÚÛÜ",
		'u': "ùúûü",
		'Y': "Ý",
		'y': "ýÿ",
	}
	for base, runes := range groups {
		for _, r := range runes {
			latinFold[r] = base
		}
	}
}

// ASCII transliterates s to printable ASCII. Each grapheme cluster is
// replaced by its stand-in from the fallback table, its base letter when it
// is an accented Latin letter or an ASCII rune with combining marks, and "?"
// otherwise. Box-drawing corners and junctions become "+". Newlines are
// kept.
func ASCII(s string) string {
	if isASCII(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for c := range Clusters(s) {
		b.WriteString(asciiCluster(c))
	}
	return b.String()
}

func asciiCluster(c string) string {
	r, _ := utf8.DecodeRuneInString(c)
	switch {
	case r < utf8.RuneSelf:
		return string(r)
	case asciiFallback[r] != "":
		return asciiFallback[r]
	case latinFold[r] != 0:
		return string(latinFold[r])
	case r >= 0x2500 && r <= 0x257f:
		return "+"
	}
	return "?"
}
