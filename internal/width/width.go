// Package width measures terminal text in columns.
//
// Text is segmented into grapheme clusters (rivo/uniseg) and each cluster is
// measured with go-runewidth: the widest rune in the cluster decides, so
// combining marks and zero-width joiners add nothing, and a variation
// selector 16 forces emoji presentation (2 columns). Layout, wrapping and
// painting all measure through this package so they always agree.
package width

import (
	"iter"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const (
	vs16 = '\uFE0F' // emoji presentation selector
	vs15 = '\uFE0E' // text presentation selector
)

// cond pins East Asian ambiguous characters to one column regardless of the
// process locale, so measurements are deterministic.
var cond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Rune returns the column width of a single rune: 0 for control characters,
// combining marks and zero-width characters, 2 for wide and emoji runes,
// 1 otherwise.
func Rune(r rune) int {
	if r < 0x20 || r == 0x7f {
		return 0
	}
	if r < 0x7f {
		return 1
	}
	return cond.RuneWidth(r)
}

// Cluster returns the column width of one grapheme cluster.
func Cluster(c string) int {
	if len(c) == 1 {
		return Rune(rune(c[0]))
	}
	w := 0
	regional := 0
	for _, r := range c {
		switch {
		case r == vs16:
			return 2
		case r == vs15:
			return 1
		case r >= 0x1F1E6 && r <= 0x1F1FF:
			regional++
		}
		if rw := Rune(r); rw > w {
			w = rw
		}
	}
	if regional == 2 {
		return 2
	}
	return w
}

// Clusters yields each grapheme cluster of s with its column width.
func Clusters(s string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		state := -1
		var c string
		for s != "" {
			c, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
			if !yield(c, Cluster(c)) {
				return
			}
		}
	}
}

// String returns the column width of s. Newlines count as zero; use Max for
// multi-line text.
func String(s string) int {
	if isASCII(s) {
		n := 0
		for i := 0; i < len(s); i++ {
			if s[i] >= 0x20 && s[i] != 0x7f {
				n++
			}
		}
		return n
	}
	n := 0
	for _, w := range Clusters(s) {
		n += w
	}
	return n
}

// Max returns the width of the widest line of s.
func Max(s string) int {
	widest := 0
	for line := range strings.SplitSeq(s, "\n") {
		if w := String(line); w > widest {
			widest = w
		}
	}
	return widest
}

// Truncate shortens s to at most w columns, ending with tail when anything
// was cut. The result is always exactly min(String(s), w) columns wide: when
// a wide cluster cannot fit before the tail, a space takes its place. A tail
// wider than w is dropped.
func Truncate(s string, w int, tail string) string {
	sw := String(s)
	if sw <= w {
		return s
	}
	if w <= 0 {
		return ""
	}
	tw := String(tail)
	if tw > w {
		tail, tw = "", 0
	}

	budget := w - tw
	var b strings.Builder
	used := 0
	for c, cw := range Clusters(s) {
		if used+cw > budget {
			break
		}
		b.WriteString(c)
		used += cw
	}
	for ; used < budget; used++ {
		b.WriteByte(' ')
	}
	b.WriteString(tail)
	return b.String()
}

// Pad right-pads s with spaces to w columns. Strings already at least w
// columns wide are returned unchanged.
func Pad(s string, w int) string {
	if n := w - String(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
