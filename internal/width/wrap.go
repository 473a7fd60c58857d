package width

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type token struct {
	text  string
	w     int
	space bool
}

// Wrap breaks s into lines of at most w columns. Lines break at the last
// whitespace before the overflow point; a token is split mid-word only when
// it is wider than a whole line. Explicit newlines always start a new line,
// and whitespace at a break is dropped.
//
// A single cluster wider than w (a wide rune when w is 1) is placed on its
// own line rather than dropped. Wrap returns nil when w < 1.
func Wrap(s string, w int) []string {
	if w < 1 {
		return nil
	}
	var lines []string
	for para := range strings.SplitSeq(s, "\n") {
		lines = wrapParagraph(lines, strings.TrimSuffix(para, "\r"), w)
	}
	return lines
}

func wrapParagraph(lines []string, s string, w int) []string {
	var (
		cur      strings.Builder
		curW     int
		pending  string
		pendingW int
		started  bool
	)
	emit := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
		started = true
	}

	for _, tok := range tokenize(s) {
		if tok.space {
			// Leading indentation is kept on the first line only.
			if curW > 0 || !started {
				pending += tok.text
				pendingW += tok.w
			}
			continue
		}
		if curW+pendingW+tok.w <= w {
			cur.WriteString(pending)
			cur.WriteString(tok.text)
			curW += pendingW + tok.w
			pending, pendingW = "", 0
			continue
		}

		if curW > 0 {
			emit()
		}
		pending, pendingW = "", 0

		text, tw := tok.text, tok.w
		for tw > w {
			head, hw, rest := splitAt(text, w)
			cur.WriteString(head)
			curW = hw
			emit()
			text, tw = rest, tw-hw
		}
		cur.WriteString(text)
		curW = tw
	}

	if curW > 0 || !started {
		emit()
	}
	return lines
}

// splitAt returns the longest prefix of s that fits in w columns, its width
// and the rest. The prefix holds at least one cluster so callers always make
// progress.
func splitAt(s string, w int) (string, int, string) {
	used, end := 0, 0
	for c, cw := range Clusters(s) {
		if used+cw > w && end > 0 {
			break
		}
		used += cw
		end += len(c)
		if used >= w {
			break
		}
	}
	return s[:end], used, s[end:]
}

func tokenize(s string) []token {
	var toks []token
	for c, cw := range Clusters(s) {
		r, _ := utf8.DecodeRuneInString(c)
		space := unicode.IsSpace(r) && r != '\u00a0'
		if n := len(toks); n > 0 && toks[n-1].space == space {
			toks[n-1].text += c
			toks[n-1].w += cw
			continue
		}
		toks = append(toks, token{text: c, w: cw, space: space})
	}
	return toks
}
