package tui

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/grindlemire/tuicore/internal/layout"
	"github.com/grindlemire/tuicore/internal/width"
)

// NodeID addresses a node in a Tree.
type NodeID int

// NoNode is returned where no node exists.
const NoNode NodeID = -1

// NodeKind identifies what a render node draws.
type NodeKind uint8

const (
	// KindBox is a container with optional border and background.
	KindBox NodeKind = iota
	// KindText is a leaf holding text.
	KindText
	// KindSpacer is an empty leaf that grows to take free space.
	KindSpacer
	// KindStatic holds content that is printed once into the scrollback
	// instead of the live viewport.
	KindStatic
	// KindFragment groups children without a box of its own. Its children
	// are laid out as children of the fragment's parent.
	KindFragment
)

func (k NodeKind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindText:
		return "text"
	case KindSpacer:
		return "spacer"
	case KindStatic:
		return "static"
	case KindFragment:
		return "fragment"
	default:
		return fmt.Sprintf("NodeKind(%d)", uint8(k))
	}
}

// TextMode controls how text wider than its box is handled.
type TextMode uint8

const (
	// TextWrap breaks lines at whitespace.
	TextWrap TextMode = iota
	// TextTruncate cuts each line and appends an ellipsis.
	TextTruncate
)

// TextAlign positions lines within the content box.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

const tabWidth = 4

type node struct {
	kind        NodeKind
	layout      layout.Style
	style       Style
	border      BorderStyle
	borderStyle Style
	text        string
	mode        TextMode
	align       TextAlign
	key         string
	children    []NodeID
}

// Tree is an append-only arena of render nodes built by a view function
// for one pass. Builders return the new node's id; children are given by
// id and must already exist. Nodes are never changed after their builder
// returns.
//
// Tree implements the layout engine's tree view, so its geometry can be
// computed directly.
type Tree struct {
	nodes []node
	caps  Capabilities
	flat  map[int][]int
}

// NewTree creates an empty tree for a pass with the given capabilities.
// Text is measured and mapped for exactly these capabilities.
func NewTree(caps Capabilities) *Tree {
	return &Tree{caps: caps}
}

// Caps returns the capability snapshot the tree was built for.
func (t *Tree) Caps() Capabilities {
	return t.caps
}

func (t *Tree) add(n node, opts []NodeOption) NodeID {
	for _, opt := range opts {
		opt(&n)
	}
	for _, ch := range n.children {
		if !t.valid(ch) {
			panic(fmt.Sprintf("tui: child %d does not exist in tree of %d nodes", ch, len(t.nodes)))
		}
	}
	t.nodes = append(t.nodes, n)
	t.flat = nil
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Box adds a container.
func (t *Tree) Box(opts ...NodeOption) NodeID {
	return t.add(node{kind: KindBox, layout: layout.DefaultStyle()}, opts)
}

// Text adds a text leaf. Escape sequences in s are removed and tabs are
// expanded. Without unicode support the text is transliterated to ASCII.
func (t *Tree) Text(s string, opts ...NodeOption) NodeID {
	return t.add(node{kind: KindText, layout: layout.DefaultStyle(), text: t.cleanText(s)}, opts)
}

// Spacer adds an empty leaf that grows to take free space.
func (t *Tree) Spacer(opts ...NodeOption) NodeID {
	s := layout.DefaultStyle()
	s.FlexGrow = 1
	return t.add(node{kind: KindSpacer, layout: s}, opts)
}

// Static adds a region whose children are printed once into the
// scrollback above the viewport. Children are appended to across passes
// and identified by position; key must be unique within the tree and
// stable across passes.
func (t *Tree) Static(key string, opts ...NodeOption) NodeID {
	s := layout.DefaultStyle()
	s.Direction = layout.Column
	return t.add(node{kind: KindStatic, layout: s, key: key}, opts)
}

// Fragment groups children without adding a box.
func (t *Tree) Fragment(children ...NodeID) NodeID {
	return t.add(node{kind: KindFragment, layout: layout.DefaultStyle()}, []NodeOption{Children(children...)})
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Kind returns the kind of id.
func (t *Tree) Kind(id NodeID) NodeKind {
	return t.nodes[id].kind
}

// ChildIDs returns the children of id as given to its builder, including
// fragments and static regions.
func (t *Tree) ChildIDs(id NodeID) []NodeID {
	return t.nodes[id].children
}

// Children returns the layout children of id: fragments are replaced by
// their own children and static regions are left out.
func (t *Tree) Children(id int) []int {
	if out, ok := t.flat[id]; ok {
		return out
	}
	var out []int
	t.flatten(&out, t.nodes[id].children)
	if t.flat == nil {
		t.flat = make(map[int][]int)
	}
	t.flat[id] = out
	return out
}

func (t *Tree) flatten(out *[]int, children []NodeID) {
	for _, ch := range children {
		switch t.nodes[ch].kind {
		case KindFragment:
			t.flatten(out, t.nodes[ch].children)
		case KindStatic:
		default:
			*out = append(*out, int(ch))
		}
	}
}

// Style returns the layout style of id.
func (t *Tree) Style(id int) layout.Style {
	return t.nodes[id].layout
}

// Measure returns the natural size of a text leaf when it may use at most
// maxWidth columns. Other leaves have no content size.
func (t *Tree) Measure(id int, maxWidth int) (int, int) {
	n := &t.nodes[id]
	if n.kind != KindText {
		return 0, 0
	}
	lines := t.lines(n, maxWidth)
	w := 0
	for _, l := range lines {
		w = max(w, width.String(l))
	}
	return w, len(lines)
}

// lines breaks the text of n for a box maxWidth columns wide. Measurement
// and painting both go through here so they always agree.
func (t *Tree) lines(n *node, maxWidth int) []string {
	if maxWidth < 1 {
		return nil
	}
	if n.mode == TextWrap {
		return width.Wrap(n.text, maxWidth)
	}
	tail := "…"
	if !t.caps.Unicode {
		tail = "..."
	}
	var out []string
	for line := range strings.SplitSeq(n.text, "\n") {
		out = append(out, width.Truncate(strings.TrimSuffix(line, "\r"), maxWidth, tail))
	}
	return out
}

// cleanText strips escape sequences and control characters, expands tabs
// and maps to ASCII when the terminal needs it.
func (t *Tree) cleanText(s string) string {
	s = ansi.Strip(s)
	var b strings.Builder
	b.Grow(len(s))
	col := 0
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteRune(r)
			col = 0
		case r == '\t':
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case r < 0x20 || r == 0x7f:
		default:
			b.WriteRune(r)
			col += width.Rune(r)
		}
	}
	s = b.String()
	if !t.caps.Unicode {
		s = width.ASCII(s)
	}
	return s
}

// Fingerprint returns a structural hash of the subtree at id: kind, styles,
// text and the fingerprints of its children. Equal subtrees built in
// different passes have equal fingerprints.
func (t *Tree) Fingerprint(id NodeID) uint64 {
	n := &t.nodes[id]
	h := fnv.New64a()
	var buf []byte
	buf = append(buf, byte(n.kind), byte(n.border), byte(n.mode), byte(n.align))
	buf = appendStyle(buf, n.style)
	buf = appendStyle(buf, n.borderStyle)
	buf = appendLayoutStyle(buf, n.layout)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(n.text)))
	buf = append(buf, n.text...)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(n.key)))
	buf = append(buf, n.key...)
	for _, ch := range n.children {
		buf = binary.LittleEndian.AppendUint64(buf, t.Fingerprint(ch))
	}
	h.Write(buf)
	return h.Sum64()
}

func appendStyle(buf []byte, s Style) []byte {
	return append(buf, byte(s.Fg.typ), s.Fg.r, s.Fg.g, s.Fg.b, byte(s.Bg.typ), s.Bg.r, s.Bg.g, s.Bg.b, byte(s.Attrs))
}

func appendLayoutStyle(buf []byte, s layout.Style) []byte {
	for _, v := range []layout.Value{
		s.Width, s.Height, s.MinWidth, s.MinHeight, s.MaxWidth, s.MaxHeight,
		s.Offset.Top, s.Offset.Right, s.Offset.Bottom, s.Offset.Left,
	} {
		buf = append(buf, byte(v.Unit))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v.Amount))
	}
	alignSelf := byte(0xff)
	if s.AlignSelf != nil {
		alignSelf = byte(*s.AlignSelf)
	}
	buf = append(buf, byte(s.Direction), byte(s.JustifyContent), byte(s.AlignItems), alignSelf,
		byte(s.Position), byte(s.Overflow), byte(s.Display))
	if s.Border {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(s.FlexGrow))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(s.FlexShrink))
	for _, n := range []int{
		s.Gap,
		s.Padding.Top, s.Padding.Right, s.Padding.Bottom, s.Padding.Left,
		s.Margin.Top, s.Margin.Right, s.Margin.Bottom, s.Margin.Left,
	} {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(n))
	}
	return buf
}
