package css

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/npillmayer/boxflow/dom/style"
)

// DisplayMode is a type for CSS property "display".
//
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	FlowRootMode    DisplayMode = 0x0010 // CSS flow-root display property
	ListItemMode    DisplayMode = 0x0020 // CSS list-item display
	TableMode       DisplayMode = 0x0100 // CSS table display property (inner or outer)
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, FlowRootMode, ListItemMode,
	TableMode, InnerBlockMode, InnerInlineMode,
}

var displayModeNames = map[DisplayMode]string{
	NoMode:          "NoMode",
	DisplayNone:     "DisplayNone",
	BlockMode:       "BlockMode",
	InlineMode:      "InlineMode",
	FlowRootMode:    "FlowRootMode",
	ListItemMode:    "ListItemMode",
	TableMode:       "TableMode",
	InnerBlockMode:  "InnerBlockMode",
	InnerInlineMode: "InnerInlineMode",
}

func (disp DisplayMode) String() string {
	if s, ok := displayModeNames[disp]; ok {
		return s
	}
	return disp.FullString()
}

// Outer returns outer mode
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// IsBlockLevel return true if it has outer display level of BlockMode.
//
// A block-level element is defined as (from the spec):
// Block-level elements are those elements of the source document that are formatted visually
// as blocks (e.g., paragraphs). The following values of the 'display' property make an element
// block-level: 'block', 'list-item', and 'table'.
//
func (disp DisplayMode) IsBlockLevel() bool {
	return disp&0x000f == BlockMode
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var b bytes.Buffer
	first := true
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(displayModeNames[m])
		}
	}
	return b.String()
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	if disp == NoMode {
		return "–"
	} else if disp.Contains(DisplayNone) {
		return "∅"
	} else if disp.Contains(ListItemMode) {
		return "▣"
	} else if disp.Contains(TableMode) {
		return "▥"
	} else if disp.Contains(BlockMode) || disp.Contains(InnerBlockMode) {
		return "▩"
	} else if disp.Contains(InlineMode) || disp.Contains(InnerInlineMode) {
		return "►"
	}
	return "?"
}

// ParseDisplay returns mode flags from a display property string (outer and inner).
// An empty string yields NoMode. Unknown display values yield InlineMode,
// together with an error.
func ParseDisplay(display string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(display)) {
	case "":
		return NoMode, nil
	case "none":
		return DisplayNone, nil
	case "block":
		return BlockMode | InnerBlockMode, nil
	case "inline":
		return InlineMode | InnerInlineMode, nil
	case "list-item":
		return ListItemMode | BlockMode, nil
	case "flow-root":
		return FlowRootMode | BlockMode, nil
	case "inline-block":
		return InlineMode | InnerBlockMode, nil
	case "table":
		return BlockMode | TableMode, nil
	case "inline-table":
		return InlineMode | TableMode, nil
	}
	return InlineMode, fmt.Errorf("unknown display mode: %s", display)
}

// DisplayOf returns the outer display mode of a node styled by pmap. The
// result is one of BlockMode, InlineMode and DisplayNone. If property
// "display" is unset or not understood, elements are inline.
func DisplayOf(pmap *style.PropertyMap) DisplayMode {
	v, ok := pmap.Value("display")
	if !ok {
		return InlineMode
	}
	kw, ok := v.(style.Keyword)
	if !ok {
		tracer().Debugf("display: not a keyword: %s, using inline", v)
		return InlineMode
	}
	mode, err := ParseDisplay(string(kw))
	if err != nil {
		tracer().Debugf("display: %v, using inline", err)
		return InlineMode
	}
	switch {
	case mode.Contains(DisplayNone):
		return DisplayNone
	case mode.IsBlockLevel():
		return BlockMode
	}
	return InlineMode
}
