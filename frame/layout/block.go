package layout

import (
	"github.com/npillmayer/boxflow/dom/style"
	"github.com/npillmayer/boxflow/dom/style/css"
	"github.com/npillmayer/boxflow/frame/boxtree"
)

// Layout lays out a box tree against a containing block, usually
// boxtree.Viewport(…). The dimensions of all boxes are set in place.
func Layout(root *boxtree.Box, containingBlock boxtree.Dimensions) {
	if root == nil {
		return
	}
	tracer().Infof("layout of %s against %s", root, containingBlock.Content)
	layoutBox(root, containingBlock)
}

func layoutBox(box *boxtree.Box, cb boxtree.Dimensions) {
	if box.IsAnonymous() {
		layoutAnonymous(box, cb)
		return
	}
	layoutBlock(box, cb)
}

// layoutBlock is used for block boxes as well as for inline boxes.
func layoutBlock(box *boxtree.Box, cb boxtree.Dimensions) {
	box.Dimensions.Content.Height = 0
	calculateWidth(box, cb)
	calculatePosition(box, cb)
	layoutChildren(box)
	calculateHeight(box)
}

// Anonymous boxes have no style and no edges. They span the full width of
// the containing block, their height is the height of their children.
func layoutAnonymous(box *boxtree.Box, cb boxtree.Dimensions) {
	box.Dimensions = boxtree.Dimensions{
		Content: boxtree.Rect{
			X:     cb.Content.X,
			Y:     cb.Content.Y + cb.Content.Height,
			Width: cb.Content.Width,
		},
	}
	layoutChildren(box)
}

func layoutChildren(box *boxtree.Box) {
	for _, ch := range box.ChildBoxes() {
		layoutBox(ch, box.Dimensions)
		box.Dimensions.Content.Height += ch.Dimensions.MarginBox().Height
	}
}

// --- Width ------------------------------------------------------------

func calculateWidth(box *boxtree.Box, cb boxtree.Dimensions) {
	pmap := box.StyleNode().Styles()
	width := css.DimenFromValue(pmap.Lookup("width", "", style.Auto))
	marginLeft := css.DimenFromValue(pmap.Lookup("margin-left", "margin", style.Zero))
	marginRight := css.DimenFromValue(pmap.Lookup("margin-right", "margin", style.Zero))
	edges := horizontalEdges{
		borderLeft:   style.ToPx(pmap.Lookup("border-left-width", "border-width", style.Zero)),
		borderRight:  style.ToPx(pmap.Lookup("border-right-width", "border-width", style.Zero)),
		paddingLeft:  style.ToPx(pmap.Lookup("padding-left", "padding", style.Zero)),
		paddingRight: style.ToPx(pmap.Lookup("padding-right", "padding", style.Zero)),
	}
	w, ml, mr := solveWidth(cb.Content.Width, width, marginLeft, marginRight, edges)
	d := &box.Dimensions
	d.Content.Width = w
	d.Margin.Left, d.Margin.Right = ml, mr
	d.Border.Left, d.Border.Right = edges.borderLeft, edges.borderRight
	d.Padding.Left, d.Padding.Right = edges.paddingLeft, edges.paddingRight
}

type horizontalEdges struct {
	borderLeft, borderRight   float64
	paddingLeft, paddingRight float64
}

func (e horizontalEdges) sum() float64 {
	return e.borderLeft + e.borderRight + e.paddingLeft + e.paddingRight
}

// solveWidth resolves the horizontal constraint of CSS 2.1 §10.3.3:
//
//    margin-left + border-left + padding-left + width +
//    padding-right + border-right + margin-right = containing width
//
// It returns the used values for width, margin-left and margin-right.
func solveWidth(cbWidth float64, width, marginLeft, marginRight css.DimenT,
	edges horizontalEdges) (float64, float64, float64) {
	//
	total := width.Px() + marginLeft.Px() + marginRight.Px() + edges.sum()
	if !width.IsAuto() && total > cbWidth {
		if marginLeft.IsAuto() {
			marginLeft = css.Just(0)
		}
		if marginRight.IsAuto() {
			marginRight = css.Just(0)
		}
	}
	underflow := cbWidth - total
	tracer().Debugf("solving width %s in %gpx: %s margins, underflow %g", width, cbWidth,
		marginKind(marginLeft, marginRight), underflow)
	var w, ml, mr float64
	switch m := width.Match(); m {
	case m.Just(&w):
		switch {
		case !marginLeft.IsAuto() && !marginRight.IsAuto():
			// over-constrained: adjust margin-right
			ml, mr = marginLeft.Px(), marginRight.Px()+underflow
		case !marginLeft.IsAuto():
			ml, mr = marginLeft.Px(), underflow
		case !marginRight.IsAuto():
			ml, mr = underflow, marginRight.Px()
		default:
			ml, mr = underflow/2, underflow/2
		}
		tracer().Debugf("width %gpx, margins %g / %g", w, ml, mr)
	default: // width auto: other auto values become 0
		ml, mr = marginLeft.Px(), marginRight.Px()
		if underflow >= 0 {
			w = underflow
		} else {
			mr += underflow
		}
		tracer().Debugf("width auto => %gpx, margins %g / %g", w, ml, mr)
	}
	return w, ml, mr
}

var marginPatterns = css.DimenPatterns[string]{Auto: "auto", Just: "fixed", Default: "?"}

// marginKind describes the combination of horizontal margins, e.g.
// "auto/fixed".
func marginKind(left, right css.DimenT) string {
	return css.DimenPattern[string](left).OneOf(marginPatterns) + "/" +
		css.DimenPattern[string](right).OneOf(marginPatterns)
}

// --- Position and height ----------------------------------------------

func calculatePosition(box *boxtree.Box, cb boxtree.Dimensions) {
	pmap := box.StyleNode().Styles()
	d := &box.Dimensions
	d.Margin.Top = style.ToPx(pmap.Lookup("margin-top", "margin", style.Zero))
	d.Margin.Bottom = style.ToPx(pmap.Lookup("margin-bottom", "margin", style.Zero))
	d.Border.Top = style.ToPx(pmap.Lookup("border-top-width", "border-width", style.Zero))
	d.Border.Bottom = style.ToPx(pmap.Lookup("border-bottom-width", "border-width", style.Zero))
	d.Padding.Top = style.ToPx(pmap.Lookup("padding-top", "padding", style.Zero))
	d.Padding.Bottom = style.ToPx(pmap.Lookup("padding-bottom", "padding", style.Zero))
	d.Content.X = cb.Content.X + d.Margin.Left + d.Border.Left + d.Padding.Left
	// position below all previous boxes in the containing block
	d.Content.Y = cb.Content.Y + cb.Content.Height + d.Margin.Top + d.Border.Top + d.Padding.Top
}

// calculateHeight overrides the height rolled up from the children, if
// property 'height' is set to an explicit length in px.
func calculateHeight(box *boxtree.Box) {
	v, ok := box.StyleNode().Styles().Value("height")
	if !ok {
		return
	}
	if l, isLength := v.(style.Length); isLength && l.Unit == style.Px {
		box.Dimensions.Content.Height = l.Amount
	}
}
