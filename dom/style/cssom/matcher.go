package cssom

import (
	"github.com/npillmayer/boxflow/dom"
)

// Matches returns true if a simple selector matches an element. Present
// fields of the selector must all match, absent fields impose no restriction.
func Matches(e *dom.ElementData, sel SimpleSelector) bool {
	if e == nil {
		return false
	}
	if tag, ok := sel.Tag.Get(); ok && tag != e.TagName {
		return false
	}
	if id, ok := sel.ID.Get(); ok {
		if eid, ok := e.ID().Get(); !ok || eid != id {
			return false
		}
	}
	if len(sel.Classes) == 0 {
		return true
	}
	classes := e.Classes()
	for _, cl := range sel.Classes {
		if !classes.Contains(cl) {
			return false
		}
	}
	return true
}

// MatchRule checks if any selector of a rule matches an element. If so,
// it returns the specificity of the first matching selector. As selectors
// are kept sorted most-specific first, this is the highest specificity of
// all the matching selectors.
func MatchRule(e *dom.ElementData, r *Rule) (Specificity, bool) {
	for _, sel := range r.Selectors {
		if Matches(e, sel) {
			return sel.Specificity(), true
		}
	}
	return Specificity{}, false
}
