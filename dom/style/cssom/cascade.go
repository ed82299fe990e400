package cssom

import (
	"sort"

	"github.com/npillmayer/boxflow/dom"
	"github.com/npillmayer/boxflow/dom/style"
)

// matchedRule is a rule which matched an element, together with the
// specificity of the matching selector.
type matchedRule struct {
	specificity Specificity
	origin      Origin
	rule        *Rule
}

// priority ranks declarations for the cascade, lowest first.
type priority int

const (
	userNormal priority = iota
	authorNormal
	authorImportant
	userImportant
)

func cascadePriority(d Declaration) priority {
	switch {
	case d.Origin == User && d.Important:
		return userImportant
	case d.Origin == Author && d.Important:
		return authorImportant
	case d.Origin == Author:
		return authorNormal
	}
	return userNormal
}

// SpecifiedValues computes the property map for an element. It collects all
// the rules of all the stylesheets matching e and applies their
// declarations in cascade order, i.e. a declaration with higher cascade
// priority overrides one with lower priority. Finally, properties which are
// inherited by default are copied from parent, if e does not specify them.
//
// parent may be nil (for the root element). SpecifiedValues never fails.
func SpecifiedValues(e *dom.ElementData, sheets []*StyleSheet, parent *style.PropertyMap) *style.PropertyMap {
	var author, user []matchedRule
	for _, sheet := range sheets {
		for _, r := range sheet.Rules() {
			spec, ok := MatchRule(e, r)
			if !ok {
				continue
			}
			m := matchedRule{specificity: spec, origin: sheet.Origin(), rule: r}
			if m.origin == User {
				user = append(user, m)
			} else {
				author = append(author, m)
			}
		}
	}
	matched := append(author, user...)
	if e != nil {
		tracer().Debugf("%d rules match <%s>", len(matched), e.TagName)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].origin != matched[j].origin {
			return matched[i].origin == User
		}
		return matched[i].specificity.Less(matched[j].specificity)
	})
	var decls []Declaration
	for _, m := range matched {
		decls = append(decls, m.rule.Declarations...)
	}
	sort.SliceStable(decls, func(i, j int) bool {
		return cascadePriority(decls[i]) < cascadePriority(decls[j])
	})
	pmap := style.NewPropertyMap()
	for _, d := range decls {
		pmap.Set(d.Name, d.Value)
	}
	pmap.InheritFrom(parent)
	return pmap
}
