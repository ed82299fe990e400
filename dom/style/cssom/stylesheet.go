package cssom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/boxflow/dom/style"
	"github.com/npillmayer/boxflow/maybe"
)

// Origin is the origin of a stylesheet.
type Origin uint8

// Stylesheets originate either from the author of a document or from the user.
// We do not distinguish a user agent origin: default rules are supplied as a
// User stylesheet (see UserDefaults).
const (
	Author Origin = iota
	User
)

func (o Origin) String() string {
	if o == User {
		return "User"
	}
	return "Author"
}

// --- Specificity ------------------------------------------------------

// Specificity is the matching weight of a selector:
// (#ids, #classes, tag-name present ? 1 : 0).
// Specificities are compared lexicographically; higher wins.
type Specificity [3]int

// Compare returns -1, 0 or +1, depending on wether s is lower, equal or
// higher than other.
func (s Specificity) Compare(other Specificity) int {
	for i := 0; i < 3; i++ {
		if s[i] < other[i] {
			return -1
		} else if s[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Less is a predicate for s < other.
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}

// --- Selectors --------------------------------------------------------

// SimpleSelector is a selector consisting of an optional tag name, an
// optional id and a list of class names. All present fields must match.
// The universal selector '*' has all fields absent.
type SimpleSelector struct {
	Tag     maybe.Maybe[string]
	ID      maybe.Maybe[string]
	Classes []string
}

// Specificity returns the specificity of a simple selector.
func (sel SimpleSelector) Specificity() Specificity {
	var spec Specificity
	if !sel.ID.IsNothing() {
		spec[0] = 1
	}
	spec[1] = len(sel.Classes)
	if !sel.Tag.IsNothing() {
		spec[2] = 1
	}
	return spec
}

func (sel SimpleSelector) String() string {
	var b strings.Builder
	b.WriteString(sel.Tag.WithDefault(""))
	if id, ok := sel.ID.Get(); ok {
		b.WriteString("#" + id)
	}
	for _, cl := range sel.Classes {
		b.WriteString("." + cl)
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

// --- Rules and declarations -------------------------------------------

// Declaration is a single property declaration of a rule.
type Declaration struct {
	Name      string
	Value     style.Value
	Origin    Origin
	Important bool
}

func (d Declaration) String() string {
	imp := ""
	if d.Important {
		imp = " !important"
	}
	return fmt.Sprintf("%s: %s%s", d.Name, d.Value, imp)
}

// Rule is the type stylesheets consists of: a list of simple selectors and a
// list of declarations.
//
// Selectors are kept sorted most-specific first (see SortSelectors), so the
// first matching selector of a rule is the one with the highest specificity.
type Rule struct {
	Selectors    []SimpleSelector
	Declarations []Declaration
}

// NewRule creates a rule with its selectors sorted.
func NewRule(selectors []SimpleSelector, decls ...Declaration) *Rule {
	r := &Rule{Selectors: selectors, Declarations: decls}
	r.SortSelectors()
	return r
}

// SortSelectors orders the selectors of r by descending specificity.
// Selectors of equal specificity retain their order.
func (r *Rule) SortSelectors() {
	sort.SliceStable(r.Selectors, func(i, j int) bool {
		return r.Selectors[j].Specificity().Less(r.Selectors[i].Specificity())
	})
}

func (r *Rule) String() string {
	sels := make([]string, len(r.Selectors))
	for i, sel := range r.Selectors {
		sels[i] = sel.String()
	}
	decls := make([]string, len(r.Declarations))
	for i, d := range r.Declarations {
		decls[i] = d.String()
	}
	return strings.Join(sels, ", ") + " { " + strings.Join(decls, "; ") + " }"
}

// --- Stylesheets ------------------------------------------------------

// StyleSheet is an ordered list of rules, all having the same origin.
type StyleSheet struct {
	origin Origin
	rules  []*Rule
}

// NewStyleSheet creates an empty stylesheet for a given origin.
func NewStyleSheet(origin Origin) *StyleSheet {
	return &StyleSheet{origin: origin}
}

// Origin returns the origin of the stylesheet.
func (sheet *StyleSheet) Origin() Origin {
	return sheet.origin
}

// AddRule appends a rule to the stylesheet. Every declaration of the rule is
// stamped with the stylesheet's origin.
func (sheet *StyleSheet) AddRule(r *Rule) *StyleSheet {
	if r == nil {
		return sheet
	}
	for i := range r.Declarations {
		r.Declarations[i].Origin = sheet.origin
	}
	sheet.rules = append(sheet.rules, r)
	return sheet
}

// Empty returns true if the stylesheet contains no rules.
func (sheet *StyleSheet) Empty() bool {
	return sheet == nil || len(sheet.rules) == 0
}

// Rules returns all the rules of a stylesheet, in order.
func (sheet *StyleSheet) Rules() []*Rule {
	if sheet == nil {
		return nil
	}
	return sheet.rules
}

func (sheet *StyleSheet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "/* %s stylesheet */\n", sheet.origin)
	for _, r := range sheet.Rules() {
		b.WriteString(r.String())
		b.WriteString("\n")
	}
	return b.String()
}
