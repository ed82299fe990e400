package cssom

import (
	"sort"

	"github.com/npillmayer/boxflow/dom/style"
	"github.com/npillmayer/boxflow/maybe"
)

// Default display modes for HTML elements. Elements not listed here are
// inline, which is the CSS initial value for property "display".
var defaultDisplay = map[string]string{
	"html": "block", "body": "block", "div": "block", "p": "block",
	"h1": "block", "h2": "block", "h3": "block",
	"h4": "block", "h5": "block", "h6": "block",
	"section": "block", "article": "block", "aside": "block", "nav": "block",
	"header": "block", "footer": "block", "main": "block",
	"blockquote": "block", "pre": "block", "figure": "block", "hr": "block",
	"ul": "block", "ol": "block", "dl": "block", "dt": "block", "dd": "block",
	"li":    "list-item",
	"table": "table",
	//
	"head": "none", "script": "none", "style": "none",
	"title": "none", "meta": "none", "link": "none",
}

// UserDefaults returns a stylesheet of origin User, which sets the display
// mode of structural HTML elements. Elements like "head" or "script" get
// display mode "none".
//
// User-normal is the lowest cascade priority, so every author rule for
// "display" wins over these defaults.
func UserDefaults() *StyleSheet {
	sheet := NewStyleSheet(User)
	byMode := make(map[string][]SimpleSelector)
	var modes []string // keep rule order deterministic
	for _, tag := range sortedKeys(defaultDisplay) {
		mode := defaultDisplay[tag]
		if _, ok := byMode[mode]; !ok {
			modes = append(modes, mode)
		}
		byMode[mode] = append(byMode[mode], SimpleSelector{Tag: maybe.Just(tag)})
	}
	for _, mode := range modes {
		sheet.AddRule(NewRule(byMode[mode], Declaration{
			Name:  "display",
			Value: style.Keyword(mode),
		}))
	}
	tracer().Debugf("user default stylesheet has %d rules", len(sheet.Rules()))
	return sheet
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
