package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'boxflow.style'
func tracer() tracing.Trace {
	return tracing.Select("boxflow.style")
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Value
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map is the entity styling a DOM node: a styled node links to a
// property map, which contains the winning value for every property set by
// the cascade or by inheritance.
//
// Property maps are filled once, while building the styled tree, and are
// treated as read-only afterwards.
type PropertyMap struct {
	m map[string]Value // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]Value)}
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, kv := range pmap.Properties() {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", kv.Key, kv.Value)
	}
	b.WriteString("}")
	return b.String()
}

// Size returns the number of properties.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Value returns a style property value, together with an indicator
// wether it has been found in the properties map.
// No cascading or inheritance is performed.
func (pmap *PropertyMap) Value(key string) (Value, bool) {
	if pmap == nil {
		return nil, false
	}
	v, ok := pmap.m[key]
	return v, ok
}

// IsSet is a predicated wether a property is set within this map.
func (pmap *PropertyMap) IsSet(key string) bool {
	_, ok := pmap.Value(key)
	return ok
}

// Lookup returns the value for a longhand property key. If it isn't set,
// the value of the shorthand property is returned. If neither is set,
// Lookup returns def. Example:
//
//    pmap.Lookup("margin-left", "margin", style.Zero)
//
func (pmap *PropertyMap) Lookup(longhand, shorthand string, def Value) Value {
	if v, ok := pmap.Value(longhand); ok {
		return v
	}
	if v, ok := pmap.Value(shorthand); ok {
		return v
	}
	return def
}

// Set sets a property's value. Overwrites an existing value, if present.
// Calling Set on a nil map panics.
func (pmap *PropertyMap) Set(key string, v Value) {
	if pmap.m == nil {
		pmap.m = make(map[string]Value)
	}
	pmap.m[key] = v
}

// Properties returns all properties of a map, sorted by key.
func (pmap *PropertyMap) Properties() []KeyValue {
	if pmap == nil {
		return nil
	}
	r := make([]KeyValue, 0, len(pmap.m))
	for k, v := range pmap.m {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// Group returns all properties of a map belonging to a property group,
// sorted by key. See GroupNameFromPropertyKey.
func (pmap *PropertyMap) Group(groupname string) []KeyValue {
	var r []KeyValue
	for _, kv := range pmap.Properties() {
		if GroupNameFromPropertyKey(kv.Key) == groupname {
			r = append(r, kv)
		}
	}
	return r
}

// InheritFrom copies every inheritable property of parent which is not set
// in pmap. Non-inheritable properties are never copied.
func (pmap *PropertyMap) InheritFrom(parent *PropertyMap) {
	if parent == nil {
		return
	}
	for k, v := range parent.m {
		if _, isSet := pmap.m[k]; !isSet && IsInherited(k) {
			pmap.Set(k, v)
		}
	}
}

// --- Inheritance ------------------------------------------------------

// inherited is the fixed set of property keys which inherit by default.
// It is read-only after package initialization.
var inherited = func() map[string]struct{} {
	keys := []string{
		"color", "cursor", "direction",
		"font", "font-family", "font-size", "font-style", "font-variant", "font-weight",
		"letter-spacing", "line-height",
		"list-style", "list-style-image", "list-style-position", "list-style-type",
		"quotes",
		"text-align", "text-indent", "text-transform",
		"visibility", "white-space",
		"word-break", "word-spacing", "word-wrap",
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}()

// IsInherited returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a child without its own value will take on
// its parent's value.
func IsInherited(key string) bool {
	_, ok := inherited[key]
	return ok
}

// --- CSS Property Groups ----------------------------------------------

// Symbolic names for string literals, denoting property groups.
// CSS knows a whole lot of properties. We split them up into organisatorial
// groups, mainly for debugging output.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin":              PGMargins, // Margins
	"margin-top":          PGMargins,
	"margin-left":         PGMargins,
	"margin-right":        PGMargins,
	"margin-bottom":       PGMargins,
	"padding":             PGPadding, // Padding
	"padding-top":         PGPadding,
	"padding-left":        PGPadding,
	"padding-right":       PGPadding,
	"padding-bottom":      PGPadding,
	"border-color":        PGBorder, // Border
	"border-width":        PGBorder,
	"border-top-width":    PGBorder,
	"border-left-width":   PGBorder,
	"border-right-width":  PGBorder,
	"border-bottom-width": PGBorder,
	"width":               PGDimension, // Dimension
	"height":              PGDimension,
	"display":             PGDisplay, // Display
	"visibility":          PGDisplay,
	"color":               PGColor, // Color
	"background":          PGColor,
	"background-color":    PGColor,
	"direction":           PGText, // Text
	"line-height":         PGText,
	"white-space":         PGText,
	"word-spacing":        PGText,
	"letter-spacing":      PGText,
	"word-break":          PGText,
	"word-wrap":           PGText,
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Font and text properties not listed explicitly fall into group "Text".
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	if groupname, found := groupNameFromPropertyKey[key]; found {
		return groupname
	}
	if strings.HasPrefix(key, "font") || strings.HasPrefix(key, "text-") {
		return PGText
	}
	return PGX
}

// --- Compound properties ----------------------------------------------

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompoundProperty("padding", "3px 5px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "5px"
//    "padding-bottom" => "3px"
//    "padding-left  " => "5px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value string) ([]KeyValue, error) {
	fields := strings.Fields(value)
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fields)
	case "padding":
		return feazeCompound4("padding", "", fields)
	case "border-color":
		return feazeCompound4("border", "color", fields)
	case "border-width":
		return feazeCompound4("border", "width", fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", p(pre, suf, ""))
	}
	// index of the field to use for top, right, bottom, left
	var pick [4]int
	switch l {
	case 1:
		pick = [4]int{0, 0, 0, 0}
	case 2:
		pick = [4]int{0, 1, 0, 1}
	case 3:
		pick = [4]int{0, 1, 2, 1}
	case 4:
		pick = [4]int{0, 1, 2, 3}
	}
	r := make([]KeyValue, 4)
	for i, dir := range fourDirs {
		v, err := ParseValue(fields[pick[i]])
		if err != nil {
			return nil, err
		}
		r[i] = KeyValue{p(pre, suf, dir), v}
	}
	tracer().Debugf("split %s into %d longhands", p(pre, suf, ""), len(r))
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

func p(prefix string, suffix string, tag string) string {
	if tag == "" {
		if suffix == "" {
			return prefix
		}
		return prefix + "-" + suffix
	}
	if suffix == "" {
		return prefix + "-" + tag
	}
	return prefix + "-" + tag + "-" + suffix
}
