package style_test

import (
	"testing"

	"github.com/npillmayer/boxflow/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	cases := []struct {
		in  string
		out style.Value
	}{
		{"12px", style.Pixels(12)},
		{"-3.5px", style.Pixels(-3.5)},
		{"0", style.Pixels(0)},
		{"1.5em", style.Length{Amount: 1.5, Unit: style.Em}},
		{"2rem", style.Length{Amount: 2, Unit: style.Rem}},
		{"AUTO", style.Auto},
		{"block", style.Keyword("block")},
		{"system", style.Keyword("system")},
		{"#ff0000", style.Color{R: 0xff, A: 0xff}},
		{"#0f08", style.Color{G: 0xff, A: 0x88}},
		{"red", style.Color{R: 0xff, A: 0xff}},
		{"transparent", style.Color{}},
	}
	for _, c := range cases {
		v, err := style.ParseValue(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.out, v, "parsing %q", c.in)
	}
	_, err := style.ParseValue("#12345")
	assert.Error(t, err)
	_, err = style.ParseValue("1.2.3px")
	assert.Error(t, err)
	_, err = style.ParseValue("  ")
	assert.Error(t, err)
}

func TestToPx(t *testing.T) {
	assert.Equal(t, 12.0, style.ToPx(style.Pixels(12)))
	assert.Equal(t, 0.0, style.ToPx(style.Length{Amount: 2, Unit: style.Em}))
	assert.Equal(t, 0.0, style.ToPx(style.Length{Amount: 2, Unit: style.Rem}))
	assert.Equal(t, 0.0, style.ToPx(style.Auto))
	assert.Equal(t, 0.0, style.ToPx(style.Color{R: 1}))
	assert.Equal(t, 0.0, style.ToPx(nil))
	assert.True(t, style.IsAuto(style.Keyword("auto")))
	assert.False(t, style.IsAuto(style.Pixels(0)))
}

func TestPropertyMapLookup(t *testing.T) {
	pmap := style.NewPropertyMap()
	pmap.Set("margin", style.Pixels(10))
	pmap.Set("margin-left", style.Auto)
	assert.Equal(t, style.Auto, pmap.Lookup("margin-left", "margin", style.Zero))
	assert.Equal(t, style.Pixels(10), pmap.Lookup("margin-right", "margin", style.Zero))
	assert.Equal(t, style.Zero, pmap.Lookup("padding-left", "padding", style.Zero))
	t.Logf("pmap = %s", pmap)
}

func TestNilPropertyMap(t *testing.T) {
	var pmap *style.PropertyMap
	assert.Equal(t, 0, pmap.Size())
	assert.False(t, pmap.IsSet("color"))
	assert.Equal(t, style.Zero, pmap.Lookup("width", "", style.Zero))
	assert.Empty(t, pmap.Properties())
}

func TestInheritFrom(t *testing.T) {
	parent := style.NewPropertyMap()
	parent.Set("color", style.Color{B: 0xff, A: 0xff})
	parent.Set("font-size", style.Pixels(14))
	parent.Set("width", style.Pixels(100)) // not inherited
	child := style.NewPropertyMap()
	child.Set("font-size", style.Pixels(20))
	child.InheritFrom(parent)
	assert.Equal(t, style.Color{B: 0xff, A: 0xff}, child.Lookup("color", "", nil))
	assert.Equal(t, style.Pixels(20), child.Lookup("font-size", "", nil))
	assert.False(t, child.IsSet("width"))
	child.InheritFrom(nil)
	assert.Equal(t, 2, child.Size())
}

func TestIsInherited(t *testing.T) {
	for _, k := range []string{"color", "font-family", "line-height", "white-space", "text-align"} {
		assert.True(t, style.IsInherited(k), k)
	}
	for _, k := range []string{"width", "margin-left", "display", "background", "border-width"} {
		assert.False(t, style.IsInherited(k), k)
	}
}

func TestGroups(t *testing.T) {
	assert.Equal(t, style.PGMargins, style.GroupNameFromPropertyKey("margin-top"))
	assert.Equal(t, style.PGText, style.GroupNameFromPropertyKey("font-weight"))
	assert.Equal(t, style.PGX, style.GroupNameFromPropertyKey("funny-margin"))
	pmap := style.NewPropertyMap()
	pmap.Set("margin-top", style.Pixels(1))
	pmap.Set("margin-left", style.Pixels(2))
	pmap.Set("color", style.Color{})
	g := pmap.Group(style.PGMargins)
	require.Len(t, g, 2)
	assert.Equal(t, "margin-left", g[0].Key)
}

func TestSplitCompoundProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	kv, err := style.SplitCompoundProperty("padding", "3px 5px")
	require.NoError(t, err)
	assert.Equal(t, []style.KeyValue{
		{"padding-top", style.Pixels(3)},
		{"padding-right", style.Pixels(5)},
		{"padding-bottom", style.Pixels(3)},
		{"padding-left", style.Pixels(5)},
	}, kv)
	kv, err = style.SplitCompoundProperty("margin", "1px auto 2px")
	require.NoError(t, err)
	assert.Equal(t, style.Auto, kv[1].Value)
	assert.Equal(t, style.Auto, kv[3].Value)
	assert.Equal(t, style.Pixels(2), kv[2].Value)
	kv, err = style.SplitCompoundProperty("border-width", "1px 2px 3px 4px")
	require.NoError(t, err)
	assert.Equal(t, "border-left-width", kv[3].Key)
	_, err = style.SplitCompoundProperty("border-width", "1px 2px 3px 4px 5px")
	assert.Error(t, err)
	_, err = style.SplitCompoundProperty("font", "12px serif")
	assert.Error(t, err)
}
