package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/boxflow/dom"
	"github.com/npillmayer/boxflow/dom/style"
	"github.com/npillmayer/boxflow/frame/boxtree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.engine")
	defer teardown()
	//
	cfg, err := LoadConfig(strings.NewReader(`
viewport:
  width: 1024
user-stylesheet: "p { color: blue }"
user-defaults: false
trace-level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, 1024.0, cfg.Viewport.Width)
	assert.Equal(t, float64(DefaultHeight), cfg.Viewport.Height)
	assert.False(t, cfg.WithUserDefaults())
	assert.Equal(t, "p { color: blue }", cfg.UserStylesheet)
	assert.Equal(t, "debug", cfg.TraceLevel)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 800.0, cfg.Viewport.Width)
	assert.True(t, cfg.WithUserDefaults())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("trace-level: chatty"))
	assert.True(t, errors.Is(err, ErrConfig))
	_, err = LoadConfig(strings.NewReader("viewport: [1, 2"))
	assert.Error(t, err)
}

var myhtml = `<!DOCTYPE html>
<html>
<head>
  <title>Test</title>
  <style>
    body { margin: 8px }
    div.box { width: 100px; height: 20px; margin-left: auto; margin-right: auto }
    p { color: red }
  </style>
</head>
<body>
  <div class="box"></div>
  <p>Hello <b>World</b></p>
</body>
</html>
`

func TestRenderHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.engine")
	defer teardown()
	//
	cfg := DefaultConfig()
	cfg.UserStylesheet = "p { color: blue !important }"
	root, err := RenderHTML(strings.NewReader(myhtml), cfg)
	require.NoError(t, err)
	t.Logf("box tree:\n%s", root.Dump())
	require.Equal(t, boxtree.BlockNode, root.Type)
	require.Equal(t, 1, root.ChildCount(), "<head> should not generate a box")
	body := root.ChildBoxes()[0]
	assert.Equal(t, 784.0, body.Dimensions.Content.Width)
	div := body.ChildBoxes()[0]
	assert.Equal(t, 100.0, div.Dimensions.Content.Width)
	assert.Equal(t, 342.0, div.Dimensions.Margin.Left)
	assert.Equal(t, 350.0, div.Dimensions.Content.X)
	p := body.ChildBoxes()[1]
	assert.Equal(t, 28.0, p.Dimensions.Content.Y)
	color := p.StyleNode().Styles().Lookup("color", "", nil)
	assert.Equal(t, style.Color{B: 0xff, A: 0xff}, color, "user-important wins")
}

func TestRenderRootDisplayNone(t *testing.T) {
	doc := dom.Elem("head", nil, dom.Elem("title", nil))
	_, err := Render(doc, nil, DefaultConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boxtree.ErrRootDisplayNone))
}

func TestRenderWithoutUserDefaults(t *testing.T) {
	cfg := DefaultConfig()
	off := false
	cfg.UserDefaults = &off
	root, err := Render(dom.Elem("div", nil, dom.Elem("div", nil)), nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, boxtree.InlineNode, root.Type, "without defaults every element is inline")
}

func TestRenderZeroConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.engine")
	defer teardown()
	//
	root, err := Render(dom.Elem("div", nil), nil, Config{})
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultWidth), root.Dimensions.Content.Width, "zero config uses default viewport")
	assert.Equal(t, tracing.LevelDebug, tracing.Select("boxflow.engine").GetTraceLevel(),
		"expected Render to leave trace level alone")
}

func TestRenderInvalidConfig(t *testing.T) {
	var cfg Config
	cfg.Viewport.Width = -1
	_, err := Render(dom.Elem("div", nil), nil, cfg)
	assert.True(t, errors.Is(err, ErrConfig))
}
