/*
Package engine runs the rendering pipeline: styling, box tree construction
and block layout.

Clients either provide a document tree and stylesheets to Render, or an HTML
document to RenderHTML. The pipeline is configured with a Config, which may
be read from YAML:

    viewport:
      width: 800
      height: 600
    user-stylesheet: |
      p { color: blue }
    user-defaults: true
    trace-level: info

The result is the root of a laid out box tree, ready for painting.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.engine'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.engine")
}
