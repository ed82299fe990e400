/*
Package cssom provides functionality for CSS styling.

Overview

We strive to separate content from presentation. Presentation
is governed with CSS (Cascading Style Sheets). CSS uses a box model
which is well described here:

   https://developer.mozilla.org/en-US/docs/Learn/CSS/Introduction_to_CSS/Box_model

A good explanation of styling may be found in

   https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
We compromise on many features: selectors are simple selectors only
(tag, id and classes, no combinators), and the cascade knows two origins,
Author and User. Declarations are ranked (lowest to highest)

   User-normal < Author-normal < Author-important < User-important

with specificity and source order breaking ties within one origin.

Stylesheets are plain data. Parsing CSS text into a stylesheet is the job
of sub-package douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'boxflow.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.cssom")
}
