/*
Package maybe implements an option type.

We use it wherever a piece of styling data is genuinely optional, e.g. the
id of an element or the tag name of a CSS selector. An empty string would
do in most of these cases, but would blur the difference between “absent”
and “present, but empty”.

Matching follows the switch idiom used throughout this module:

    var id string
    switch m := e.ID().Match(); m {
    case m.Just(&id):
        …
    case m.Nothing():
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe is either Just a value or Nothing. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing returns an empty option.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsNothing is a predicate for an empty option.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// Get unwraps the value, together with a flag telling if there was one.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

// WithDefault unwraps the value or returns def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Map applies f to a Just value. Nothing maps to Nothing.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which itself may produce Nothing.
func AndThen[T, S any](x Maybe[T], f func(T) Maybe[S]) Maybe[S] {
	if x.just {
		return f(x.value)
	}
	return Nothing[S]()
}

func (m Maybe[T]) String() string {
	if m.just {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// --- Matching --------------------------------------------------------------

// Match starts a pattern match on m. See package documentation.
func (m Maybe[T]) Match() *Matcher[T] {
	return &Matcher[T]{m: m}
}

// Matcher is the intermediate object of a pattern match. Case-functions
// return the matcher itself on success and nil otherwise.
type Matcher[T any] struct {
	m Maybe[T]
}

// Just matches a present value and stores it in v (if v is non-nil).
func (mm *Matcher[T]) Just(v *T) *Matcher[T] {
	if mm.m.just {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

// Nothing matches an absent value.
func (mm *Matcher[T]) Nothing() *Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
