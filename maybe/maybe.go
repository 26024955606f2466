/*
Package maybe provides an option type for values which may or may not be set.

Style properties are optional field by field: a property which is not set
falls through to the next layer of the cascade. Maybe[T] is a plain value
type, so a struct of Maybe-fields is comparable and its zero value is
"nothing set".

	var w maybe.Maybe[float32]      // Nothing
	w = maybe.Just[float32](40)
	switch m := w.Match(); m {
	case m.Just(&x):
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

// Maybe is either Just(x) or Nothing.
type Maybe[T any] struct {
	value T
	set   bool
}

// Just wraps a value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, set: true}
}

// Nothing returns an unset option. It is identical to the zero value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust is true if a value is present.
func (m Maybe[T]) IsJust() bool {
	return m.set
}

// Get returns the value and a flag telling wether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.set
}

// WithDefault unwraps the value or returns def if nothing is set.
func (m Maybe[T]) WithDefault(def T) T {
	if m.set {
		return m.value
	}
	return def
}

// AssignTo overwrites *dst if a value is present and leaves it alone otherwise.
// It reports wether an assignment took place.
func (m Maybe[T]) AssignTo(dst *T) bool {
	if m.set {
		*dst = m.value
	}
	return m.set
}

// Or returns m if it is set, other otherwise. This is the "later layer wins"
// rule of overlaying optional values, read from the winning side.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.set {
		return m
	}
	return other
}

// Map applies f to a present value.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if x.set {
		return Just(f(x.value))
	}
	return Nothing[S]()
}

// AndThen chains computations which may produce nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Match starts a pattern match on m. See package documentation.
func (m Maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// Matcher is the pattern side of a match expression.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.set {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.set {
		return mm
	}
	return nil
}
