package config

// Option is a value that is either set or absent. Configuration stages only
// overwrite fields whose overlay value is set, which makes the precedence
// law a property of a pure merge instead of builder ordering accidents.
type Option[T any] struct {
	value T
	set   bool
}

// Some returns a set option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, set: true}
}

// IsSet reports whether the option holds a value.
func (o Option[T]) IsSet() bool { return o.set }

// Get returns the value and whether it was set.
func (o Option[T]) Get() (T, bool) { return o.value, o.set }

// Or returns the value when set, otherwise def.
func (o Option[T]) Or(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// pick returns overlay when set, otherwise base.
func pick[T any](base, overlay Option[T]) Option[T] {
	if overlay.set {
		return overlay
	}
	return base
}
