package radio

import "reflect"

// Callback is a handler registered on an event, a request or a command.
// Callbacks are compared by pointer: keep the value returned by Func, Do or
// Method around to remove it later.
type Callback struct {
	fn func(this any, args []any) any

	// original is the *Callback wrapped by a once handler, or the flat value
	// served by a constant reply. Removal by callback matches it too.
	original any

	// fired and result implement the once gate.
	fired  bool
	result any
}

// Func returns a Callback that ignores its bound context.
func Func(fn func(args ...any) any) *Callback {
	return &Callback{fn: func(_ any, args []any) any { return fn(args...) }}
}

// Do returns a Callback for handlers that produce no value, typically events
// and commands.
func Do(fn func(args ...any)) *Callback {
	return &Callback{fn: func(_ any, args []any) any {
		fn(args...)
		return nil
	}}
}

// Method returns a Callback that receives the context it was registered
// with, or the owner of the registry when none was given.
func Method(fn func(this any, args ...any) any) *Callback {
	return &Callback{fn: func(this any, args []any) any { return fn(this, args...) }}
}

// Call invokes the callback with this as its bound context.
func (c *Callback) Call(this any, args ...any) any {
	return c.fn(this, args)
}

// Original returns the callback or value this one wraps, if any.
func (c *Callback) Original() any {
	return c.original
}

// toCallback converts the callable shapes accepted by the public API.
// Plain funcs get a fresh Callback each time, so they can't be removed by
// callback afterwards.
func toCallback(v any) (*Callback, bool) {
	switch fn := v.(type) {
	case *Callback:
		return fn, fn != nil
	case func(args ...any) any:
		return Func(fn), fn != nil
	case func(args ...any):
		return Do(fn), fn != nil
	case func(this any, args ...any) any:
		return Method(fn), fn != nil
	case func():
		if fn == nil {
			return nil, false
		}
		return Do(func(...any) { fn() }), true
	}
	return nil, false
}

// makeCallback passes callables through and turns anything else into a
// callback that always returns that value.
func makeCallback(v any) *Callback {
	if cb, ok := toCallback(v); ok {
		return cb
	}
	return &Callback{
		fn:       func(any, []any) any { return v },
		original: v,
	}
}

// onceWrap returns a callback that runs off with itself and then cb, at most
// once. Later or reentrant calls return the first result.
func onceWrap(cb *Callback, off func(wrapper *Callback)) *Callback {
	wrapper := &Callback{original: cb}
	wrapper.fn = func(this any, args []any) any {
		if wrapper.fired {
			return wrapper.result
		}
		wrapper.fired = true
		off(wrapper)
		wrapper.result = cb.fn(this, args)
		return wrapper.result
	}
	return wrapper
}

// matchesCallback reports whether a stored callback is the target itself or
// the thing the stored callback wraps. A nil target matches everything.
func matchesCallback(stored *Callback, target any) bool {
	if target == nil {
		return true
	}
	if stored == nil {
		return false
	}
	if t, ok := target.(*Callback); ok {
		if stored == t {
			return true
		}
		if orig, ok := stored.original.(*Callback); ok {
			return orig == t
		}
		return false
	}
	if orig, ok := stored.original.(*Callback); ok {
		return sameValue(orig.original, target)
	}
	return sameValue(stored.original, target)
}

// matchesContext reports whether a stored context equals target. A nil target
// matches everything.
func matchesContext(stored, target any) bool {
	if target == nil {
		return true
	}
	return sameValue(stored, target)
}

// sameValue is == that never panics on uncomparable dynamic types,
// including comparable structs whose interface fields hold slices or maps.
func sameValue(a, b any) (equal bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}
