package radio

import (
	"sort"

	"github.com/google/uuid"
)

// allEvents is the reserved name whose handlers see every triggered event,
// with the event name prepended to the arguments.
const allEvents = "all"

// Events maps event names to ordered handler lists. Its zero value is ready
// to use, and it can be embedded to give any struct its own event channel:
//
//	type View struct {
//		radio.Events
//	}
//
//	v := &View{}
//	v.On("render", radio.Do(func(args ...any) { ... }), nil)
//	v.Trigger("render")
//
// Dispatch is synchronous and reentrant: handlers may register, remove and
// trigger while they run. Events is not safe for concurrent use.
type Events struct {
	owner    any
	listenID string

	events map[string][]*handler

	// listeners holds the records of objects listening to this one, keyed by
	// listener id. listeningTo holds the records of objects this one listens
	// to, keyed by listenee id.
	listeners   map[string]*listening
	listeningTo map[string]*listening
}

type handler struct {
	callback *Callback
	context  any
	ctx      any
	listener *listening
	removed  bool
}

// NewEvents returns an Events whose handlers run bound to owner when they
// were registered without a context.
func NewEvents(owner any) *Events {
	return &Events{owner: owner}
}

func (e *Events) eventsRegistry() *Events { return e }

func (e *Events) self() any {
	if e.owner != nil {
		return e.owner
	}
	return e
}

func (e *Events) id() string {
	if e.listenID == "" {
		e.listenID = uuid.NewString()
	}
	return e.listenID
}

// On binds callback to name. Passing "all" binds it to every event.
func (e *Events) On(name, callback, context any) *Events {
	for _, ea := range resolveNames(name, callback, context, nil) {
		cb, ok := toCallback(ea.callback)
		if !ok || ea.name == "" {
			continue
		}
		e.onAPI(ea.name, cb, ea.context, e.self(), nil)
	}
	return e
}

// Once binds callback so that it fires a single time per event name. With
// several names each one is consumed independently.
func (e *Events) Once(name, callback, context any) *Events {
	for _, ea := range resolveNames(name, callback, context, nil) {
		cb, ok := toCallback(ea.callback)
		if !ok || ea.name == "" {
			continue
		}
		wrapper := onceWrap(cb, func(w *Callback) {
			e.Off(ea.name, w, nil)
		})
		e.onAPI(ea.name, wrapper, ea.context, e.self(), nil)
	}
	return e
}

// Off removes handlers matching every non-nil argument. With all three nil
// it removes every handler and drops the bookkeeping of objects listening
// to this one.
func (e *Events) Off(name, callback, context any) *Events {
	if e.events == nil {
		return e
	}

	if isEmptyName(name) && callback == nil && context == nil {
		for _, handlers := range e.events {
			for _, h := range handlers {
				h.removed = true
			}
		}
		e.events = nil
		for _, id := range sortedListeningKeys(e.listeners) {
			e.listeners[id].cleanup()
		}
		return e
	}

	for _, ea := range resolveNames(name, callback, context, nil) {
		e.offAPI(ea)
	}
	return e
}

// Trigger fires every handler bound to name with args, then every "all"
// handler with the name prepended. A map name triggers each key with its
// value as the only argument.
//
// The "all" list is copied before dispatch. The list for name is not:
// a handler removed while the event is being dispatched is skipped if it
// has not run yet.
func (e *Events) Trigger(name any, args ...any) *Events {
	if e.events == nil {
		return e
	}

	if _, ok := asNameMap(name); ok {
		for _, ea := range resolveNames(name, nil, nil, nil) {
			e.triggerAPI(ea.name, []any{ea.callback})
		}
		return e
	}

	for _, ea := range resolveNames(name, nil, nil, nil) {
		if ea.name == "" {
			continue
		}
		e.triggerAPI(ea.name, args)
	}
	return e
}

// ListenerCounts returns how many handlers are bound per event name.
func (e *Events) ListenerCounts() map[string]int {
	counts := make(map[string]int, len(e.events))
	for name, handlers := range e.events {
		counts[name] = len(handlers)
	}
	return counts
}

func (e *Events) onAPI(name string, cb *Callback, context, fallback any, l *listening) {
	if e.events == nil {
		e.events = make(map[string][]*handler)
	}
	ctx := context
	if ctx == nil {
		ctx = fallback
	}
	e.events[name] = append(e.events[name], &handler{
		callback: cb,
		context:  context,
		ctx:      ctx,
		listener: l,
	})
}

func (e *Events) offAPI(ea eventArgs) {
	names := []string{ea.name}
	if ea.name == "" {
		names = sortedHandlerKeys(e.events)
	}

	for _, key := range names {
		handlers, ok := e.events[key]
		if !ok {
			continue
		}

		remaining := make([]*handler, 0, len(handlers))
		for _, h := range handlers {
			if !matchesCallback(h.callback, ea.callback) || !matchesContext(h.context, ea.context) {
				remaining = append(remaining, h)
				continue
			}

			h.removed = true
			if l := h.listener; l != nil {
				l.count--
				if l.count == 0 {
					l.cleanup()
				}
			}
		}

		if len(remaining) == 0 {
			delete(e.events, key)
		} else {
			e.events[key] = remaining
		}
	}
}

func (e *Events) triggerAPI(name string, args []any) {
	handlers := e.events[name]
	var all []*handler
	if src := e.events[allEvents]; len(src) > 0 {
		all = make([]*handler, len(src))
		copy(all, src)
	}

	for _, h := range handlers {
		if h.removed {
			continue
		}
		h.callback.Call(h.ctx, args...)
	}

	if len(all) == 0 {
		return
	}
	allArgs := make([]any, 0, len(args)+1)
	allArgs = append(allArgs, name)
	allArgs = append(allArgs, args...)
	for _, h := range all {
		h.callback.Call(h.ctx, allArgs...)
	}
}

func isEmptyName(name any) bool {
	if name == nil {
		return true
	}
	s, ok := name.(string)
	return ok && s == ""
}

func sortedHandlerKeys(m map[string][]*handler) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
