package radio

import "sort"

// listening tracks the handlers one object (the listener) holds on another
// (the listenee). The same record sits in the listener's listeningTo map and
// in the listenee's listeners map, and is removed from both once its last
// handler goes away.
type listening struct {
	obj         *Events
	listeneeID  string
	listenerID  string
	listeningTo map[string]*listening
	count       int
}

func (l *listening) cleanup() {
	delete(l.listeningTo, l.listeneeID)
	delete(l.obj.listeners, l.listenerID)
}

// ListenTo tells e to listen to name on obj. Unlike obj.On, the binding is
// tracked on e, so StopListening can remove it in bulk later. Handlers run
// bound to e.
func (e *Events) ListenTo(obj Target, name, callback any) *Events {
	target := targetEvents(obj)
	if target == nil {
		return e
	}

	l := e.listeningFor(target)
	for _, ea := range resolveNames(name, callback, e.self(), l) {
		cb, ok := toCallback(ea.callback)
		if !ok || ea.name == "" {
			continue
		}
		e.listenToAPI(ea.name, cb, ea.context, l)
	}
	return e
}

// ListenToOnce is ListenTo for handlers that fire a single time per event
// name.
func (e *Events) ListenToOnce(obj Target, name, callback any) *Events {
	target := targetEvents(obj)
	if target == nil {
		return e
	}

	l := e.listeningFor(target)
	for _, ea := range resolveNames(name, callback, e.self(), l) {
		cb, ok := toCallback(ea.callback)
		if !ok || ea.name == "" {
			continue
		}
		wrapper := onceWrap(cb, func(w *Callback) {
			e.StopListening(target, ea.name, w)
		})
		e.listenToAPI(ea.name, wrapper, ea.context, l)
	}
	return e
}

// StopListening removes the tracked bindings e holds on obj that match name
// and callback. A nil obj means every object e listens to.
func (e *Events) StopListening(obj Target, name, callback any) *Events {
	if e.listeningTo == nil {
		return e
	}

	var ids []string
	if obj != nil {
		target := targetEvents(obj)
		if target == nil || target.listenID == "" {
			return e
		}
		ids = []string{target.listenID}
	} else {
		ids = sortedListeningKeys(e.listeningTo)
	}

	args := resolveNames(name, callback, e.self(), nil)
	for _, id := range ids {
		l, ok := e.listeningTo[id]
		// Removing one relationship can drop others as a side effect.
		if !ok {
			break
		}

		for _, ea := range args {
			if l.obj.events == nil {
				continue
			}
			l.obj.offAPI(ea)
		}
	}
	return e
}

// IsListeningTo reports whether e holds any tracked binding on obj.
func (e *Events) IsListeningTo(obj Target) bool {
	target := targetEvents(obj)
	if target == nil || target.listenID == "" {
		return false
	}
	_, ok := e.listeningTo[target.listenID]
	return ok
}

func (e *Events) listeningFor(obj *Events) *listening {
	listeneeID := obj.id()
	if e.listeningTo == nil {
		e.listeningTo = make(map[string]*listening)
	}
	if l, ok := e.listeningTo[listeneeID]; ok {
		return l
	}
	return &listening{
		obj:         obj,
		listeneeID:  listeneeID,
		listenerID:  e.id(),
		listeningTo: e.listeningTo,
	}
}

func (e *Events) listenToAPI(name string, cb *Callback, context any, l *listening) {
	obj := l.obj
	if obj.listeners == nil {
		obj.listeners = make(map[string]*listening)
	}
	obj.onAPI(name, cb, context, context, l)
	obj.listeners[l.listenerID] = l
	l.listeningTo[l.listeneeID] = l
	l.count++
}

func targetEvents(obj Target) *Events {
	if obj == nil {
		return nil
	}
	return obj.eventsRegistry()
}

func sortedListeningKeys(m map[string]*listening) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
