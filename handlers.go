package radio

import "sort"

// defaultHandler is the catch-all name consulted when a request or command
// has no handler of its own. It receives the missing name first.
const defaultHandler = "default"

// scope is what a handler store knows about where it lives: the value
// handlers are bound to by default, the channel it belongs to and the radio
// used for debug and activity logging.
type scope struct {
	owner   any
	channel string
	radio   *Radio
	tunedIn bool
}

func (s *scope) debugLog(warning, name string) {
	s.radioOrDefault().debugLog(warning, name, s.channel)
}

func (s *scope) logActivity(name string, args []any) {
	if s.channel == "" || !s.tunedIn {
		return
	}
	s.radioOrDefault().logActivity(s.channel, name, args...)
}

func (s *scope) radioOrDefault() *Radio {
	if s.radio != nil {
		return s.radio
	}
	return Default()
}

// handlerStore holds at most one handler per name. A nil entries map means
// the store was never used or was dropped entirely, which is different from
// an empty one only in that nothing can match.
type handlerStore struct {
	kind    string
	entries map[string]*handler
	scope   *scope
}

func newHandlerStore(kind string, s *scope) handlerStore {
	return handlerStore{kind: kind, scope: s}
}

func (s *handlerStore) context() *scope {
	if s.scope == nil {
		s.scope = &scope{}
	}
	return s.scope
}

func (s *handlerStore) handle(name string, cb *Callback, context, owner any) {
	if s.entries == nil {
		s.entries = make(map[string]*handler)
	}
	if _, ok := s.entries[name]; ok {
		s.context().debugLog("A "+s.kind+" was overwritten", name)
	}

	ctx := context
	if ctx == nil {
		ctx = owner
	}
	s.entries[name] = &handler{callback: cb, context: context, ctx: ctx}
}

// remove deletes the entries matching callback and context under name, or
// under every name when name is empty. It reports whether anything matched.
func (s *handlerStore) remove(name string, callback, context any) bool {
	if s.entries == nil {
		return false
	}

	names := []string{name}
	if name == "" {
		names = make([]string, 0, len(s.entries))
		for k := range s.entries {
			names = append(names, k)
		}
		sort.Strings(names)
	}

	matched := false
	for _, n := range names {
		h, ok := s.entries[n]
		if !ok {
			continue
		}
		if matchesCallback(h.callback, callback) && matchesContext(h.context, context) {
			h.removed = true
			delete(s.entries, n)
			matched = true
		}
	}
	return matched
}

func (s *handlerStore) drop() {
	s.entries = nil
}

// execute runs the handler for name, falling back to the "default" handler
// with name prepended to args. It reports false when nothing handled it.
func (s *handlerStore) execute(name string, args []any) (any, bool) {
	s.context().logActivity(name, args)

	if h, ok := s.entries[name]; ok {
		return h.callback.Call(h.ctx, args...), true
	}
	if h, ok := s.entries[defaultHandler]; ok {
		withName := make([]any, 0, len(args)+1)
		withName = append(withName, name)
		withName = append(withName, args...)
		return h.callback.Call(h.ctx, withName...), true
	}

	s.context().debugLog("An unhandled "+s.kind+" was fired", name)
	return nil, false
}

// has reports whether name has its own handler.
func (s *handlerStore) has(name string) bool {
	_, ok := s.entries[name]
	return ok
}

func (s *handlerStore) names() []string {
	names := make([]string, 0, len(s.entries))
	for k := range s.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// isStopAll reports whether a Stop* call carries no filter at all.
func isStopAll(name, callback, context any) bool {
	return isEmptyName(name) && callback == nil && context == nil
}

// prependArg returns args with v in front, used to forward map values.
func prependArg(v any, args []any) []any {
	out := make([]any, 0, len(args)+1)
	out = append(out, v)
	return append(out, args...)
}
