package radio

// Requests is a registry of request handlers, at most one per name.
// A request runs its handler synchronously and returns what it returned.
// The zero value is ready to use.
type Requests struct {
	store handlerStore
	owner any
}

// NewRequests returns a standalone Requests registry.
func NewRequests() *Requests {
	r := &Requests{}
	r.store = newHandlerStore("request", &scope{owner: r})
	return r
}

func newChannelRequests(s *scope) *Requests {
	return &Requests{store: newHandlerStore("request", s), owner: s.owner}
}

func (r *Requests) self() any {
	if r.owner != nil {
		return r.owner
	}
	return r
}

func (r *Requests) init() {
	if r.store.kind == "" {
		r.store.kind = "request"
	}
}

// Reply sets the handler for name, replacing any previous one. callback may
// be a *Callback, a plain func or any other value, which is then returned
// as is by every request.
func (r *Requests) Reply(name, callback, context any) *Requests {
	r.init()
	for _, ea := range resolveNames(name, callback, context, nil) {
		if ea.name == "" {
			continue
		}
		r.store.handle(ea.name, makeCallback(ea.callback), ea.context, r.self())
	}
	return r
}

// ReplyOnce sets a handler that is removed the first time it runs.
func (r *Requests) ReplyOnce(name, callback, context any) *Requests {
	r.init()
	for _, ea := range resolveNames(name, callback, context, nil) {
		if ea.name == "" {
			continue
		}
		wrapper := onceWrap(makeCallback(ea.callback), func(w *Callback) {
			r.StopReplying(ea.name, w, nil)
		})
		r.store.handle(ea.name, wrapper, ea.context, r.self())
	}
	return r
}

// StopReplying removes the handlers matching every non-nil argument. With no
// filter at all it drops the whole registry.
func (r *Requests) StopReplying(name, callback, context any) *Requests {
	r.init()
	if isStopAll(name, callback, context) {
		r.store.drop()
		return r
	}

	for _, ea := range resolveNames(name, callback, context, nil) {
		if !r.store.remove(ea.name, ea.callback, ea.context) {
			r.store.context().debugLog("Attempted to remove the unregistered request", ea.name)
		}
	}
	return r
}

// Request runs the handler for name with args and returns its result, or
// nil when nothing handles it. Several names, space separated or as map
// keys, return a map[string]any of results keyed by name; a map value is
// passed as the first argument to its request.
func (r *Requests) Request(name any, args ...any) any {
	r.init()
	if _, ok := asNameMap(name); ok {
		results := make(map[string]any)
		for _, ea := range resolveNames(name, nil, nil, nil) {
			results[ea.name] = r.Request(ea.name, prependArg(ea.callback, args)...)
		}
		return results
	}

	n, _ := name.(string)
	if tokens, ok := splitNames(n); ok {
		results := make(map[string]any, len(tokens))
		for _, token := range tokens {
			results[token] = r.Request(token, args...)
		}
		return results
	}

	if n == "" {
		return nil
	}
	result, _ := r.store.execute(n, args)
	return result
}

// HasReply reports whether name has a handler of its own.
func (r *Requests) HasReply(name string) bool {
	return r.store.has(name)
}

// ReplyNames returns the names with a registered handler, sorted.
func (r *Requests) ReplyNames() []string {
	return r.store.names()
}
