package radio

// Commands is a registry of command handlers, at most one per name.
// Commands are fire-and-forget: handler results are discarded.
// The zero value is ready to use.
type Commands struct {
	store handlerStore
	owner any
}

// NewCommands returns a standalone Commands registry.
func NewCommands() *Commands {
	c := &Commands{}
	c.store = newHandlerStore("command", &scope{owner: c})
	return c
}

func newChannelCommands(s *scope) *Commands {
	return &Commands{store: newHandlerStore("command", s), owner: s.owner}
}

func (c *Commands) self() any {
	if c.owner != nil {
		return c.owner
	}
	return c
}

func (c *Commands) init() {
	if c.store.kind == "" {
		c.store.kind = "command"
	}
}

// Comply sets the handler for name, replacing any previous one. Unlike
// replies, command handlers must be callable; anything else is ignored.
func (c *Commands) Comply(name, callback, context any) *Commands {
	c.init()
	for _, ea := range resolveNames(name, callback, context, nil) {
		cb, ok := toCallback(ea.callback)
		if !ok || ea.name == "" {
			continue
		}
		c.store.handle(ea.name, cb, ea.context, c.self())
	}
	return c
}

// ComplyOnce sets a handler that is removed the first time it runs.
func (c *Commands) ComplyOnce(name, callback, context any) *Commands {
	c.init()
	for _, ea := range resolveNames(name, callback, context, nil) {
		cb, ok := toCallback(ea.callback)
		if !ok || ea.name == "" {
			continue
		}
		wrapper := onceWrap(cb, func(w *Callback) {
			c.StopComplying(ea.name, w, nil)
		})
		c.store.handle(ea.name, wrapper, ea.context, c.self())
	}
	return c
}

// StopComplying removes the handlers matching every non-nil argument. With
// no filter at all it drops the whole registry.
func (c *Commands) StopComplying(name, callback, context any) *Commands {
	c.init()
	if isStopAll(name, callback, context) {
		c.store.drop()
		return c
	}

	for _, ea := range resolveNames(name, callback, context, nil) {
		if !c.store.remove(ea.name, ea.callback, ea.context) {
			c.store.context().debugLog("Attempted to remove the unregistered command", ea.name)
		}
	}
	return c
}

// Command runs the handler for name with args. Several names, space
// separated or as map keys, are commanded one by one; a map value is passed
// as the first argument to its command.
func (c *Commands) Command(name any, args ...any) *Commands {
	c.init()
	if _, ok := asNameMap(name); ok {
		for _, ea := range resolveNames(name, nil, nil, nil) {
			c.store.execute(ea.name, prependArg(ea.callback, args))
		}
		return c
	}

	n, _ := name.(string)
	if tokens, ok := splitNames(n); ok {
		for _, token := range tokens {
			c.store.execute(token, args)
		}
		return c
	}

	if n != "" {
		c.store.execute(n, args)
	}
	return c
}

// HasHandler reports whether name has a handler of its own.
func (c *Commands) HasHandler(name string) bool {
	return c.store.has(name)
}

// CommandNames returns the names with a registered handler, sorted.
func (c *Commands) CommandNames() []string {
	return c.store.names()
}
