package radio

// Channel groups an Events, a Requests and a Commands registry under one
// name. Handlers registered without a context run bound to the channel.
// Obtain channels from a Radio; there is one per name.
type Channel struct {
	name     string
	scope    *scope
	events   *Events
	requests *Requests
	commands *Commands
}

func newChannel(name string, r *Radio) *Channel {
	c := &Channel{name: name}
	c.scope = &scope{owner: c, channel: name, radio: r}
	c.events = NewEvents(c)
	c.requests = newChannelRequests(c.scope)
	c.commands = newChannelCommands(c.scope)
	return c
}

// Name returns the channel name.
func (c *Channel) Name() string { return c.name }

// TunedIn reports whether the channel activity is being logged.
func (c *Channel) TunedIn() bool { return c.scope.tunedIn }

func (c *Channel) eventsRegistry() *Events {
	if c == nil {
		return nil
	}
	return c.events
}

// On binds callback to name on the channel.
func (c *Channel) On(name, callback, context any) *Channel {
	c.events.On(name, callback, context)
	return c
}

// Once binds callback to fire once per name on the channel.
func (c *Channel) Once(name, callback, context any) *Channel {
	c.events.Once(name, callback, context)
	return c
}

// Off removes matching event handlers from the channel.
func (c *Channel) Off(name, callback, context any) *Channel {
	c.events.Off(name, callback, context)
	return c
}

// Trigger fires name on the channel with args.
func (c *Channel) Trigger(name any, args ...any) *Channel {
	c.events.Trigger(name, args...)
	return c
}

// ListenTo makes the channel listen to name on obj.
func (c *Channel) ListenTo(obj Target, name, callback any) *Channel {
	c.events.ListenTo(obj, name, callback)
	return c
}

// ListenToOnce is ListenTo for handlers that fire a single time.
func (c *Channel) ListenToOnce(obj Target, name, callback any) *Channel {
	c.events.ListenToOnce(obj, name, callback)
	return c
}

// StopListening removes tracked bindings the channel holds on obj.
func (c *Channel) StopListening(obj Target, name, callback any) *Channel {
	c.events.StopListening(obj, name, callback)
	return c
}

// Reply sets the request handler for name on the channel.
func (c *Channel) Reply(name, callback, context any) *Channel {
	c.requests.Reply(name, callback, context)
	return c
}

// ReplyOnce sets a request handler that is removed after one request.
func (c *Channel) ReplyOnce(name, callback, context any) *Channel {
	c.requests.ReplyOnce(name, callback, context)
	return c
}

// StopReplying removes matching request handlers from the channel.
func (c *Channel) StopReplying(name, callback, context any) *Channel {
	c.requests.StopReplying(name, callback, context)
	return c
}

// Request runs the request handler for name on the channel and returns its result.
func (c *Channel) Request(name any, args ...any) any {
	return c.requests.Request(name, args...)
}

// Comply sets the command handler for name on the channel.
func (c *Channel) Comply(name, callback, context any) *Channel {
	c.commands.Comply(name, callback, context)
	return c
}

// ComplyOnce sets a command handler that is removed after one command.
func (c *Channel) ComplyOnce(name, callback, context any) *Channel {
	c.commands.ComplyOnce(name, callback, context)
	return c
}

// StopComplying removes matching command handlers from the channel.
func (c *Channel) StopComplying(name, callback, context any) *Channel {
	c.commands.StopComplying(name, callback, context)
	return c
}

// Command runs the command handler for name on the channel.
func (c *Channel) Command(name any, args ...any) *Channel {
	c.commands.Command(name, args...)
	return c
}

// ConnectEvents binds every name -> callback pair of hash, bound to context
// or to the channel when context is nil.
func (c *Channel) ConnectEvents(hash map[string]any, context any) *Channel {
	return c.On(hash, nil, c.connectContext(context))
}

// ConnectRequests replies to every name -> callback pair of hash.
func (c *Channel) ConnectRequests(hash map[string]any, context any) *Channel {
	return c.Reply(hash, nil, c.connectContext(context))
}

// ConnectCommands complies with every name -> callback pair of hash.
func (c *Channel) ConnectCommands(hash map[string]any, context any) *Channel {
	return c.Comply(hash, nil, c.connectContext(context))
}

func (c *Channel) connectContext(context any) any {
	if context == nil {
		return c
	}
	return context
}

// Reset removes every event, tracked listening, reply and command handler
// from the channel.
func (c *Channel) Reset() *Channel {
	c.events.Off(nil, nil, nil)
	c.events.StopListening(nil, nil, nil)
	c.requests.StopReplying(nil, nil, nil)
	c.commands.StopComplying(nil, nil, nil)
	return c
}

// Events exposes the channel's event registry.
func (c *Channel) Events() *Events { return c.events }

// Requests exposes the channel's request registry.
func (c *Channel) Requests() *Requests { return c.requests }

// Commands exposes the channel's command registry.
func (c *Channel) Commands() *Commands { return c.commands }
