package radio

// The methods below forward to the channel named by their first argument,
// creating it when needed. They panic on an empty channel name.

// On binds callback to name on the named channel.
func (r *Radio) On(channelName string, name, callback, context any) *Channel {
	return r.MustChannel(channelName).On(name, callback, context)
}

// Once binds callback to fire once per name on the named channel.
func (r *Radio) Once(channelName string, name, callback, context any) *Channel {
	return r.MustChannel(channelName).Once(name, callback, context)
}

// Off removes matching event handlers from the named channel.
func (r *Radio) Off(channelName string, name, callback, context any) *Channel {
	return r.MustChannel(channelName).Off(name, callback, context)
}

// Trigger fires name on the named channel with args.
func (r *Radio) Trigger(channelName string, name any, args ...any) *Channel {
	return r.MustChannel(channelName).Trigger(name, args...)
}

// ListenTo makes the named channel listen to name on obj.
func (r *Radio) ListenTo(channelName string, obj Target, name, callback any) *Channel {
	return r.MustChannel(channelName).ListenTo(obj, name, callback)
}

// ListenToOnce is ListenTo for handlers that fire a single time.
func (r *Radio) ListenToOnce(channelName string, obj Target, name, callback any) *Channel {
	return r.MustChannel(channelName).ListenToOnce(obj, name, callback)
}

// StopListening removes tracked bindings the named channel holds on obj.
func (r *Radio) StopListening(channelName string, obj Target, name, callback any) *Channel {
	return r.MustChannel(channelName).StopListening(obj, name, callback)
}

// Reply sets the request handler for name on the named channel.
func (r *Radio) Reply(channelName string, name, callback, context any) *Channel {
	return r.MustChannel(channelName).Reply(name, callback, context)
}

// ReplyOnce sets a request handler that is removed after one request.
func (r *Radio) ReplyOnce(channelName string, name, callback, context any) *Channel {
	return r.MustChannel(channelName).ReplyOnce(name, callback, context)
}

// StopReplying removes matching request handlers from the named channel.
func (r *Radio) StopReplying(channelName string, name, callback, context any) *Channel {
	return r.MustChannel(channelName).StopReplying(name, callback, context)
}

// Request runs the request handler for name on the named channel and returns its result.
func (r *Radio) Request(channelName string, name any, args ...any) any {
	return r.MustChannel(channelName).Request(name, args...)
}

// Comply sets the command handler for name on the named channel.
func (r *Radio) Comply(channelName string, name, callback, context any) *Channel {
	return r.MustChannel(channelName).Comply(name, callback, context)
}

// ComplyOnce sets a command handler that is removed after one command.
func (r *Radio) ComplyOnce(channelName string, name, callback, context any) *Channel {
	return r.MustChannel(channelName).ComplyOnce(name, callback, context)
}

// StopComplying removes matching command handlers from the named channel.
func (r *Radio) StopComplying(channelName string, name, callback, context any) *Channel {
	return r.MustChannel(channelName).StopComplying(name, callback, context)
}

// Command runs the command handler for name on the named channel.
func (r *Radio) Command(channelName string, name any, args ...any) *Channel {
	return r.MustChannel(channelName).Command(name, args...)
}

// Package level shortcuts on the default Radio.

// On binds callback to name on the named channel of the default Radio.
func On(channelName string, name, callback, context any) *Channel {
	return Default().On(channelName, name, callback, context)
}

// Once binds callback to fire once per name on the named channel of the default Radio.
func Once(channelName string, name, callback, context any) *Channel {
	return Default().Once(channelName, name, callback, context)
}

// Off removes matching event handlers from the named channel of the default Radio.
func Off(channelName string, name, callback, context any) *Channel {
	return Default().Off(channelName, name, callback, context)
}

// Trigger fires name on the named channel of the default Radio with args.
func Trigger(channelName string, name any, args ...any) *Channel {
	return Default().Trigger(channelName, name, args...)
}

// ListenTo makes the named channel of the default Radio listen to name on obj.
func ListenTo(channelName string, obj Target, name, callback any) *Channel {
	return Default().ListenTo(channelName, obj, name, callback)
}

// ListenToOnce is ListenTo for handlers that fire a single time.
func ListenToOnce(channelName string, obj Target, name, callback any) *Channel {
	return Default().ListenToOnce(channelName, obj, name, callback)
}

// StopListening removes tracked bindings the named channel of the default Radio holds on obj.
func StopListening(channelName string, obj Target, name, callback any) *Channel {
	return Default().StopListening(channelName, obj, name, callback)
}

// Reply sets the request handler for name on the named channel of the default Radio.
func Reply(channelName string, name, callback, context any) *Channel {
	return Default().Reply(channelName, name, callback, context)
}

// ReplyOnce sets a request handler that is removed after one request.
func ReplyOnce(channelName string, name, callback, context any) *Channel {
	return Default().ReplyOnce(channelName, name, callback, context)
}

// StopReplying removes matching request handlers from the named channel of the default Radio.
func StopReplying(channelName string, name, callback, context any) *Channel {
	return Default().StopReplying(channelName, name, callback, context)
}

// Request runs the request handler for name on the named channel of the default Radio and returns its result.
func Request(channelName string, name any, args ...any) any {
	return Default().Request(channelName, name, args...)
}

// Comply sets the command handler for name on the named channel of the default Radio.
func Comply(channelName string, name, callback, context any) *Channel {
	return Default().Comply(channelName, name, callback, context)
}

// ComplyOnce sets a command handler that is removed after one command.
func ComplyOnce(channelName string, name, callback, context any) *Channel {
	return Default().ComplyOnce(channelName, name, callback, context)
}

// StopComplying removes matching command handlers from the named channel of the default Radio.
func StopComplying(channelName string, name, callback, context any) *Channel {
	return Default().StopComplying(channelName, name, callback, context)
}

// Command runs the command handler for name on the named channel of the default Radio.
func Command(channelName string, name any, args ...any) *Channel {
	return Default().Command(channelName, name, args...)
}
