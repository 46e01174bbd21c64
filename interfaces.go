package radio

type (
	// Target is anything that owns an Events registry and can therefore be
	// listened to: *Events, *Channel and any struct embedding Events.
	Target interface {
		eventsRegistry() *Events
	}

	// Emitter is the event surface shared by Events and Channel.
	Emitter[T any] interface {
		// On binds a callback to one or more event names.
		On(name, callback, context any) T

		// Once binds a callback that fires a single time per event name.
		Once(name, callback, context any) T

		// Off removes matching callbacks, or everything when given no filter.
		Off(name, callback, context any) T

		// Trigger fires the callbacks bound to name synchronously.
		Trigger(name any, args ...any) T

		// ListenTo binds a tracked callback on another target.
		ListenTo(obj Target, name, callback any) T

		// ListenToOnce binds a tracked callback that fires a single time.
		ListenToOnce(obj Target, name, callback any) T

		// StopListening removes tracked callbacks.
		StopListening(obj Target, name, callback any) T
	}

	// Requester is the request/reply surface shared by Requests and Channel.
	Requester[T any] interface {
		Request(name any, args ...any) any
		Reply(name, callback, context any) T
		ReplyOnce(name, callback, context any) T
		StopReplying(name, callback, context any) T
	}

	// Commander is the command surface shared by Commands and Channel.
	Commander[T any] interface {
		Command(name any, args ...any) T
		Comply(name, callback, context any) T
		ComplyOnce(name, callback, context any) T
		StopComplying(name, callback, context any) T
	}
)

var (
	_ Emitter[*Events]     = (*Events)(nil)
	_ Requester[*Requests] = (*Requests)(nil)
	_ Commander[*Commands] = (*Commands)(nil)
	_ Emitter[*Channel]    = (*Channel)(nil)
	_ Requester[*Channel]  = (*Channel)(nil)
	_ Commander[*Channel]  = (*Channel)(nil)
	_ Target               = (*Events)(nil)
	_ Target               = (*Channel)(nil)
)
