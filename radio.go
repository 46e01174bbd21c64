// Package radio provides in-process messaging over named channels.
//
// A channel carries three kinds of messages:
//
//   - events: fire-and-forget notifications with any number of handlers
//     (On, Once, Off, Trigger, ListenTo, StopListening)
//   - requests: synchronous calls answered by at most one handler
//     (Reply, ReplyOnce, StopReplying, Request)
//   - commands: fire-and-forget directives with at most one handler
//     (Comply, ComplyOnce, StopComplying, Command)
//
// Every name argument accepts a single name, a space separated list of names
// or a map of name to handler:
//
//	ch := radio.MustGet("user")
//	ch.Reply("current", radio.Func(func(...any) any { return session.User }), nil)
//	ch.On("login logout", radio.Do(func(args ...any) { refresh() }), nil)
//
//	user := ch.Request("current")
//
// All dispatch is synchronous and happens on the caller's goroutine.
// Handlers may register, remove or dispatch while running. Panics raised by
// handlers are not recovered.
package radio

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Version is the library version.
const Version = "2.0.0"

var (
	defaultRadio *Radio
	defaultOnce  sync.Once
	defaultOpts  []Option
	defaultOptMu sync.Mutex
)

// Radio is a registry of channels, one per name.
type Radio struct {
	mu       sync.Mutex
	channels map[string]*Channel
	logs     map[string]*Callback

	logger     Logger
	debug      atomic.Bool
	debugLogFn DebugLogFunc
	logFn      LogFunc
	tuneIn     []string
}

// New creates a Radio. Without options it logs nothing and debug is off.
func New(opts ...Option) *Radio {
	r := &Radio{
		channels: make(map[string]*Channel),
		logs:     make(map[string]*Callback),
		logger:   NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.debugLogFn == nil {
		r.debugLogFn = r.defaultDebugLog
	}
	if r.logFn == nil {
		r.logFn = r.defaultLog
	}
	for _, name := range r.tuneIn {
		r.TuneIn(name)
	}
	return r
}

// Configure sets the options of the default Radio. It must run before the
// default Radio is first used; later calls have no effect.
func Configure(opts ...Option) {
	defaultOptMu.Lock()
	defaultOpts = opts
	defaultOptMu.Unlock()
}

// Default returns the process wide Radio behind the package level functions.
func Default() *Radio {
	defaultOnce.Do(func() {
		defaultOptMu.Lock()
		opts := defaultOpts
		defaultOptMu.Unlock()
		defaultRadio = New(opts...)
	})
	return defaultRadio
}

// Channel returns the channel called name, creating it on first use.
func (r *Radio) Channel(name string) (*Channel, error) {
	if name == "" {
		return nil, errors.WithStack(ErrEmptyChannelName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if ch, ok := r.channels[name]; ok {
		return ch, nil
	}
	ch := newChannel(name, r)
	r.channels[name] = ch
	return ch, nil
}

// MustChannel is Channel for names known to be valid. It panics on an empty
// name.
func (r *Radio) MustChannel(name string) *Channel {
	ch, err := r.Channel(name)
	if err != nil {
		panic(err)
	}
	return ch
}

// ChannelNames returns the names of the channels created so far, in no
// particular order.
func (r *Radio) ChannelNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.channels))
	for name := range r.channels {
		names = append(names, name)
	}
	return names
}

// Reset clears every handler of the named channels, or of all channels when
// no name is given. Channels stay registered.
func (r *Radio) Reset(names ...string) *Radio {
	r.mu.Lock()
	var channels []*Channel
	if len(names) == 0 {
		for _, ch := range r.channels {
			channels = append(channels, ch)
		}
	} else {
		for _, name := range names {
			if ch, ok := r.channels[name]; ok {
				channels = append(channels, ch)
			}
		}
	}
	r.mu.Unlock()

	for _, ch := range channels {
		ch.Reset()
	}
	return r
}

// Get returns the named channel of the default Radio.
func Get(name string) (*Channel, error) {
	return Default().Channel(name)
}

// MustGet returns the named channel of the default Radio and panics on an
// empty name.
func MustGet(name string) *Channel {
	return Default().MustChannel(name)
}

// Reset clears the named channels of the default Radio, or all of them.
func Reset(names ...string) {
	Default().Reset(names...)
}

// SetDebug turns debug warnings of the default Radio on or off.
func SetDebug(enabled bool) {
	Default().SetDebug(enabled)
}

// TuneIn logs the activity of a channel of the default Radio.
func TuneIn(channelName string) {
	Default().TuneIn(channelName)
}

// TuneOut stops logging a channel of the default Radio.
func TuneOut(channelName string) {
	Default().TuneOut(channelName)
}
