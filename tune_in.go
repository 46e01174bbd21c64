package radio

// LogFunc receives the activity of tuned in channels: every triggered event,
// request and command with its arguments.
type LogFunc func(channelName, eventName string, args ...any)

// TuneIn logs all activity on the named channel.
func (r *Radio) TuneIn(channelName string) *Radio {
	ch := r.MustChannel(channelName)
	ch.scope.tunedIn = true
	cb := r.tuneInCallback(channelName)
	ch.Off(allEvents, cb, nil).On(allEvents, cb, nil)
	return r
}

// TuneOut stops logging the named channel.
func (r *Radio) TuneOut(channelName string) *Radio {
	ch := r.MustChannel(channelName)
	ch.scope.tunedIn = false
	ch.Off(allEvents, r.tuneInCallback(channelName), nil)

	r.mu.Lock()
	delete(r.logs, channelName)
	r.mu.Unlock()
	return r
}

// tuneInCallback returns the same callback for a channel until it is tuned
// out, so TuneOut removes exactly what TuneIn added.
func (r *Radio) tuneInCallback(channelName string) *Callback {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cb, ok := r.logs[channelName]; ok {
		return cb
	}
	cb := Do(func(args ...any) {
		if len(args) == 0 {
			return
		}
		eventName, _ := args[0].(string)
		r.logActivity(channelName, eventName, args[1:]...)
	})
	r.logs[channelName] = cb
	return cb
}

func (r *Radio) logActivity(channelName, eventName string, args ...any) {
	r.logFn(channelName, eventName, args...)
}

func (r *Radio) defaultLog(channelName, eventName string, args ...any) {
	r.logger.
		WithField("channel", channelName).
		Infof("[%s] %q %v", channelName, eventName, args)
}
