package radio

import "fmt"

// DebugLogFunc receives the soft failures radio reports in debug mode: an
// unhandled request or command, the removal of something never registered
// and a reply or command handler being overwritten. channelName is empty
// for registries that don't belong to a channel.
type DebugLogFunc func(warning, eventName, channelName string)

// debugText formats a warning the way the default DebugLogFunc prints it:
//
//	An unhandled request was fired on the app channel: "user:get"
func debugText(warning, eventName, channelName string) string {
	if channelName != "" {
		warning += " on the " + channelName + " channel"
	}
	return fmt.Sprintf("%s: %q", warning, eventName)
}

// SetDebug turns debug warnings on or off.
func (r *Radio) SetDebug(enabled bool) *Radio {
	r.debug.Store(enabled)
	return r
}

// Debug reports whether debug warnings are on.
func (r *Radio) Debug() bool {
	return r.debug.Load()
}

func (r *Radio) debugLog(warning, eventName, channelName string) {
	if !r.Debug() {
		return
	}
	r.debugLogFn(warning, eventName, channelName)
}

func (r *Radio) defaultDebugLog(warning, eventName, channelName string) {
	logger := r.logger.WithField("event", eventName)
	if channelName != "" {
		logger = logger.WithField("channel", channelName)
	}
	logger.Warn(debugText(warning, eventName, channelName))
}
