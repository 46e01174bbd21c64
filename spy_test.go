package radio

// spy is a Callback that records how it was called.
type spy struct {
	cb    *Callback
	calls [][]any
	this  []any
	ret   any
}

func newSpy(ret any) *spy {
	s := &spy{ret: ret}
	s.cb = Method(func(this any, args ...any) any {
		s.calls = append(s.calls, append([]any{}, args...))
		s.this = append(s.this, this)
		return s.ret
	})
	return s
}

func (s *spy) count() int { return len(s.calls) }

func (s *spy) last() []any {
	if len(s.calls) == 0 {
		return nil
	}
	return s.calls[len(s.calls)-1]
}

// debugRecorder collects DebugLogFunc calls.
type debugRecorder struct {
	entries []string
}

func (d *debugRecorder) log(warning, eventName, channelName string) {
	d.entries = append(d.entries, debugText(warning, eventName, channelName))
}
