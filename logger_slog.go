package radio

import (
	"fmt"
	"log/slog"
	"strings"
)

type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger adapts a *slog.Logger. Fields become slog attributes.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return slogLogger{l: l}
}

func (s slogLogger) WithField(key string, value any) Logger {
	return slogLogger{l: s.l.With(key, value)}
}

func (s slogLogger) Debug(args ...any)                 { s.l.Debug(fmt.Sprint(args...)) }
func (s slogLogger) Debugf(format string, args ...any) { s.l.Debug(fmt.Sprintf(format, args...)) }
func (s slogLogger) Debugln(args ...any)               { s.l.Debug(sprintln(args...)) }
func (s slogLogger) Info(args ...any)                  { s.l.Info(fmt.Sprint(args...)) }
func (s slogLogger) Infof(format string, args ...any)  { s.l.Info(fmt.Sprintf(format, args...)) }
func (s slogLogger) Infoln(args ...any)                { s.l.Info(sprintln(args...)) }
func (s slogLogger) Warn(args ...any)                  { s.l.Warn(fmt.Sprint(args...)) }
func (s slogLogger) Warnf(format string, args ...any)  { s.l.Warn(fmt.Sprintf(format, args...)) }
func (s slogLogger) Warnln(args ...any)                { s.l.Warn(sprintln(args...)) }
func (s slogLogger) Error(args ...any)                 { s.l.Error(fmt.Sprint(args...)) }
func (s slogLogger) Errorf(format string, args ...any) { s.l.Error(fmt.Sprintf(format, args...)) }
func (s slogLogger) Errorln(args ...any)               { s.l.Error(sprintln(args...)) }

func sprintln(args ...any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
