package radio

import "github.com/stretchr/testify/mock"

// mockLogger records every call. WithField returns the same mock so chained
// calls land on it too.
type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) WithField(key string, value any) Logger {
	m.Called(key, value)
	return m
}

func (m *mockLogger) Debug(args ...any)                 { m.Called(args...) }
func (m *mockLogger) Debugf(format string, args ...any) { m.Called(append([]any{format}, args...)...) }
func (m *mockLogger) Debugln(args ...any)               { m.Called(args...) }
func (m *mockLogger) Info(args ...any)                  { m.Called(args...) }
func (m *mockLogger) Infof(format string, args ...any)  { m.Called(append([]any{format}, args...)...) }
func (m *mockLogger) Infoln(args ...any)                { m.Called(args...) }
func (m *mockLogger) Warn(args ...any)                  { m.Called(args...) }
func (m *mockLogger) Warnf(format string, args ...any)  { m.Called(append([]any{format}, args...)...) }
func (m *mockLogger) Warnln(args ...any)                { m.Called(args...) }
func (m *mockLogger) Error(args ...any)                 { m.Called(args...) }
func (m *mockLogger) Errorf(format string, args ...any) { m.Called(append([]any{format}, args...)...) }
func (m *mockLogger) Errorln(args ...any)               { m.Called(args...) }
