package radio

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptyChannelName = errors.New("you must provide a name for the channel")
	ErrConfigNotFound   = errors.New("config file not found")
)

// ErrInvalidConfig reports a config file that could not be decoded.
type ErrInvalidConfig struct {
	err  error
	path string
}

func (e ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid radio config %s: %s", e.path, e.err)
}

func (e ErrInvalidConfig) Unwrap() error { return e.err }

func wrapErrorInvalidConfig(err error, path string) error {
	if err == nil {
		return nil
	}
	return &ErrInvalidConfig{
		err:  err,
		path: path,
	}
}
