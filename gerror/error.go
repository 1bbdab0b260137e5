package gerror

import "fmt"

type GridError struct {
	Err string
}

// New returns a GridError with the formatted message.
func New(format string, args ...interface{}) *GridError {
	return &GridError{Err: fmt.Sprintf(format, args...)}
}

func (e *GridError) Error() string {
	return e.Err
}
