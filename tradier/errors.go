package tradier

import (
	"errors"
	"fmt"

	"github.com/Lumiwealth/lumiwealth-tradier/record"
)

// APIError is a non-2xx response from the broker. It carries the status code
// and raw body; nothing is retried, the caller decides what to do with it.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tradier api error %d: %s", e.StatusCode, string(e.Body))
}

// MalformedResponseError is a 2xx response whose body is not a valid JSON
// object.
type MalformedResponseError struct {
	Body []byte
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response body: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// ErrInvalidArgument reports a caller-supplied parameter that violates a
// documented constraint. It is returned before any network call is made.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrEmptyResult re-exports record.ErrEmptyResult so callers matching on
// empty broker responses only need this package.
var ErrEmptyResult = record.ErrEmptyResult
