package request

import (
	"errors"
	"fmt"
)

var (
	ErrMethodNotSupported  = errors.New("method not supported")
	ErrUnsupportedVersion  = errors.New("unsupported protocol version")
	ErrMalformedHeaderLine = errors.New("malformed header line")
	ErrTruncatedRequest    = errors.New("request ended before blank line")
	ErrHeaderTooLarge      = errors.New("request header too large")

	// ErrNoRequest means not even a request line could be read. No response
	// is owed to the peer in that case.
	ErrNoRequest = errors.New("no request line")
)

// ProtocolError is a request the client got wrong. It is answered with
// 400 Bad Request.
type ProtocolError struct {
	Err  error
	Line string
}

func (e *ProtocolError) Error() string {
	if e.Line == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Line)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// IsProtocolError reports whether err should be answered with 400.
func IsProtocolError(err error) bool {
	var perr *ProtocolError
	return errors.As(err, &perr)
}
