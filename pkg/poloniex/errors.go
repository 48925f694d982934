package poloniex

import (
	"errors"
	"fmt"
)

var (
	ErrNoSuchCommand      = errors.New("no such command")
	ErrMissingCredentials = errors.New("an api key and secret are needed")
)

// TransportError reports a failed HTTP exchange. StatusCode is zero when no
// response was received.
type TransportError struct {
	Command    string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("poloniex: %s: server responded with a %d status code: %v", e.Command, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("poloniex: %s: request failed: %v", e.Command, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that isn't valid JSON.
type DecodeError struct {
	Command string
	Body    []byte
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("poloniex: %s: couldn't decode response: %v", e.Command, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError is the error object returned by the exchange, {"error": "..."}.
type APIError struct {
	Command string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("poloniex: %s: api error: %s", e.Command, e.Message)
}
