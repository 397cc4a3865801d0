package client

import (
	"errors"
	"fmt"
)

// InputError reports a call the server rejected because of its arguments.
// Retrying the same call cannot succeed.
type InputError struct {
	Method  string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("client: %s: invalid input: %s", e.Method, e.Message)
}

// RPCError is an error returned by the messaging network behind the server.
type RPCError struct {
	Method      string
	Code        int
	Description string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("client: %s: rpc error %d: %s", e.Method, e.Code, e.Description)
}

// InternalError is any other failure reported by the server.
type InternalError struct {
	Method     string
	StatusCode int
	Message    string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("client: %s: internal error (%d): %s", e.Method, e.StatusCode, e.Message)
}

// IsInputError reports whether err is or wraps an *InputError.
func IsInputError(err error) bool {
	var in *InputError
	return errors.As(err, &in)
}

// errorClass names the kind of failure for metrics and logs.
func errorClass(err error) string {
	var (
		in       *InputError
		rpc      *RPCError
		internal *InternalError
	)
	switch {
	case errors.As(err, &in):
		return "input"
	case errors.As(err, &rpc):
		return "rpc"
	case errors.As(err, &internal):
		return "internal"
	default:
		return "transport"
	}
}
