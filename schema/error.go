package schema

import (
	"encoding/json"
	"errors"

	"github.com/viant/jsonrpc"
)

// Error name discriminants.
const (
	ErrorTypeConfig    = "JsonRpcConfigError"
	ErrorTypeServer    = "JsonRpcServerError"
	ErrorTypeTransport = "JsonRpcTransportError"
)

// ConfigError reports client misconfiguration; it never involves the network.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Name() string  { return ErrorTypeConfig }
func (e *ConfigError) Error() string { return e.Message }

// ServerError reports a JSON-RPC error object returned by the remote server.
type ServerError struct {
	Message string
	Err     *jsonrpc.Error
}

func (e *ServerError) Name() string  { return ErrorTypeServer }
func (e *ServerError) Error() string { return e.Message }

// Code returns the JSON-RPC error code.
func (e *ServerError) Code() int {
	if e.Err == nil {
		return 0
	}
	return e.Err.Code
}

// Data returns the raw error data carried by the error object.
func (e *ServerError) Data() json.RawMessage {
	if e.Err == nil {
		return nil
	}
	return json.RawMessage(e.Err.Data)
}

// TransportError reports an exchange that did not complete as JSON-RPC.
type TransportError struct {
	Message    string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Name() string  { return ErrorTypeTransport }
func (e *TransportError) Error() string { return e.Message }
func (e *TransportError) Unwrap() error { return e.Err }

// NewConfigError creates a config error
func NewConfigError(message string) *ConfigError {
	return &ConfigError{Message: message}
}

// NewServerError creates a server error from a JSON-RPC error object
func NewServerError(rpcError *jsonrpc.Error) *ServerError {
	if rpcError == nil {
		rpcError = &jsonrpc.Error{}
	}
	return &ServerError{Message: rpcError.Message, Err: rpcError}
}

// NewTransportError creates a transport error
func NewTransportError(message string, statusCode int, body []byte, err error) *TransportError {
	return &TransportError{Message: message, StatusCode: statusCode, Body: body, Err: err}
}

// ErrorName returns the discriminant of a classified error, or an empty string.
func ErrorName(err error) string {
	var named interface{ Name() string }
	if errors.As(err, &named) {
		return named.Name()
	}
	return ""
}

func IsConfigError(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}

func IsServerError(err error) bool {
	var target *ServerError
	return errors.As(err, &target)
}

func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}
