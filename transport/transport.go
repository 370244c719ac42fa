package transport

import (
	"context"
	"net/http"
)

// Request represents an outbound HTTP exchange.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response represents a completed HTTP exchange with any status code.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// Transport sends a request; an error means the exchange could not be completed.
type Transport interface {
	Send(ctx context.Context, request *Request) (*Response, error)
}

// Func adapts a function to Transport
type Func func(ctx context.Context, request *Request) (*Response, error)

func (f Func) Send(ctx context.Context, request *Request) (*Response, error) {
	return f(ctx, request)
}

// Middleware decorates a Transport
type Middleware func(next Transport) Transport

// Chain wraps t with middlewares, the first one being outermost.
func Chain(t Transport, middlewares ...Middleware) Transport {
	for i := len(middlewares) - 1; i >= 0; i-- {
		t = middlewares[i](t)
	}
	return t
}
