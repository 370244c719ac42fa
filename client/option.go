package client

import (
	"log/slog"

	"github.com/viant/jsonrpcclient/config"
	"github.com/viant/jsonrpcclient/transport"
)

// Option represents option
type Option func(c *Client)

// WithConfig sets the config store
func WithConfig(store *config.Store) Option {
	return func(c *Client) {
		c.config = store
	}
}

// WithTransport sets the transport, optionally decorated with middlewares
func WithTransport(aTransport transport.Transport, middlewares ...transport.Middleware) Option {
	return func(c *Client) {
		c.transport = transport.Chain(aTransport, middlewares...)
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
