package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/viant/jsonrpcclient/config"
	"github.com/viant/jsonrpcclient/schema"
	"github.com/viant/jsonrpcclient/transport"
)

// Reply carries either the unwrapped result or, when the store is configured
// to return HTTP responses, the raw transport response.
type Reply struct {
	Result   json.RawMessage
	Response *transport.Response
}

// Client dispatches JSON-RPC calls to the servers registered in a config store.
type Client struct {
	config    *config.Store
	transport transport.Transport
	builder   *Builder
	logger    *slog.Logger
}

// Config returns the store the client resolves servers from.
func (c *Client) Config() *config.Store {
	return c.config
}

// LastRequestID returns the id of the most recent envelope.
func (c *Client) LastRequestID() uint64 {
	return c.builder.Last()
}

// Request calls method on the "main" server.
func (c *Client) Request(ctx context.Context, method string, params any) (*Reply, error) {
	return c.RequestTo(ctx, config.DefaultServer, method, params)
}

// RequestTo calls method on the named server.
func (c *Client) RequestTo(ctx context.Context, serverName, method string, params any) (*Reply, error) {
	return c.dispatch(ctx, serverName, method, params, c.config.ReturnHTTPResponse())
}

// SetExtraHeaders replaces the static headers of the named server.
func (c *Client) SetExtraHeaders(serverName string, headers map[string]string) error {
	return c.config.SetExtraHeaders(serverName, headers)
}

func (c *Client) dispatch(ctx context.Context, serverName, method string, params any, returnHTTPResponse bool) (*Reply, error) {
	server, err := c.config.Resolve(serverName)
	if err != nil {
		return nil, err
	}
	request, err := c.builder.Next(method, params)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %v request: %w", method, err)
	}
	c.logger.DebugContext(ctx, "jsonrpc request", "server", server.Name, "url", server.URL, "method", method, "id", request.Id)
	response, sendErr := c.transport.Send(ctx, &transport.Request{
		Method: http.MethodPost,
		URL:    server.URL,
		Header: server.RequestHeader(),
		Body:   body,
	})
	if returnHTTPResponse {
		if sendErr != nil {
			return nil, sendErr
		}
		return &Reply{Response: response}, nil
	}
	result, err := Classify(server.URL, response, sendErr)
	if err != nil {
		c.logger.WarnContext(ctx, "jsonrpc request failed", "server", server.Name, "method", method, "id", request.Id, "type", schema.ErrorName(err), "error", err)
		return nil, err
	}
	return &Reply{Result: result}, nil
}

// Call calls method on the named server, always classifying the outcome, and decodes the result into R.
func Call[R any](ctx context.Context, client *Client, serverName, method string, params any) (*R, error) {
	reply, err := client.dispatch(ctx, serverName, method, params, false)
	if err != nil {
		return nil, err
	}
	var result R
	if err = json.Unmarshal(reply.Result, &result); err != nil {
		return nil, fmt.Errorf("failed to decode %v result: %w", method, err)
	}
	return &result, nil
}

// New creates a client; by default it uses config.Default() and a net/http transport.
func New(options ...Option) *Client {
	ret := &Client{builder: &Builder{}}
	for _, opt := range options {
		opt(ret)
	}
	if ret.config == nil {
		ret.config = config.Default()
	}
	if ret.transport == nil {
		ret.transport = transport.NewHTTP()
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	return ret
}
