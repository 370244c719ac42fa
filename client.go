package jsonrpcclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/viant/jsonrpcclient/client"
	"github.com/viant/jsonrpcclient/config"
	"github.com/viant/jsonrpcclient/transport"
	"golang.org/x/time/rate"
)

// ClientOptions
//
// defines options for configuring a JSON-RPC client.
type ClientOptions struct {
	URL                string           `yaml:"url,omitempty" json:"url,omitempty"  short:"u" long:"url" description:"jsonrpc server url, registered as main"`
	ConfigURL          string           `yaml:"configURL,omitempty" json:"configURL,omitempty"  short:"c" long:"config" description:"client config (yaml or json) URL"`
	Servers            []*config.Server `yaml:"servers,omitempty" json:"servers,omitempty"`
	ReturnHTTPResponse bool             `yaml:"returnHttpPromise,omitempty" json:"returnHttpPromise,omitempty"  short:"r" long:"raw" description:"return raw http response"`
	Transport          ClientTransport  `yaml:"transport,omitempty" json:"transport,omitempty"`

	// Store, if set, is configured and used instead of a new store.
	Store *config.Store `yaml:"-" json:"-"`
	// Logger defaults to slog.Default().
	Logger *slog.Logger `yaml:"-" json:"-"`
	// HTTPTransport, if set, replaces the net/http transport; middlewares still apply.
	HTTPTransport transport.Transport `yaml:"-" json:"-"`
}

// ClientTransport defines HTTP transport options for a JSON-RPC client.
type ClientTransport struct {
	TimeoutSeconds  int     `yaml:"timeoutSeconds,omitempty" json:"timeoutSeconds,omitempty"  short:"t" long:"timeout" description:"http timeout in seconds"`
	RequestIDHeader string  `yaml:"requestIDHeader,omitempty" json:"requestIDHeader,omitempty"  long:"request-id" description:"header stamped with a random request id"`
	RateLimit       float64 `yaml:"rateLimit,omitempty" json:"rateLimit,omitempty"  long:"rate" description:"max requests per second"`
	RateBurst       int     `yaml:"rateBurst,omitempty" json:"rateBurst,omitempty"  long:"burst" description:"rate limit burst"`
	CookieFile      string  `yaml:"cookieFile,omitempty" json:"cookieFile,omitempty"  long:"cookies" description:"file persisting session cookies"`
	MaxBodySize     int64   `yaml:"maxBodySize,omitempty" json:"maxBodySize,omitempty"`
}

// Init fills in defaults in place; NewClient calls it on a copy of the caller's options.
func (c *ClientOptions) Init() {
	if c.Store == nil {
		c.Store = config.New()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Transport.RateLimit > 0 && c.Transport.RateBurst <= 0 {
		c.Transport.RateBurst = 1
	}
}

// NewClient creates a JSON-RPC client with config and transport set up from ClientOptions.
// Unless options.Store is set, every client gets its own store.
func NewClient(ctx context.Context, opts *ClientOptions) (*client.Client, error) {
	options := &ClientOptions{}
	if opts != nil {
		*options = *opts
	}
	options.Init()
	if err := options.configure(ctx); err != nil {
		return nil, err
	}
	httpTransport, err := options.getTransport()
	if err != nil {
		return nil, err
	}
	return client.New(
		client.WithConfig(options.Store),
		client.WithTransport(httpTransport, options.Middlewares()...),
		client.WithLogger(options.Logger),
	), nil
}

// configure applies config URL, servers, URL and response mode, in that order.
func (c *ClientOptions) configure(ctx context.Context) error {
	store := c.Store
	if c.ConfigURL != "" {
		if err := store.Load(ctx, c.ConfigURL); err != nil {
			return err
		}
	}
	if len(c.Servers) > 0 {
		if err := store.SetServers(c.Servers...); err != nil {
			return err
		}
	}
	if c.URL != "" {
		if err := store.SetURL(c.URL); err != nil {
			return err
		}
	}
	if c.ReturnHTTPResponse {
		return store.SetReturnHTTPResponse(true)
	}
	return nil
}

func (c *ClientOptions) getTransport() (transport.Transport, error) {
	if c.HTTPTransport != nil {
		return c.HTTPTransport, nil
	}
	httpClient := &http.Client{}
	if c.Transport.TimeoutSeconds > 0 {
		httpClient.Timeout = time.Duration(c.Transport.TimeoutSeconds) * time.Second
	}
	if c.Transport.CookieFile != "" {
		jar, err := transport.NewFileJar(c.Transport.CookieFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}
	return transport.NewHTTP(
		transport.WithHTTPClient(httpClient),
		transport.WithMaxBodySize(c.Transport.MaxBodySize),
	), nil
}

// Middlewares builds transport middlewares based on ClientOptions.Transport.
func (c *ClientOptions) Middlewares() []transport.Middleware {
	result := []transport.Middleware{transport.Logging(c.Logger)}
	if c.Transport.RateLimit > 0 {
		result = append(result, transport.RateLimit(rate.NewLimiter(rate.Limit(c.Transport.RateLimit), c.Transport.RateBurst)))
	}
	if c.Transport.RequestIDHeader != "" {
		result = append(result, transport.RequestID(c.Transport.RequestIDHeader))
	}
	return result
}
