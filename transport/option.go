package transport

import "net/http"

// Option represents HTTP transport option
type Option func(t *HTTP)

// WithHTTPClient sets the http client
func WithHTTPClient(client *http.Client) Option {
	return func(t *HTTP) {
		t.client = client
	}
}

// WithRoundTripper sets the round tripper of the http client
func WithRoundTripper(roundTripper http.RoundTripper) Option {
	return func(t *HTTP) {
		t.ensureClient().Transport = roundTripper
	}
}

// WithCookieJar attaches a cookie jar so that server sessions survive across calls
func WithCookieJar(jar http.CookieJar) Option {
	return func(t *HTTP) {
		t.ensureClient().Jar = jar
	}
}

// WithMaxBodySize limits accepted response body size
func WithMaxBodySize(size int64) Option {
	return func(t *HTTP) {
		if size > 0 {
			t.maxBodySize = size
		}
	}
}

func (t *HTTP) ensureClient() *http.Client {
	if t.client == nil {
		t.client = &http.Client{}
	}
	return t.client
}
