package config

import (
	"net/http"
	"sort"
	"strings"
)

const (
	// DefaultServer is the server name used when a request does not name one.
	DefaultServer = "main"
	// ContentType is always sent, whatever the server headers say.
	ContentType = "application/json"
)

// Server represents a named JSON-RPC endpoint.
type Server struct {
	Name    string            `yaml:"name" json:"name"`
	URL     string            `yaml:"url" json:"url"`
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
}

// Clone returns a deep copy of the server.
func (s *Server) Clone() *Server {
	headers := make(map[string]string, len(s.Headers))
	for k, v := range s.Headers {
		headers[k] = v
	}
	return &Server{Name: s.Name, URL: s.URL, Headers: headers}
}

// RequestHeader returns the outbound header set: server headers with Content-Type forced.
// Names differing only in case collapse to one header; the one sorting last wins.
func (s *Server) RequestHeader() http.Header {
	names := make([]string, 0, len(s.Headers))
	for k := range s.Headers {
		names = append(names, k)
	}
	sort.Strings(names)
	header := make(http.Header, len(names)+1)
	for _, k := range names {
		if strings.EqualFold(k, "Content-Type") {
			continue
		}
		header.Set(k, s.Headers[k])
	}
	header.Set("Content-Type", ContentType)
	return header
}

// Config represents a client configuration snapshot.
type Config struct {
	Servers            []*Server `yaml:"servers" json:"servers"`
	ReturnHTTPResponse bool      `yaml:"returnHttpPromise" json:"returnHttpPromise"`
}

