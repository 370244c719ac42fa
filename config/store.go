package config

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/jsonrpcclient/internal/collection"
	"github.com/viant/jsonrpcclient/internal/conv"
	"github.com/viant/jsonrpcclient/schema"
	"gopkg.in/yaml.v3"
)

// Recognized configuration keys.
const (
	KeyURL                = "url"
	KeyServers            = "servers"
	KeyReturnHTTPResponse = "returnHttpPromise"
)

var allowedKeys = []string{KeyURL, KeyServers, KeyReturnHTTPResponse}

var errNotObject = errors.New(`Argument of "set" must be an object.`)

// Store holds the server registry and the response mode flag.
type Store struct {
	mux                sync.RWMutex
	registry           *collection.OrderedMap[string, *Server]
	returnHTTPResponse bool
	fs                 afs.Service
}

// Option represents a store option
type Option func(s *Store)

// WithFS sets the file system used by Load
func WithFS(fs afs.Service) Option {
	return func(s *Store) {
		s.fs = fs
	}
}

// New creates an empty store
func New(options ...Option) *Store {
	ret := &Store{registry: collection.NewOrderedMap[string, *Server]()}
	for _, opt := range options {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

var defaultStore = New()

// Default returns the process wide store.
func Default() *Store {
	return defaultStore
}

// patch is a validated, not yet applied, Set argument.
type patch struct {
	servers            []*Server
	replaceServers     bool
	returnHTTPResponse *bool
}

// Set validates and applies a configuration patch; nothing is applied when any key is invalid.
func (s *Store) Set(args any) error {
	object, ok := conv.AsObject(args)
	if !ok {
		return errNotObject
	}
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if !isAllowed(key) {
			return schema.NewConfigError(fmt.Sprintf("Invalid configuration key %q. Allowed keys are: %s", key, strings.Join(allowedKeys, ", ")))
		}
	}
	update := &patch{}
	for _, key := range keys {
		value := object[key]
		switch key {
		case KeyURL:
			URL, ok := value.(string)
			if !ok {
				return schema.NewConfigError(`Argument "url" must be a string.`)
			}
			if URL == "" {
				return schema.NewConfigError(`Argument "url" must not be empty.`)
			}
			servers, err := buildServers([]*Server{{Name: DefaultServer, URL: URL}})
			if err != nil {
				return err
			}
			update.servers, update.replaceServers = servers, true
		case KeyServers:
			servers, err := parseServers(value)
			if err != nil {
				return err
			}
			update.servers, update.replaceServers = servers, true
		case KeyReturnHTTPResponse:
			flag, ok := value.(bool)
			if !ok {
				return schema.NewConfigError(`Argument "returnHttpPromise" must be a boolean.`)
			}
			update.returnHTTPResponse = &flag
		}
	}
	s.apply(update)
	return nil
}

// SetURL replaces the registry with a single "main" server.
func (s *Store) SetURL(URL string) error {
	return s.Set(map[string]any{KeyURL: URL})
}

// SetServers replaces the registry.
func (s *Store) SetServers(servers ...*Server) error {
	return s.Set(map[string]any{KeyServers: servers})
}

// SetReturnHTTPResponse sets whether requests return the raw transport response.
func (s *Store) SetReturnHTTPResponse(flag bool) error {
	return s.Set(map[string]any{KeyReturnHTTPResponse: flag})
}

func (s *Store) apply(update *patch) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if update.replaceServers {
		registry := collection.NewOrderedMap[string, *Server]()
		for _, server := range update.servers {
			registry.Put(server.Name, server)
		}
		s.registry = registry
	}
	if update.returnHTTPResponse != nil {
		s.returnHTTPResponse = *update.returnHTTPResponse
	}
}

// Get returns a snapshot of the current configuration.
func (s *Store) Get() *Config {
	s.mux.RLock()
	defer s.mux.RUnlock()
	ret := &Config{ReturnHTTPResponse: s.returnHTTPResponse, Servers: []*Server{}}
	for _, server := range s.registry.Values() {
		ret.Servers = append(ret.Servers, server.Clone())
	}
	return ret
}

// ReturnHTTPResponse reports whether requests bypass result classification.
func (s *Store) ReturnHTTPResponse() bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.returnHTTPResponse
}

// SetExtraHeaders replaces headers of the named server.
func (s *Store) SetExtraHeaders(serverName string, headers map[string]string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	server, ok := s.registry.Get(serverName)
	if !ok {
		return notConfigured(serverName)
	}
	updated := server.Clone()
	updated.Headers = make(map[string]string, len(headers))
	for k, v := range headers {
		updated.Headers[k] = v
	}
	s.registry.Put(serverName, updated)
	return nil
}

// Resolve returns a copy of the named server; an empty name selects DefaultServer.
func (s *Store) Resolve(serverName string) (*Server, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	if s.registry.Len() == 0 {
		return nil, schema.NewConfigError("Please configure the jsonrpc client first.")
	}
	if serverName == "" {
		serverName = DefaultServer
	}
	var found *Server
	s.registry.Range(func(name string, server *Server) bool {
		if name == serverName {
			found = server
			return false
		}
		return true
	})
	if found == nil {
		return nil, notConfigured(serverName)
	}
	return found.Clone(), nil
}

// Load reads a YAML or JSON document from URL and applies it with Set.
func (s *Store) Load(ctx context.Context, URL string) error {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	var document any
	if err = yaml.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return s.Set(document)
}

func notConfigured(serverName string) error {
	return schema.NewConfigError(fmt.Sprintf("Server %q has not been configured.", serverName))
}

func isAllowed(key string) bool {
	for _, candidate := range allowedKeys {
		if candidate == key {
			return true
		}
	}
	return false
}

func parseServers(value any) ([]*Server, error) {
	var candidates []*Server
	switch actual := value.(type) {
	case []*Server:
		candidates = actual
	case []Server:
		for i := range actual {
			candidates = append(candidates, &actual[i])
		}
	default:
		items, ok := conv.AsSlice(value)
		if !ok {
			return nil, schema.NewConfigError(`Argument "servers" must be an array.`)
		}
		for _, item := range items {
			server, err := parseServer(item)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, server)
		}
	}
	return buildServers(candidates)
}

func parseServer(item any) (*Server, error) {
	switch actual := item.(type) {
	case *Server:
		return actual, nil
	case Server:
		return &actual, nil
	}
	object, ok := conv.AsObject(item)
	if !ok {
		return nil, schema.NewConfigError(`Item in "servers" argument must be an object.`)
	}
	server := &Server{}
	server.Name, _ = object["name"].(string)
	server.URL, _ = object["url"].(string)
	if raw, ok := object["headers"]; ok && raw != nil {
		headers, ok := conv.AsStringMap(raw)
		if !ok {
			return nil, schema.NewConfigError(`Item in "servers" argument must have string "headers" values.`)
		}
		server.Headers = headers
	}
	return server, nil
}

// buildServers validates candidates and returns owned copies.
func buildServers(candidates []*Server) ([]*Server, error) {
	seen := map[string]bool{}
	result := make([]*Server, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate == nil {
			return nil, schema.NewConfigError(`Item in "servers" argument must be an object.`)
		}
		if candidate.Name == "" {
			return nil, schema.NewConfigError(`Item in "servers" argument must contain "name" field.`)
		}
		if candidate.URL == "" {
			return nil, schema.NewConfigError(`Item in "servers" argument must contain "url" field.`)
		}
		if seen[candidate.Name] {
			return nil, schema.NewConfigError(fmt.Sprintf("Server %q is configured more than once.", candidate.Name))
		}
		seen[candidate.Name] = true
		result = append(result, candidate.Clone())
	}
	return result, nil
}
