package client

import (
	"context"
)

// Interface defines the exported client operations
type Interface interface {
	// Request calls method on the "main" server
	Request(ctx context.Context, method string, params any) (*Reply, error)

	// RequestTo calls method on the named server
	RequestTo(ctx context.Context, serverName, method string, params any) (*Reply, error)

	// SetExtraHeaders replaces static headers of the named server
	SetExtraHeaders(serverName string, headers map[string]string) error
}

// Ensure Client implements Interface
var _ Interface = (*Client)(nil)
