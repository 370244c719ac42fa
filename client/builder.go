package client

import (
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/viant/jsonrpc"
)

// Builder creates JSON-RPC request envelopes with strictly increasing ids.
type Builder struct {
	seq atomic.Uint64
}

// Next returns an envelope carrying the next id; nil params are omitted.
func (b *Builder) Next(method string, params any) (*jsonrpc.Request, error) {
	id := b.seq.Add(1)
	request := &jsonrpc.Request{Jsonrpc: jsonrpc.Version, Id: id, Method: method}
	if params == nil {
		return request, nil
	}
	raw, ok := params.(json.RawMessage)
	if !ok {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %v params: %w", method, err)
		}
		raw = data
	}
	request.Params = raw
	return request, nil
}

// Last returns the most recently issued id, 0 when none was issued.
func (b *Builder) Last() uint64 {
	return b.seq.Load()
}
