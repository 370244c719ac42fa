package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpcclient/schema"
	"github.com/viant/jsonrpcclient/transport"
)

// envelope is a loosely decoded JSON-RPC response.
type envelope struct {
	Jsonrpc   string
	Result    json.RawMessage
	Error     *jsonrpc.Error
	hasResult bool
}

// decodeEnvelope decodes body as a JSON object; it reports false for any other shape.
func decodeEnvelope(body []byte) (*envelope, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, false
	}
	ret := &envelope{}
	if raw, ok := fields["jsonrpc"]; ok {
		_ = json.Unmarshal(raw, &ret.Jsonrpc)
	}
	ret.Result, ret.hasResult = fields["result"]
	if raw, ok := fields["error"]; ok && !isNull(raw) {
		ret.Error = decodeError(raw)
	}
	return ret, true
}

func decodeError(raw json.RawMessage) *jsonrpc.Error {
	rpcError := &jsonrpc.Error{}
	if err := json.Unmarshal(raw, rpcError); err != nil {
		return jsonrpc.NewInternalError(fmt.Sprintf("invalid error object: %s", raw), nil)
	}
	return rpcError
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Classify maps one transport outcome to either the unwrapped result, a
// *schema.ServerError or a *schema.TransportError.
func Classify(URL string, response *transport.Response, sendErr error) (json.RawMessage, error) {
	if sendErr != nil || response == nil || response.StatusCode == 0 {
		return nil, schema.NewTransportError("Connection refused at "+URL, 0, nil, sendErr)
	}
	status, body := response.StatusCode, response.Body
	switch {
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		return classifySuccess(URL, status, body)
	case status == http.StatusNotFound:
		return nil, schema.NewTransportError("404 not found at "+URL, status, body, nil)
	case status == http.StatusInternalServerError:
		if reply, ok := decodeEnvelope(body); ok && reply.Jsonrpc == jsonrpc.Version {
			if reply.Error == nil {
				return nil, schema.NewServerError(jsonrpc.NewInternalError("500 internal server error at "+URL, nil))
			}
			return nil, schema.NewServerError(reply.Error)
		}
		return nil, schema.NewTransportError(fmt.Sprintf("500 internal server error at %v: %s", URL, body), status, body, nil)
	default:
		return nil, schema.NewTransportError(fmt.Sprintf("Unknown error. HTTP status: %v, data: %s", status, body), status, body, nil)
	}
}

func classifySuccess(URL string, status int, body []byte) (json.RawMessage, error) {
	reply, ok := decodeEnvelope(body)
	if !ok {
		return nil, invalidResponse(URL, status, body)
	}
	if reply.Error != nil {
		return nil, schema.NewServerError(reply.Error)
	}
	if reply.hasResult {
		return reply.Result, nil
	}
	return nil, invalidResponse(URL, status, body)
}

func invalidResponse(URL string, status int, body []byte) error {
	return schema.NewTransportError(fmt.Sprintf("Invalid JSON-RPC response from %v: %s", URL, body), status, body, nil)
}
