package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

const defaultMaxBodySize = 32 * 1024 * 1024

// HTTP sends requests with net/http.
type HTTP struct {
	client      *http.Client
	maxBodySize int64
}

// Send issues the request; any HTTP status is returned as a Response.
func (t *HTTP) Send(ctx context.Context, request *Request) (*Response, error) {
	method := request.Method
	if method == "" {
		method = http.MethodPost
	}
	httpRequest, err := http.NewRequestWithContext(ctx, method, request.URL, bytes.NewReader(request.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, values := range request.Header {
		for _, v := range values {
			httpRequest.Header.Add(k, v)
		}
	}
	httpResponse, err := t.client.Do(httpRequest)
	if err != nil {
		return nil, err
	}
	defer httpResponse.Body.Close()
	body, err := io.ReadAll(io.LimitReader(httpResponse.Body, t.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > t.maxBodySize {
		return nil, fmt.Errorf("response body exceeds %v bytes", t.maxBodySize)
	}
	return &Response{
		StatusCode: httpResponse.StatusCode,
		Status:     httpResponse.Status,
		Header:     httpResponse.Header,
		Body:       body,
	}, nil
}

// NewHTTP creates a net/http transport
func NewHTTP(options ...Option) *HTTP {
	ret := &HTTP{maxBodySize: defaultMaxBodySize}
	for _, opt := range options {
		opt(ret)
	}
	if ret.client == nil {
		ret.client = &http.Client{}
	}
	return ret
}
