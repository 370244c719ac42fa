package jsonrpcclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpcclient"
	"github.com/viant/jsonrpcclient/config"
	"github.com/viant/jsonrpcclient/schema"
)

func startTestServer(t *testing.T, version string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request struct {
			Id     uint64 `json:"id"`
			Method string `json:"method"`
		}
		_ = json.NewDecoder(r.Body).Decode(&request)
		result := map[string]any{"version": version, "requestId": r.Header.Get("X-Trace-Id")}
		_ = json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": request.Id, "result": result})
	}))
}

func TestNewClient(t *testing.T) {
	first := startTestServer(t, "0.42.666")
	defer first.Close()
	second := startTestServer(t, "6.1.23")
	defer second.Close()

	location := filepath.Join(t.TempDir(), "client.yaml")
	document := "servers:\n  - name: main\n    url: " + first.URL + "\n  - name: second\n    url: " + second.URL + "\n"
	require.NoError(t, os.WriteFile(location, []byte(document), 0o644))

	ctx := context.Background()
	cli, err := jsonrpcclient.NewClient(ctx, &jsonrpcclient.ClientOptions{
		ConfigURL: location,
		Transport: jsonrpcclient.ClientTransport{RequestIDHeader: "X-Trace-Id", RateLimit: 100, TimeoutSeconds: 5},
	})
	require.NoError(t, err)

	var testCases = []struct {
		description string
		server      string
		expect      string
	}{
		{description: "default server", expect: "0.42.666"},
		{description: "second server", server: "second", expect: "6.1.23"},
	}
	for _, testCase := range testCases {
		reply, err := cli.RequestTo(ctx, testCase.server, "version", map[string]any{})
		require.NoError(t, err, testCase.description)
		actual := map[string]string{}
		require.NoError(t, json.Unmarshal(reply.Result, &actual), testCase.description)
		assert.Equal(t, testCase.expect, actual["version"], testCase.description)
		assert.Len(t, actual["requestId"], 36, testCase.description)
	}
}

func TestNewClient_URLOverridesConfig(t *testing.T) {
	server := startTestServer(t, "1.0")
	defer server.Close()
	store := config.New()
	cli, err := jsonrpcclient.NewClient(context.Background(), &jsonrpcclient.ClientOptions{
		Servers:            []*config.Server{{Name: "other", URL: "http://does.not.matter"}},
		URL:                server.URL,
		ReturnHTTPResponse: true,
		Store:              store,
	})
	require.NoError(t, err)
	cfg := store.Get()
	require.Len(t, cfg.Servers, 1)
	assert.Equal(t, "main", cfg.Servers[0].Name)
	assert.True(t, cfg.ReturnHTTPResponse)

	reply, err := cli.Request(context.Background(), "version", nil)
	require.NoError(t, err)
	require.NotNil(t, reply.Response)
	assert.Equal(t, http.StatusOK, reply.Response.StatusCode)
}

func TestNewClient_InvalidConfig(t *testing.T) {
	location := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(location, []byte(`{"servers": {"name": "main"}}`), 0o644))
	_, err := jsonrpcclient.NewClient(context.Background(), &jsonrpcclient.ClientOptions{ConfigURL: location})
	require.Error(t, err)
	assert.True(t, schema.IsConfigError(err))
	assert.Equal(t, `Argument "servers" must be an array.`, err.Error())
}

func TestNewClient_SharedOptions(t *testing.T) {
	server := startTestServer(t, "1.0")
	defer server.Close()
	options := &jsonrpcclient.ClientOptions{URL: server.URL}
	first, err := jsonrpcclient.NewClient(context.Background(), options)
	require.NoError(t, err)
	second, err := jsonrpcclient.NewClient(context.Background(), options)
	require.NoError(t, err)
	assert.Nil(t, options.Store)
	assert.NotSame(t, first.Config(), second.Config())

	require.NoError(t, first.Config().SetURL("http://other"))
	assert.Equal(t, server.URL, second.Config().Get().Servers[0].URL)
}
