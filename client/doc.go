// Package client implements a JSON-RPC 2.0 over HTTP client.
//
// A Client resolves the target server from a config.Store, wraps the call in a
// JSON-RPC envelope carrying the next id of its own counter, POSTs it through a
// pluggable transport.Transport and classifies the outcome:
//   - the unwrapped `result` on success,
//   - *schema.ServerError when the server answered with a JSON-RPC error object,
//   - *schema.TransportError when the exchange failed or the reply is not JSON-RPC,
//   - *schema.ConfigError, before any network activity, when the server cannot be resolved.
//
// When the store is configured to return HTTP responses, classification is skipped
// and Reply.Response carries the raw transport response.
//
// Example:
//
//	store := config.New()
//	_ = store.SetURL("http://localhost:5080/rpc")
//	cli := client.New(client.WithConfig(store))
//	reply, err := cli.Request(ctx, "version", map[string]any{})
//	if err != nil {
//		log.Fatal(schema.ErrorName(err), err)
//	}
//	fmt.Println(string(reply.Result))
package client
