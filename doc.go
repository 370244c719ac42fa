// Package jsonrpcclient provides a JSON-RPC 2.0 over HTTP client with a registry
// of named servers, static per-server headers and two response modes.
//
// The package glues the config store, the HTTP transport and the dispatching
// client together. Its single entry-point, NewClient, accepts a ClientOptions
// structure that can be populated from CLI flags or configuration files.
//
// Example:
//
//	cli, _ := jsonrpcclient.NewClient(ctx, &jsonrpcclient.ClientOptions{URL: "http://localhost:5080/rpc"})
//	reply, err := cli.Request(ctx, "version", map[string]any{})
//
// Errors are classified as *schema.ConfigError, *schema.ServerError or
// *schema.TransportError; see package client for the rules.
package jsonrpcclient
