package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"
	"github.com/viant/jsonrpcclient"
	"github.com/viant/jsonrpcclient/schema"
)

// Run issues a single JSON-RPC call described by args and prints its outcome to stdout.
func Run(args []string) error {
	return RunWithWriter(context.Background(), args, os.Stdout)
}

// RunWithWriter is Run with an explicit context and output.
func RunWithWriter(ctx context.Context, args []string, writer io.Writer) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	if options.URL == "" && options.ConfigURL == "" {
		return fmt.Errorf("either url or config is required")
	}
	params, err := loadParams(ctx, options)
	if err != nil {
		return err
	}
	level := slog.LevelWarn
	if options.Verbose {
		level = slog.LevelDebug
	}
	cli, err := jsonrpcclient.NewClient(ctx, &jsonrpcclient.ClientOptions{
		URL:                options.URL,
		ConfigURL:          options.ConfigURL,
		ReturnHTTPResponse: options.Raw,
		Logger:             slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
		Transport: jsonrpcclient.ClientTransport{
			TimeoutSeconds:  options.TimeoutSeconds,
			RequestIDHeader: options.RequestIDHeader,
			RateLimit:       options.RateLimit,
			CookieFile:      options.CookieFile,
		},
	})
	if err != nil {
		return err
	}
	if len(options.Headers) > 0 {
		if err = cli.SetExtraHeaders(options.Server, options.Headers); err != nil {
			return err
		}
	}
	reply, err := cli.RequestTo(ctx, options.Server, options.Method, params)
	if err != nil {
		if name := schema.ErrorName(err); name != "" {
			return fmt.Errorf("%v: %w", name, err)
		}
		return err
	}
	if reply.Response != nil {
		_, err = fmt.Fprintf(writer, "HTTP %v\n%s\n", reply.Response.StatusCode, reply.Response.Body)
		return err
	}
	_, err = fmt.Fprintf(writer, "%s\n", reply.Result)
	return err
}

func loadParams(ctx context.Context, options *Options) (json.RawMessage, error) {
	data := []byte(options.Params)
	if options.ParamsURL != "" {
		var err error
		if data, err = afs.New().DownloadWithURL(ctx, options.ParamsURL); err != nil {
			return nil, fmt.Errorf("failed to load params %v: %w", options.ParamsURL, err)
		}
	}
	if len(data) == 0 {
		return nil, nil
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("params are not valid JSON: %s", data)
	}
	return data, nil
}
