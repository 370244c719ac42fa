package transport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// DefaultRequestIDHeader is the header set by RequestID when no name is given.
const DefaultRequestIDHeader = "X-Request-Id"

// Logging logs every exchange with its status and duration.
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Transport) Transport {
		return Func(func(ctx context.Context, request *Request) (*Response, error) {
			start := time.Now()
			response, err := next.Send(ctx, request)
			elapsed := time.Since(start)
			if err != nil {
				logger.WarnContext(ctx, "http exchange failed", "url", request.URL, "duration", elapsed, "error", err)
				return response, err
			}
			if response == nil {
				logger.WarnContext(ctx, "http exchange without response", "url", request.URL, "duration", elapsed)
				return nil, nil
			}
			logger.DebugContext(ctx, "http exchange", "url", request.URL, "status", response.StatusCode, "bytes", len(response.Body), "duration", elapsed)
			return response, nil
		})
	}
}

// RateLimit delays requests so that they do not exceed limiter's rate.
func RateLimit(limiter *rate.Limiter) Middleware {
	return func(next Transport) Transport {
		return Func(func(ctx context.Context, request *Request) (*Response, error) {
			if err := limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit: %w", err)
			}
			return next.Send(ctx, request)
		})
	}
}

// RequestID stamps each request with a random id header unless the caller already set one.
func RequestID(header string) Middleware {
	if header == "" {
		header = DefaultRequestIDHeader
	}
	return func(next Transport) Transport {
		return Func(func(ctx context.Context, request *Request) (*Response, error) {
			if request.Header.Get(header) != "" {
				return next.Send(ctx, request)
			}
			stamped := *request
			stamped.Header = request.Header.Clone()
			if stamped.Header == nil {
				stamped.Header = make(map[string][]string)
			}
			stamped.Header.Set(header, uuid.NewString())
			return next.Send(ctx, &stamped)
		})
	}
}
