// Package httpclient builds the HTTP client mtgdex uses to talk to
// the MTG API.
package httpclient

import (
	"net/http"
	"time"

	commonshttp "github.com/flanksource/commons/http"
	"github.com/flanksource/commons/logger"
	"github.com/mtgdex/mtgdex/pkg/config"
)

// UserAgent identifies mtgdex to the API. The API rate-limits per
// client, so a stable agent string keeps requests attributable.
const UserAgent = "mtgdex (+https://github.com/mtgdex/mtgdex)"

// Option configures the HTTP client.
type Option func(*options)

type options struct {
	timeout      time.Duration
	headerLevel  logger.LogLevel
	bodyLevel    logger.LogLevel
	enableLogger bool
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHttpLogging enables HTTP logging with specified levels
func WithHttpLogging(headerLevel, bodyLevel logger.LogLevel) Option {
	return func(o *options) {
		o.headerLevel = headerLevel
		o.bodyLevel = bodyLevel
		o.enableLogger = true
	}
}

// New returns an HTTP client configured for the MTG API: mtgdex
// User-Agent, JSON Accept header and the configured timeout. It uses
// flanksource/commons/http as the transport for consistent logging and
// middleware support; logging defaults to trace levels so normal runs
// stay quiet.
func New(opts ...Option) *http.Client {
	o := &options{
		timeout:      config.DefaultTimeout,
		headerLevel:  logger.Trace1,
		bodyLevel:    logger.Trace2,
		enableLogger: logger.IsTraceEnabled(),
	}

	for _, opt := range opts {
		opt(o)
	}

	transport := commonshttp.NewClient().
		UserAgent(UserAgent).
		Header("Accept", "application/json").
		Timeout(o.timeout)

	if o.enableLogger {
		transport = transport.WithHttpLogging(o.headerLevel, o.bodyLevel)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   o.timeout,
	}
}
