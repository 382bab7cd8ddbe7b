package api

import (
	"time"

	"github.com/artfolio/artfolio-cli/internal/client/sessionstore"
	"github.com/artfolio/artfolio-cli/internal/logging"
)

const (
	defaultRequestTimeout     = 30 * time.Second
	defaultReportPollInterval = 1500 * time.Millisecond
	defaultReportPollTimeout  = 2 * time.Minute
)

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL            string
	RequestTimeout     time.Duration
	ReportPollInterval time.Duration
	ReportPollTimeout  time.Duration
}

// Client talks to the Artfolio backend. All traffic goes through the
// Gateway, so every method inherits token attachment and the 401
// invalidation policy. Methods never store tokens themselves; that is the
// credential flows' job (see the services package).
type Client struct {
	gw *Gateway

	pollInterval time.Duration
	pollTimeout  time.Duration
}

func New(opts Options, store sessionstore.Store, log logging.Logger) *Client {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if opts.ReportPollInterval <= 0 {
		opts.ReportPollInterval = defaultReportPollInterval
	}
	if opts.ReportPollTimeout <= 0 {
		opts.ReportPollTimeout = defaultReportPollTimeout
	}

	return &Client{
		gw:           NewGateway(opts.BaseURL, store, log, opts.RequestTimeout),
		pollInterval: opts.ReportPollInterval,
		pollTimeout:  opts.ReportPollTimeout,
	}
}

// Gateway exposes the underlying gateway for callers that need raw access.
func (c *Client) Gateway() *Gateway {
	return c.gw
}
