package logflare

import "github.com/rs/zerolog"

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests. Defaults to
// http.DefaultClient.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithLogger sets the logger used for diagnostics. Defaults to a no-op
// logger, or a stderr debug logger when built with the logflare_debug tag.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = log
	}
}
