package logflare

import (
	"errors"
	"net/url"

	"github.com/go-playground/validator/v10"
)

// DefaultBaseURL is the production ingestion endpoint.
const DefaultBaseURL = "https://api.logflare.app"

// ErrorHandler is notified of every failed send with the payload that was
// being sent and the returned error. It must not be relied on for control
// flow; the error is still returned to the caller.
type ErrorHandler func(payload Payload, err error)

// Config holds the settings required to create a Client.
type Config struct {
	// SourceToken identifies the Logflare source the events are sent to.
	SourceToken string `validate:"required"`

	// APIKey authorizes ingestion requests.
	APIKey string `validate:"required"`

	// BaseURL overrides DefaultBaseURL. Must be absolute.
	BaseURL string `validate:"omitempty,url"`

	// OnError is called on every send failure. Optional.
	OnError ErrorHandler
}

var configValidator = validator.New()

// configMessages maps a failing Config field to the error reported for it.
var configMessages = map[string]string{
	"SourceToken": "source token not configured",
	"APIKey":      "API key not configured",
	"BaseURL":     "invalid base URL",
}

// validate checks cfg and returns the resolved base URL.
func (cfg Config) validate() (*url.URL, error) {
	if err := configValidator.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			if msg, ok := configMessages[verrs[0].Field()]; ok {
				return nil, &Error{Kind: KindConfig, Message: msg}
			}
		}
		return nil, &Error{Kind: KindConfig, Message: "invalid configuration", Err: err}
	}

	raw := cfg.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, &Error{Kind: KindConfig, Message: "invalid base URL", Err: err}
	}
	return base, nil
}
