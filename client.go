package logflare

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	ingestPath   = "/api/logs"
	acceptHeader = "application/json, text/plain, */*"
)

// Client sends log events to the Logflare ingestion API.
// A Client is immutable and safe for concurrent use.
type Client struct {
	sourceToken string
	apiKey      string
	baseURL     *url.URL
	onError     ErrorHandler
	client      HTTPDoer
	logger      zerolog.Logger
}

// New validates cfg and creates a Client. It performs no network activity.
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	c := &Client{
		sourceToken: cfg.SourceToken,
		apiKey:      cfg.APIKey,
		baseURL:     base,
		onError:     cfg.OnError,
		client:      http.DefaultClient,
		logger:      defaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the resolved base URL of the ingestion API.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// SendEvent sends a single event. It is equivalent to SendEvents with a
// one-element batch.
func (c *Client) SendEvent(ctx context.Context, event Event) (Response, error) {
	return c.SendEvents(ctx, []Event{event})
}

// SendEvents posts batch in a single request. An empty batch is sent as is.
//
// On failure the configured ErrorHandler is called with the payload before
// the error is returned. The returned error is always an *Error.
func (c *Client) SendEvents(ctx context.Context, batch []Event) (Response, error) {
	payload := Payload{Batch: batch}
	log := c.logger.With().Str("request_id", uuid.NewString()).Logger()

	log.Debug().Int("events", len(batch)).Msg("sending batch")

	resp, err := c.send(ctx, payload)
	if err != nil {
		c.fail(log, payload, err)
		return Response{}, err
	}
	return resp, nil
}

// endpoint builds the ingestion URL for this client.
func (c *Client) endpoint() (*url.URL, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("source", c.sourceToken)

	u := c.baseURL.ResolveReference(&url.URL{Path: ingestPath, RawQuery: query.Encode()})
	if u.Scheme == "" || u.Host == "" {
		return nil, &Error{Kind: KindRequest, Message: "invalid URL"}
	}
	return u, nil
}

// send performs the request and interprets the response.
func (c *Client) send(ctx context.Context, payload Payload) (Response, error) {
	u, err := c.endpoint()
	if err != nil {
		return Response{}, err
	}

	data, err := json.Marshal(payload.wireBatch())
	if err != nil {
		return Response{}, &Error{
			Kind:    KindSerialization,
			Message: fmt.Sprintf("JSON serialization failed: %v", err),
			Err:     err,
		}
	}

	target := u.String()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(data))
	if err != nil {
		return Response{}, &Error{Kind: KindRequest, Message: "invalid URL", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", acceptHeader)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return Response{}, transportError(err)
	}

	var raw []byte
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
		raw, err = io.ReadAll(resp.Body)
		if err != nil {
			return Response{}, transportError(err)
		}
	}

	body := decodeBody(raw)

	if resp == nil || resp.StatusCode == 0 {
		return Response{}, &Error{Kind: KindResponse, Message: "invalid response", Body: body}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, &Error{
			Kind:     KindResponse,
			Message:  fmt.Sprintf("network response was not ok for %q", target),
			Response: newResponseInfo(resp),
			Body:     body,
		}
	}

	obj, _ := body.(map[string]any)
	message, ok := obj["message"].(string)
	if !ok {
		return Response{}, &Error{
			Kind:     KindResponse,
			Message:  "invalid JSON response",
			Response: newResponseInfo(resp),
			Body:     body,
		}
	}

	return Response{Message: message}, nil
}

// fail reports err through the diagnostics logger and the error handler.
// A panicking handler does not replace err.
func (c *Client) fail(log zerolog.Logger, payload Payload, err error) {
	ev := log.Debug().Err(err)
	var lerr *Error
	if errors.As(err, &lerr) {
		ev = ev.Stringer("kind", lerr.Kind)
	}
	ev.Msg("logflare request failed")

	if c.onError == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("error handler panicked")
		}
	}()
	c.onError(payload, err)
}

func transportError(err error) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: fmt.Sprintf("request failed: %v", err),
		Err:     err,
	}
}

// decodeBody parses raw as JSON. Invalid or empty bodies yield nil.
func decodeBody(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}
