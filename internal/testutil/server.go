package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// RecordedRequest is a request received by an IngestServer.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// IngestServer is a fake ingestion API that records every request and
// answers with a fixed status and body.
type IngestServer struct {
	*httptest.Server

	status int
	body   string

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewIngestServer starts a server answering every request with status and
// body. It is closed when the test ends.
func NewIngestServer(t *testing.T, status int, body string) *IngestServer {
	t.Helper()

	s := &IngestServer{status: status, body: body}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *IngestServer) handle(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   data,
	})
	s.mu.Unlock()

	w.WriteHeader(s.status)
	_, _ = io.WriteString(w, s.body)
}

// Requests returns a copy of the requests received so far.
func (s *IngestServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}
