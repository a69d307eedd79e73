package testutil

import (
	"net/http"

	"github.com/GabrielNunesIT/logflare-go/internal/mocks"
)

// HTTPDoer mirrors logflare.HTTPDoer for mock generation.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ HTTPDoer = (*mocks.HTTPDoer)(nil)
