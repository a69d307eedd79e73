package logflare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielNunesIT/logflare-go"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		cfg           logflare.Config
		expectedError string
		expectedURL   string
	}{
		{
			name:        "Defaults",
			cfg:         logflare.Config{SourceToken: "source", APIKey: "key"},
			expectedURL: logflare.DefaultBaseURL,
		},
		{
			name:        "Custom Base URL",
			cfg:         logflare.Config{SourceToken: "source", APIKey: "key", BaseURL: "http://localhost:4000"},
			expectedURL: "http://localhost:4000",
		},
		{
			name:          "Empty Source Token",
			cfg:           logflare.Config{APIKey: "key"},
			expectedError: "source token not configured",
		},
		{
			name:          "Empty API Key",
			cfg:           logflare.Config{SourceToken: "source"},
			expectedError: "API key not configured",
		},
		{
			name:          "Both Empty",
			cfg:           logflare.Config{},
			expectedError: "source token not configured",
		},
		{
			name:          "Relative Base URL",
			cfg:           logflare.Config{SourceToken: "source", APIKey: "key", BaseURL: "/api"},
			expectedError: "invalid base URL",
		},
		{
			name:          "Malformed Base URL",
			cfg:           logflare.Config{SourceToken: "source", APIKey: "key", BaseURL: "://nope"},
			expectedError: "invalid base URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := logflare.New(tt.cfg)
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Nil(t, client)
				assert.ErrorIs(t, err, logflare.ErrConfig)
				assert.Contains(t, err.Error(), tt.expectedError)

				var lerr *logflare.Error
				require.ErrorAs(t, err, &lerr)
				assert.Equal(t, logflare.KindConfig, lerr.Kind)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedURL, client.BaseURL())
		})
	}
}

func TestNew_DoesNotContactServer(t *testing.T) {
	// Any request would fail the test through the mock's expectations.
	doer := newMockDoer(t)

	_, err := logflare.New(
		logflare.Config{SourceToken: "source", APIKey: "key"},
		logflare.WithHTTPClient(doer),
	)
	require.NoError(t, err)
}
