package logflare_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/GabrielNunesIT/logflare-go"
)

func ExampleClient_SendEvent() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"message":"Logged!"}`)
	}))
	defer srv.Close()

	client, err := logflare.New(logflare.Config{
		SourceToken: "source-token",
		APIKey:      "api-key",
		BaseURL:     srv.URL,
	})
	if err != nil {
		panic(err)
	}

	resp, err := client.SendEvent(context.Background(), logflare.Event{
		"message":  "user signed in",
		"metadata": map[string]any{"user_id": 42},
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(resp.Message)
	// Output: Logged!
}

func ExampleNew_errorHandler() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client, err := logflare.New(logflare.Config{
		SourceToken: "source-token",
		APIKey:      "api-key",
		BaseURL:     srv.URL,
		OnError: func(payload logflare.Payload, err error) {
			fmt.Printf("dropped %d events\n", len(payload.Batch))
		},
	})
	if err != nil {
		panic(err)
	}

	_, err = client.SendEvents(context.Background(), []logflare.Event{
		{"message": "one"},
		{"message": "two"},
	})

	var lerr *logflare.Error
	if errors.As(err, &lerr) && lerr.Response != nil {
		fmt.Println(lerr.Response.StatusCode)
	}
	// Output:
	// dropped 2 events
	// 403
}
