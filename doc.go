// Package logflare is a small client for the Logflare log ingestion API.
//
// A Client posts batches of events to <base URL>/api/logs in a single
// request per call. There is no retrying, buffering or background delivery:
// callers decide when to batch and whether to retry.
//
//	client, err := logflare.New(logflare.Config{
//		SourceToken: "c8e6f6a8-...",
//		APIKey:      "my-api-key",
//	})
//	if err != nil {
//		return err
//	}
//	resp, err := client.SendEvent(ctx, logflare.Event{"message": "user signed in"})
package logflare
