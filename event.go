package logflare

// Event is a single log event. Values can be any JSON-compatible type.
type Event map[string]any

// Payload is the request body sent to the ingestion endpoint.
type Payload struct {
	Batch []Event `json:"batch"`
}

// wireBatch returns the batch to serialize. A nil batch is sent as [].
func (p Payload) wireBatch() Payload {
	if p.Batch == nil {
		return Payload{Batch: []Event{}}
	}
	return p
}

// Response is the result of a successful ingestion request.
type Response struct {
	// Message is the "message" field of the server's JSON reply.
	Message string
}
