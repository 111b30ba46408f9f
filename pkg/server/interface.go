/*
Package server implements msgpack IPC for prompt classification services.

The server provides a minimal interface for tag classification, rearranging
and completion using msgpack serialization over stdin/stdout.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout. Each message carries
an ID field, an op selector, and the fields the operation needs.

Classification requests use this structure:

	{"id": "req_001", "op": "classify", "text": "solo, 1girl, banana"}

The server responds with labeled spans in canonical category order:

	{"id": "req_001", "s": [{"t": "1girl", "l": "tag"}, {"t": ", ", "l": ""}, ...], "c": 5, "t": 85}

Rearrange requests return the reordered prompt as plain text:

	{"id": "req_002", "op": "arrange", "text": "holo, wolf ears"}

Completion requests suggest canonical tags for a prefix, ranked by post
count:

	{"id": "req_003", "op": "complete", "p": "1gi", "l": 10}

Error conditions (unknown op, oversized input, missing prefix) come back as
error responses with the request's ID; classification itself never fails on
arbitrary prompt text. Messages are processed synchronously with timing info
in microseconds included in responses.
*/
package server

// Request is an incoming IPC message. Op selects the operation: "classify"
// and "arrange" read Text, "complete" reads Prefix and Limit, "health" needs
// nothing else.
type Request struct {
	ID     string `msgpack:"id"`
	Op     string `msgpack:"op"`
	Text   string `msgpack:"text,omitempty"`
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// SpanEntry is one classified span: a term with its label, or a ", "
// separator with an empty label.
type SpanEntry struct {
	Text  string `msgpack:"t"`
	Label string `msgpack:"l"`
}

// ClassifyResponse carries the labeled spans for a classify request.
type ClassifyResponse struct {
	ID        string      `msgpack:"id"`
	Spans     []SpanEntry `msgpack:"s"`
	Count     int         `msgpack:"c"`
	TimeTaken int64       `msgpack:"t"`
}

// ArrangeResponse carries the reordered prompt for an arrange request.
type ArrangeResponse struct {
	ID        string `msgpack:"id"`
	Text      string `msgpack:"text"`
	TimeTaken int64  `msgpack:"t"`
}

// CompletionSuggestion is one ranked tag suggestion.
type CompletionSuggestion struct {
	Tag       string `msgpack:"w"`
	PostCount int    `msgpack:"n"`
	Rank      uint16 `msgpack:"r"`
}

// CompletionResponse carries ranked suggestions for a complete request.
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// StatusResponse reports readiness and health.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse represents an IPC error
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Error string `msgpack:"error"`
}
