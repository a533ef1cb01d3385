/*
Package server implements msgpack IPC for the prefix index.

The protocol is a stream of msgpack-encoded request maps on stdin and
response maps on stdout, processed synchronously one at a time. Each
request carries an id echoed back in the response, an op selecting the
operation, and the operands the op needs:

	{"id": "r1", "op": "complete", "p": "ca", "l": 10}
	{"id": "r2", "op": "insert", "w": "cat", "f": 5.0}
	{"id": "r3", "op": "remove", "w": "cat"}
	{"id": "r4", "op": "contains", "w": "cat"}
	{"id": "r5", "op": "stats"}

Completion responses include the elapsed time in microseconds:

	{"id": "r1", "s": [{"w": "car", "f": 5}, {"w": "cat", "f": 5}], "c": 2, "t": 140}

Invalid requests get an error response with a code instead of tearing
the stream down; only a broken transport ends the loop.
*/
package server

// Request ops.
const (
	OpComplete = "complete"
	OpInsert   = "insert"
	OpRemove   = "remove"
	OpContains = "contains"
	OpStats    = "stats"
)

// Request is one client message.
type Request struct {
	ID     string  `msgpack:"id"`
	Op     string  `msgpack:"op"`
	Prefix string  `msgpack:"p,omitempty"`
	Word   string  `msgpack:"w,omitempty"`
	Weight float64 `msgpack:"f,omitempty"`
	Limit  int     `msgpack:"l,omitempty"`
}

// ResponseSuggestion is one ranked completion in a response.
type ResponseSuggestion struct {
	Word   string  `msgpack:"w"`
	Weight float64 `msgpack:"f"`
}

// CompletionResponse answers an OpComplete request.
type CompletionResponse struct {
	ID          string               `msgpack:"id"`
	Suggestions []ResponseSuggestion `msgpack:"s"`
	Count       int                  `msgpack:"c"`
	TimeTaken   int64                `msgpack:"t"`
}

// BoolResponse answers OpRemove and OpContains.
type BoolResponse struct {
	ID    string `msgpack:"id"`
	Found bool   `msgpack:"ok"`
}

// StatusResponse answers OpInsert and signals readiness at startup.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// StatsResponse answers an OpStats request.
type StatsResponse struct {
	ID     string `msgpack:"id"`
	Words  int    `msgpack:"words"`
	Height int    `msgpack:"height"`
	Nodes  int    `msgpack:"nodes"`
}

// ErrorResponse reports a rejected request.
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
