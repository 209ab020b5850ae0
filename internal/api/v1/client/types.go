package client

import "encoding/json"

// envelope is the standard response wrapper returned by every API endpoint
type envelope struct {
	Slug  string          `json:"slug"`
	Error string          `json:"error"`
	Data  json.RawMessage `json:"data"`
}
