package gemini

import (
	"context"

	"github.com/Shuflduf/gemini-rs/types"
)

// TypedChat wraps a Chat and parses every reply into T. The response schema
// is generated once from T at construction and attached to the session's
// generation config together with the JSON response MIME type.
//
// Example:
//
//	type CityInfo struct {
//	    City       string   `json:"city" jsonschema:"required"`
//	    Country    string   `json:"country" jsonschema:"required"`
//	    Population int      `json:"population"`
//	    FamousFor  []string `json:"famous_for"`
//	}
//
//	chat, err := gemini.NewTypedChat[CityInfo](client, "gemini-2.0-flash")
//	info, _, err := chat.Send(ctx, "Give me info about Rome, Italy")
type TypedChat[T any] struct {
	*Chat
	schema *types.Schema
}

// NewTypedChat creates a chat session whose replies are constrained to the
// JSON shape of T and parsed into it. Returns an error when T cannot be
// expressed in the service's schema subset.
func NewTypedChat[T any](client *Client, model string) (*TypedChat[T], error) {
	schema, err := GenerateSchema[T]()
	if err != nil {
		return nil, err
	}

	chat := client.Chat(model)
	config := chat.Config()
	config.ResponseMimeType = "application/json"
	config.ResponseSchema = schema

	return &TypedChat[T]{Chat: chat, schema: schema}, nil
}

// Schema returns the generated response schema, for introspection.
func (typedChat *TypedChat[T]) Schema() *types.Schema {
	return typedChat.schema
}

// Send sends a user message and returns the reply parsed into T alongside
// the raw response. A reply that does not decode into T returns a
// *ProjectionError; the model turn is still recorded in history, since the
// call itself succeeded.
func (typedChat *TypedChat[T]) Send(ctx context.Context, text string) (T, *types.Response, error) {
	response, err := typedChat.SendMessage(ctx, text)
	if err != nil {
		var zero T
		return zero, nil, err
	}

	value, err := JSON[T](response)
	return value, response, err
}
