package gemini

import (
	"errors"

	"github.com/Shuflduf/gemini-rs/internal/utils"
	"github.com/Shuflduf/gemini-rs/types"
)

// JSON parses the concatenated text of the response's first candidate as
// JSON and deserializes it into T. The originating request should have asked
// for structured output (responseMimeType "application/json", usually with a
// response schema); text that does not decode into T yields a
// *ProjectionError, which is distinct from transport and service failures.
func JSON[T any](response *types.Response) (T, error) {
	var zero T

	text := response.Text()
	if text == "" {
		return zero, &ProjectionError{Err: errors.New("response has no text content")}
	}

	value, err := utils.ParseStringAs[T](text)
	if err != nil {
		return zero, &ProjectionError{Err: err}
	}
	return value, nil
}
