package gemini

import (
	"errors"
	"testing"

	"github.com/Shuflduf/gemini-rs/types"
)

type reviewResult struct {
	Product string `json:"product"`
	Stars   int    `json:"stars"`
}

func responseWithText(text string) *types.Response {
	return &types.Response{Candidates: []types.Candidate{{
		Content: &types.Content{Role: types.RoleModel, Parts: []types.Part{types.TextPart(text)}},
	}}}
}

func TestJSONProjection(t *testing.T) {
	result, err := JSON[reviewResult](responseWithText(`{"product":"kettle","stars":4}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Product != "kettle" || result.Stars != 4 {
		t.Errorf("got %+v", result)
	}
}

// Almost-JSON replies are repaired before giving up.
func TestJSONProjectionRepairs(t *testing.T) {
	result, err := JSON[reviewResult](responseWithText(`{'product': 'kettle', 'stars': 4,}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Product != "kettle" {
		t.Errorf("got %+v", result)
	}
}

func TestJSONProjectionError(t *testing.T) {
	for name, response := range map[string]*types.Response{
		"empty response": {},
		"no text":        {Candidates: []types.Candidate{{Content: &types.Content{}}}},
	} {
		_, err := JSON[reviewResult](response)
		var projErr *ProjectionError
		if !errors.As(err, &projErr) {
			t.Errorf("%s: got %v, want *ProjectionError", name, err)
		}
	}
}
