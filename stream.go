package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"iter"
	"sort"
	"strings"

	"github.com/Shuflduf/gemini-rs/internal/utils"
	"github.com/Shuflduf/gemini-rs/types"
)

// ResponseStream is a single-pass sequence of Response increments produced by
// a streaming generation call. Each increment is one complete decoded element
// of the service's streamed array; no increment is ever yielded in a partial
// state.
//
// Callers must consume the stream, either by iterating with Iter (breaking
// out of the loop abandons the stream and releases the connection) or by
// calling Collect. A stream that came from Chat.SendMessageStream appends the
// merged model turn to the session history only when iteration reaches the
// terminal chunk; abandoning it early leaves history unmodified.
type ResponseStream struct {
	iterator iter.Seq2[*types.Response, error]
}

// newResponseStream builds a ResponseStream that decodes the streamed JSON
// array from body. onComplete, if non-nil, is called with the merged
// cumulative response when, and only when, the stream ends cleanly.
func newResponseStream(ctx context.Context, body io.ReadCloser, onComplete func(*types.Response)) *ResponseStream {
	iteratorFunc := func(yield func(*types.Response, error) bool) {
		defer utils.CloseWithLog(body)

		scanner := utils.NewArrayScanner(body)
		accumulator := newResponseAccumulator()

		for {
			if ctx.Err() != nil {
				yield(nil, ctx.Err())
				return
			}

			element, err := scanner.Next()
			if err == io.EOF {
				if onComplete != nil {
					onComplete(accumulator.response())
				}
				return
			}
			if err != nil {
				var syntaxErr *utils.SyntaxError
				if errors.As(err, &syntaxErr) {
					err = &DecodeError{Err: err}
				}
				yield(nil, err)
				return
			}

			var response types.Response
			if parseErr := json.Unmarshal(element, &response); parseErr != nil {
				yield(nil, &DecodeError{Err: parseErr})
				return
			}

			accumulator.add(&response)
			if !yield(&response, nil) {
				return // caller abandoned the stream
			}
		}
	}

	return &ResponseStream{iterator: iteratorFunc}
}

// Iter returns the underlying iterator for use with range-over-func loops.
//
// Example:
//
//	for response, err := range stream.Iter() {
//	    if err != nil { // handle error
//	    }
//	    fmt.Print(response.Text())
//	}
func (stream *ResponseStream) Iter() iter.Seq2[*types.Response, error] {
	return stream.iterator
}

// Collect consumes the entire stream and returns the merged cumulative
// Response: text parts of the same candidate concatenated in arrival order,
// non-text parts replaced by later arrivals, each candidate finalized by its
// finish reason. Any mid-stream error terminates collection.
func (stream *ResponseStream) Collect() (*types.Response, error) {
	accumulator := newResponseAccumulator()
	for response, err := range stream.iterator {
		if err != nil {
			return nil, err
		}
		accumulator.add(response)
	}
	return accumulator.response(), nil
}

// candidateState carries the running merge state for one candidate index.
type candidateState struct {
	text     strings.Builder
	thought  strings.Builder
	other    []types.Part // latest non-text parts, replaced per kind on arrival
	finish   types.FinishReason
	safety   []types.SafetyRating
	finished bool
}

// responseAccumulator merges streamed Response increments into a cumulative
// whole per the candidate merge rule.
type responseAccumulator struct {
	candidates     map[int]*candidateState
	usage          *types.UsageMetadata
	promptFeedback *types.PromptFeedback
	modelVersion   string
}

func newResponseAccumulator() *responseAccumulator {
	return &responseAccumulator{candidates: make(map[int]*candidateState)}
}

func (accumulator *responseAccumulator) add(response *types.Response) {
	if response.UsageMetadata != nil {
		accumulator.usage = response.UsageMetadata
	}
	if response.PromptFeedback != nil {
		accumulator.promptFeedback = response.PromptFeedback
	}
	if response.ModelVersion != "" {
		accumulator.modelVersion = response.ModelVersion
	}

	for _, candidate := range response.Candidates {
		state := accumulator.candidates[candidate.Index]
		if state == nil {
			state = &candidateState{}
			accumulator.candidates[candidate.Index] = state
		}
		if state.finished {
			// A finish reason finalizes the candidate; later increments for
			// the same index are ignored.
			continue
		}

		if candidate.Content != nil {
			state.mergeParts(candidate.Content.Parts)
		}
		if len(candidate.SafetyRatings) > 0 {
			state.safety = candidate.SafetyRatings
		}
		if candidate.FinishReason != "" {
			state.finish = candidate.FinishReason
			state.finished = true
		}
	}
}

// mergeParts concatenates text parts and replaces non-text parts: when an
// increment carries parts of some kind (function call, inline data, ...),
// that increment's parts of the kind supersede all previously seen parts of
// the same kind.
func (state *candidateState) mergeParts(parts []types.Part) {
	var incoming []types.Part
	replacedKinds := make(map[int]bool)

	for _, part := range parts {
		if kind := partKind(part); kind == kindText {
			if part.Thought {
				state.thought.WriteString(part.Text)
			} else {
				state.text.WriteString(part.Text)
			}
		} else {
			incoming = append(incoming, part)
			replacedKinds[kind] = true
		}
	}

	if len(incoming) == 0 {
		return
	}
	kept := state.other[:0]
	for _, part := range state.other {
		if !replacedKinds[partKind(part)] {
			kept = append(kept, part)
		}
	}
	state.other = append(kept, incoming...)
}

const (
	kindText = iota
	kindFunctionCall
	kindFunctionResponse
	kindInlineData
	kindFileData
	kindExecutableCode
	kindCodeExecutionResult
)

func partKind(part types.Part) int {
	switch {
	case part.FunctionCall != nil:
		return kindFunctionCall
	case part.FunctionResponse != nil:
		return kindFunctionResponse
	case part.InlineData != nil:
		return kindInlineData
	case part.FileData != nil:
		return kindFileData
	case part.ExecutableCode != nil:
		return kindExecutableCode
	case part.CodeExecutionResult != nil:
		return kindCodeExecutionResult
	default:
		return kindText
	}
}

// response assembles the merged cumulative Response.
func (accumulator *responseAccumulator) response() *types.Response {
	indices := make([]int, 0, len(accumulator.candidates))
	for index := range accumulator.candidates {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	merged := &types.Response{
		UsageMetadata:  accumulator.usage,
		PromptFeedback: accumulator.promptFeedback,
		ModelVersion:   accumulator.modelVersion,
	}
	for _, index := range indices {
		state := accumulator.candidates[index]

		var parts []types.Part
		if state.thought.Len() > 0 {
			parts = append(parts, types.Part{Text: state.thought.String(), Thought: true})
		}
		if state.text.Len() > 0 {
			parts = append(parts, types.Part{Text: state.text.String()})
		}
		parts = append(parts, state.other...)

		merged.Candidates = append(merged.Candidates, types.Candidate{
			Content:       &types.Content{Role: types.RoleModel, Parts: parts},
			FinishReason:  state.finish,
			Index:         index,
			SafetyRatings: state.safety,
		})
	}
	return merged
}
