package types

import "strings"

/*
	RESPONSE TYPES
*/

// Response is one unit of model output: a set of candidate turns plus
// optional usage metadata. On the streaming path each Response is a partial
// increment that callers (or ResponseStream.Collect) merge into a cumulative
// whole.
type Response struct {
	Candidates     []Candidate     `json:"candidates,omitempty"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
	UsageMetadata  *UsageMetadata  `json:"usageMetadata,omitempty"`
	ModelVersion   string          `json:"modelVersion,omitempty"`
}

// Candidate is one alternative model-generated turn within a Response.
type Candidate struct {
	Content       *Content       `json:"content,omitempty"`
	FinishReason  FinishReason   `json:"finishReason,omitempty"`
	Index         int            `json:"index,omitempty"`
	SafetyRatings []SafetyRating `json:"safetyRatings,omitempty"`
}

// FinishReason reports why the model stopped generating tokens.
type FinishReason string

const (
	FinishStop                  FinishReason = "STOP"
	FinishMaxTokens             FinishReason = "MAX_TOKENS"
	FinishSafety                FinishReason = "SAFETY"
	FinishRecitation            FinishReason = "RECITATION"
	FinishLanguage              FinishReason = "LANGUAGE"
	FinishOther                 FinishReason = "OTHER"
	FinishBlocklist             FinishReason = "BLOCKLIST"
	FinishProhibitedContent     FinishReason = "PROHIBITED_CONTENT"
	FinishSPII                  FinishReason = "SPII"
	FinishMalformedFunctionCall FinishReason = "MALFORMED_FUNCTION_CALL"
	FinishImageSafety           FinishReason = "IMAGE_SAFETY"
)

// SafetyRating is the harm classification of a piece of generated content.
type SafetyRating struct {
	Category    HarmCategory    `json:"category"`
	Probability HarmProbability `json:"probability"`
	Blocked     bool            `json:"blocked,omitempty"`
}

// HarmProbability is the likelihood that content is unsafe.
type HarmProbability string

const (
	HarmProbabilityNegligible HarmProbability = "NEGLIGIBLE"
	HarmProbabilityLow        HarmProbability = "LOW"
	HarmProbabilityMedium     HarmProbability = "MEDIUM"
	HarmProbabilityHigh       HarmProbability = "HIGH"
)

// PromptFeedback carries safety metadata about the prompt itself.
type PromptFeedback struct {
	BlockReason   string         `json:"blockReason,omitempty"`
	SafetyRatings []SafetyRating `json:"safetyRatings,omitempty"`
}

// UsageMetadata reports token accounting for one generation request.
type UsageMetadata struct {
	PromptTokenCount        int `json:"promptTokenCount,omitempty"`
	CandidatesTokenCount    int `json:"candidatesTokenCount,omitempty"`
	TotalTokenCount         int `json:"totalTokenCount,omitempty"`
	ThoughtsTokenCount      int `json:"thoughtsTokenCount,omitempty"`
	CachedContentTokenCount int `json:"cachedContentTokenCount,omitempty"`
}

// Text returns the concatenated text parts of the first candidate, in order.
// Thought parts are excluded. Returns "" when the response has no candidates
// or no text content.
func (response *Response) Text() string {
	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return ""
	}

	var builder strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part.Text != "" && !part.Thought {
			builder.WriteString(part.Text)
		}
	}
	return builder.String()
}

// FunctionCalls returns every function-call part of the first candidate,
// verbatim. The calls are not validated against the declared functions and
// are never executed; acting on them is the caller's responsibility.
func (response *Response) FunctionCalls() []FunctionCall {
	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return nil
	}

	var calls []FunctionCall
	for _, part := range response.Candidates[0].Content.Parts {
		if part.FunctionCall != nil {
			calls = append(calls, *part.FunctionCall)
		}
	}
	return calls
}
