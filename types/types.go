package types

import "encoding/json"

/*
	REQUEST TYPES
*/

// Role identifies the producer of a Content turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Content is one role-tagged turn of a conversation: an ordered sequence of
// parts produced by either the user or the model.
type Content struct {
	Role  Role   `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is a single content fragment within a turn. It is a tagged union:
// exactly one of its fields should be populated. Thought marks a text part
// that carries a reasoning summary rather than answer text.
type Part struct {
	Text                string               `json:"text,omitempty"`
	Thought             bool                 `json:"thought,omitempty"`
	InlineData          *InlineData          `json:"inlineData,omitempty"`
	FileData            *FileData            `json:"fileData,omitempty"`
	FunctionCall        *FunctionCall        `json:"functionCall,omitempty"`
	FunctionResponse    *FunctionResponse    `json:"functionResponse,omitempty"`
	ExecutableCode      *ExecutableCode      `json:"executableCode,omitempty"`
	CodeExecutionResult *CodeExecutionResult `json:"codeExecutionResult,omitempty"`
}

// TextPart returns a Part containing only the given text.
func TextPart(text string) Part {
	return Part{Text: text}
}

// InlineData is an inline binary blob, base64-encoded per the API contract.
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// FileData references uploaded or cloud-hosted media by URI.
type FileData struct {
	MimeType string `json:"mimeType"`
	FileURI  string `json:"fileUri"`
}

// FunctionCall is the model's request to invoke a declared function.
// Args carries the argument payload verbatim; this library never executes
// the call, it only surfaces it to the caller.
type FunctionCall struct {
	ID   string          `json:"id,omitempty"`
	Name string          `json:"name"`
	Args json.RawMessage `json:"args,omitempty"`
}

// FunctionResponse carries the caller-produced result of a FunctionCall back
// to the model as part of a user turn.
type FunctionResponse struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	Response json.RawMessage `json:"response"`
}

// ExecutableCode is code generated by the model when the code execution tool
// is enabled.
type ExecutableCode struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// CodeExecutionResult is the sandbox outcome of an ExecutableCode part.
type CodeExecutionResult struct {
	Outcome string `json:"outcome"`
	Output  string `json:"output,omitempty"`
}

// GenerationConfig holds sampling and output parameters. Every field is
// independently optional: a nil pointer means "unset" and is omitted from the
// encoded request, which is distinct from explicitly setting a field to its
// zero value.
type GenerationConfig struct {
	Temperature      *float64        `json:"temperature,omitempty"`
	TopP             *float64        `json:"topP,omitempty"`
	TopK             *int            `json:"topK,omitempty"`
	CandidateCount   *int            `json:"candidateCount,omitempty"`
	MaxOutputTokens  *int            `json:"maxOutputTokens,omitempty"`
	StopSequences    []string        `json:"stopSequences,omitempty"`
	PresencePenalty  *float64        `json:"presencePenalty,omitempty"`
	FrequencyPenalty *float64        `json:"frequencyPenalty,omitempty"`
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema         `json:"responseSchema,omitempty"`
	ThinkingConfig   *ThinkingConfig `json:"thinkingConfig,omitempty"`
}

// ThinkingConfig controls the model's reasoning budget.
type ThinkingConfig struct {
	ThinkingBudget  *int `json:"thinkingBudget,omitempty"`
	IncludeThoughts bool `json:"includeThoughts,omitempty"`
}

// Tool groups the capabilities offered to the model in one request.
type Tool struct {
	FunctionDeclarations []FunctionDeclaration `json:"functionDeclarations,omitempty"`
	GoogleSearch         *GoogleSearch         `json:"googleSearch,omitempty"`
	CodeExecution        *CodeExecution        `json:"codeExecution,omitempty"`
}

// GoogleSearch enables Google Search grounding.
type GoogleSearch struct{}

// CodeExecution enables the server-side code execution sandbox.
type CodeExecution struct{}

// FunctionDeclaration describes one callable function. Name must be unique
// within a request's tool list. Parameters follow the standard JSON-Schema
// vocabulary directly and are passed through verbatim.
type FunctionDeclaration struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// ToolConfig selects how the model may call declared functions.
type ToolConfig struct {
	FunctionCallingConfig *FunctionCallingConfig `json:"functionCallingConfig,omitempty"`
}

// FunctionCallingConfig constrains function calling. When
// AllowedFunctionNames is set, every name in it must also appear among the
// declared functions; this is a caller contract, not enforced here.
type FunctionCallingConfig struct {
	Mode                 FunctionCallingMode `json:"mode,omitempty"`
	AllowedFunctionNames []string            `json:"allowedFunctionNames,omitempty"`
}

// FunctionCallingMode values accepted by the API.
type FunctionCallingMode string

const (
	// ModeAuto lets the model choose between a function call and text.
	ModeAuto FunctionCallingMode = "AUTO"
	// ModeAny forces the model to predict a function call.
	ModeAny FunctionCallingMode = "ANY"
	// ModeNone disables function calling.
	ModeNone FunctionCallingMode = "NONE"
	// ModeValidated is ModeAuto with constrained decoding of call arguments.
	ModeValidated FunctionCallingMode = "VALIDATED"
)

// SafetySetting adjusts the blocking threshold for one harm category.
type SafetySetting struct {
	Category  HarmCategory       `json:"category"`
	Threshold HarmBlockThreshold `json:"threshold"`
}

// HarmCategory identifies a class of harmful content.
type HarmCategory string

const (
	HarmCategoryHarassment       HarmCategory = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryHateSpeech       HarmCategory = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategorySexuallyExplicit HarmCategory = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryDangerousContent HarmCategory = "HARM_CATEGORY_DANGEROUS_CONTENT"
	HarmCategoryCivicIntegrity   HarmCategory = "HARM_CATEGORY_CIVIC_INTEGRITY"
)

// HarmBlockThreshold selects the probability level at and above which content
// is blocked.
type HarmBlockThreshold string

const (
	BlockLowAndAbove HarmBlockThreshold = "BLOCK_LOW_AND_ABOVE"
	BlockMedAndAbove HarmBlockThreshold = "BLOCK_MED_AND_ABOVE"
	BlockOnlyHigh    HarmBlockThreshold = "BLOCK_ONLY_HIGH"
	BlockNone        HarmBlockThreshold = "BLOCK_NONE"
	BlockOff         HarmBlockThreshold = "OFF"
)

// SystemInstruction carries developer-provided context that is kept outside
// the conversation history.
type SystemInstruction struct {
	Parts []Part `json:"parts"`
}

// GenerateContentRequest is the request body for the generateContent and
// streamGenerateContent endpoints. Contents is the full ordered conversation
// history; the remaining fields are optional and omitted when unset.
type GenerateContentRequest struct {
	Contents          []Content          `json:"contents"`
	Tools             []Tool             `json:"tools,omitempty"`
	ToolConfig        *ToolConfig        `json:"toolConfig,omitempty"`
	SafetySettings    []SafetySetting    `json:"safetySettings,omitempty"`
	SystemInstruction *SystemInstruction `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig  `json:"generationConfig,omitempty"`
}

// Ptr returns a pointer to v. It avoids a temporary variable when populating
// the optional pointer fields of GenerationConfig and Schema.
//
// Example:
//
//	config.Temperature = types.Ptr(0.2)
func Ptr[T any](v T) *T {
	return &v
}
