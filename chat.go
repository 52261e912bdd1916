package gemini

import (
	"context"

	"github.com/Shuflduf/gemini-rs/internal/utils"
	"github.com/Shuflduf/gemini-rs/types"
)

// Chat is a stateful conversation bound to one model. It owns an append-only
// ordered history of turns: SendMessage appends the user turn and, on
// success, the resulting model turn; SendMessageStream defers the model turn
// until the stream reaches its terminal chunk.
//
// A Chat is single-writer: callers must not issue a second SendMessage or
// SendMessageStream on the same session before the previous call completes or
// its stream is abandoned. This layer does not lock; it documents the
// invariant. Generation config and schema values attached to a session are
// read-only at encode time and may be shared across sessions.
type Chat struct {
	client            *Client
	model             string
	history           []types.Content
	config            *types.GenerationConfig
	systemInstruction string
	safetySettings    []types.SafetySetting
	tools             []types.Tool
	toolConfig        *types.ToolConfig
}

func newChat(client *Client, model string) *Chat {
	return &Chat{client: client, model: model}
}

// Config returns the session's generation config, allocating it on first use.
// The returned pointer is live: mutations apply to subsequent calls.
func (chat *Chat) Config() *types.GenerationConfig {
	if chat.config == nil {
		chat.config = &types.GenerationConfig{}
	}
	return chat.config
}

// SetConfig replaces the session's generation config. A nil config means the
// generationConfig field is omitted from subsequent requests entirely.
func (chat *Chat) SetConfig(config *types.GenerationConfig) {
	chat.config = config
}

// SystemInstruction sets the system instruction sent with every request.
func (chat *Chat) SystemInstruction(instruction string) {
	chat.systemInstruction = instruction
}

// SafetySettings sets the safety settings sent with every request.
func (chat *Chat) SafetySettings(settings []types.SafetySetting) {
	chat.safetySettings = settings
}

// Tools sets the tool declarations sent with every request. Declared
// functions are never executed by this library; the model's requests to call
// them are surfaced through Response.FunctionCalls.
func (chat *Chat) Tools(tools []types.Tool) {
	chat.tools = tools
}

// ToolConfig sets the function-calling configuration.
func (chat *Chat) ToolConfig(toolConfig *types.ToolConfig) {
	chat.toolConfig = toolConfig
}

// History returns a copy of the ordered conversation history.
func (chat *Chat) History() []types.Content {
	history := make([]types.Content, len(chat.history))
	copy(history, chat.history)
	return history
}

// SetHistory replaces the conversation history, for seeding or pruning.
// Keeping the sequence semantically valid (for example, not leaving a
// function-call turn without its function-response turn) is the caller's
// responsibility.
func (chat *Chat) SetHistory(history []types.Content) {
	chat.history = history
}

// SendMessage appends a user turn built from text, performs a single-shot
// generation call over the full history, and on success appends the resulting
// model turn before returning. On failure the user turn remains in history so
// the caller can retry with the same accumulated prompt.
func (chat *Chat) SendMessage(ctx context.Context, text string) (*types.Response, error) {
	return chat.SendParts(ctx, []types.Part{types.TextPart(text)})
}

// SendParts is SendMessage for a multi-part user turn (text plus inline
// media, or a function response).
func (chat *Chat) SendParts(ctx context.Context, parts []types.Part) (*types.Response, error) {
	chat.history = append(chat.history, types.Content{Role: types.RoleUser, Parts: parts})

	response, err := chat.GenerateContent(ctx)
	if err != nil {
		return nil, err
	}

	chat.appendModelTurn(response)
	return response, nil
}

// GenerateContent performs a single-shot call over the current history and
// session settings without any turn bookkeeping.
func (chat *Chat) GenerateContent(ctx context.Context) (*types.Response, error) {
	return chat.client.GenerateContent(ctx, chat.model, chat.request())
}

// SendMessageStream appends a user turn built from text and performs a
// streaming generation call. The merged model turn is appended to history
// only once the returned stream reaches its terminal chunk; if the caller
// abandons the stream before completion, no model turn is recorded. On a
// failure to start the stream the user turn remains in history.
func (chat *Chat) SendMessageStream(ctx context.Context, text string) (*ResponseStream, error) {
	chat.history = append(chat.history, types.Content{Role: types.RoleUser, Parts: []types.Part{types.TextPart(text)}})

	request := chat.request()
	if err := chat.client.checkRequest(request); err != nil {
		return nil, err
	}

	endpoint := chat.client.baseURL + "/models/" + chat.model + ":streamGenerateContent"
	httpResponse, err := utils.DoPostStream(ctx, chat.client.httpClient, endpoint, request,
		utils.HeaderOption{Key: "x-goog-api-key", Value: chat.client.apiKey})
	if err != nil {
		return nil, err
	}

	return newResponseStream(ctx, httpResponse.Body, func(merged *types.Response) {
		chat.appendModelTurn(merged)
	}), nil
}

// appendModelTurn records the first candidate's content as a model turn.
func (chat *Chat) appendModelTurn(response *types.Response) {
	if response == nil || len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return
	}
	content := *response.Candidates[0].Content
	content.Role = types.RoleModel
	chat.history = append(chat.history, content)
}

// request assembles the wire request from the session state. Unset optional
// fields are omitted, never sent as empty placeholders.
func (chat *Chat) request() *types.GenerateContentRequest {
	request := &types.GenerateContentRequest{
		Contents:         chat.history,
		Tools:            chat.tools,
		ToolConfig:       chat.toolConfig,
		SafetySettings:   chat.safetySettings,
		GenerationConfig: chat.config,
	}
	if chat.systemInstruction != "" {
		request.SystemInstruction = &types.SystemInstruction{
			Parts: []types.Part{types.TextPart(chat.systemInstruction)},
		}
	}
	return request
}
