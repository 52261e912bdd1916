package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/Shuflduf/gemini-rs/internal/utils"
	"github.com/Shuflduf/gemini-rs/types"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client issues requests to the Gemini API. It is safe for concurrent use:
// it holds no per-request state beyond the key, base URL, and HTTP client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a Client authenticating with the given API key.
func New(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}
}

// NewFromEnv creates a Client configured from the environment.
// Environment variables:
//   - GEMINI_API_KEY: API key for authentication
//   - GEMINI_API_BASE_URL: Base URL for the API (optional)
func NewFromEnv() *Client {
	client := New(os.Getenv("GEMINI_API_KEY"))
	if baseURL := os.Getenv("GEMINI_API_BASE_URL"); baseURL != "" {
		client.baseURL = baseURL
	}
	return client
}

// WithAPIKey sets the API key.
func (client *Client) WithAPIKey(apiKey string) *Client {
	client.apiKey = apiKey
	return client
}

// WithBaseURL overrides the default base URL.
func (client *Client) WithBaseURL(baseURL string) *Client {
	client.baseURL = baseURL
	return client
}

// WithHTTPClient sets a custom HTTP client. Timeouts, retries, and connection
// reuse are the HTTP client's responsibility; this layer never retries.
func (client *Client) WithHTTPClient(httpClient *http.Client) *Client {
	client.httpClient = httpClient
	return client
}

// Chat starts a new chat session with the given model.
func (client *Client) Chat(model string) *Chat {
	return newChat(client, model)
}

// GenerateContent performs a single-shot generation call with the given
// request and returns the complete response. The request must contain at
// least one content turn.
func (client *Client) GenerateContent(ctx context.Context, model string, request *types.GenerateContentRequest) (*types.Response, error) {
	if err := client.checkRequest(request); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", client.baseURL, model)
	_, body, err := utils.DoPost(ctx, client.httpClient, endpoint, request,
		utils.HeaderOption{Key: "x-goog-api-key", Value: client.apiKey})
	if err != nil {
		return nil, err
	}

	var response types.Response
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &response, nil
}

// StreamGenerateContent performs a streaming generation call. The returned
// stream yields one Response increment per decoded array element; it is
// single-pass and must be consumed (or abandoned by breaking out of the
// iteration) to release the underlying connection.
func (client *Client) StreamGenerateContent(ctx context.Context, model string, request *types.GenerateContentRequest) (*ResponseStream, error) {
	if err := client.checkRequest(request); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/models/%s:streamGenerateContent", client.baseURL, model)
	httpResponse, err := utils.DoPostStream(ctx, client.httpClient, endpoint, request,
		utils.HeaderOption{Key: "x-goog-api-key", Value: client.apiKey})
	if err != nil {
		return nil, err
	}

	return newResponseStream(ctx, httpResponse.Body, nil), nil
}

// ListModels returns one page of the available models. pageSize and pageToken
// are optional; pass 0 and "" for the service defaults.
func (client *Client) ListModels(ctx context.Context, pageSize int, pageToken string) (*types.ModelList, error) {
	if client.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	endpoint := client.baseURL + "/models"
	query := url.Values{}
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	_, body, err := utils.DoGet(ctx, client.httpClient, endpoint,
		utils.HeaderOption{Key: "x-goog-api-key", Value: client.apiKey})
	if err != nil {
		return nil, err
	}

	var modelList types.ModelList
	if err := json.Unmarshal(body, &modelList); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &modelList, nil
}

func (client *Client) checkRequest(request *types.GenerateContentRequest) error {
	if client.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}
	if request == nil || len(request.Contents) == 0 {
		return ErrEmptyHistory
	}
	return nil
}
