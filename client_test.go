package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Shuflduf/gemini-rs/types"
)

func textResponse(text string) string {
	return `{"candidates":[{"content":{"role":"model","parts":[{"text":"` + text + `"}]},"finishReason":"STOP","index":0}]}`
}

func simpleRequest(text string) *types.GenerateContentRequest {
	return &types.GenerateContentRequest{
		Contents: []types.Content{{Role: types.RoleUser, Parts: []types.Part{types.TextPart(text)}}},
	}
}

func TestGenerateContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-2.0-flash:generateContent" {
			t.Errorf("got path %s", r.URL.Path)
		}
		if key := r.Header.Get("x-goog-api-key"); key != "test-key" {
			t.Errorf("got api key header %q", key)
		}

		var request types.GenerateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(request.Contents) != 1 || request.Contents[0].Parts[0].Text != "Hello" {
			t.Errorf("got request %+v", request)
		}

		w.Write([]byte(textResponse("Hi there")))
	}))
	defer server.Close()

	client := New("test-key").WithBaseURL(server.URL).WithHTTPClient(server.Client())

	response, err := client.GenerateContent(context.Background(), "gemini-2.0-flash", simpleRequest("Hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Text() != "Hi there" {
		t.Errorf("got %q", response.Text())
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"permission denied","status":"PERMISSION_DENIED","details":[{"@type":"type.googleapis.com/google.rpc.ErrorInfo","reason":"API_KEY_INVALID"}]}}`))
	}))
	defer server.Close()

	client := New("bad-key").WithBaseURL(server.URL).WithHTTPClient(server.Client())

	_, err := client.GenerateContent(context.Background(), "gemini-2.0-flash", simpleRequest("Hello"))

	var apiErr *types.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want *types.APIError", err)
	}
	if apiErr.Status != types.StatusPermissionDenied {
		t.Errorf("got status %s", apiErr.Status)
	}
	if len(apiErr.Details) != 1 || apiErr.Details[0].Reason != "API_KEY_INVALID" {
		t.Errorf("details not preserved: %+v", apiErr.Details)
	}
}

// A 2xx body that is not valid JSON is a decode failure, not an API error.
func TestGenerateContentDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := New("test-key").WithBaseURL(server.URL).WithHTTPClient(server.Client())

	_, err := client.GenerateContent(context.Background(), "gemini-2.0-flash", simpleRequest("Hello"))

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("got %v, want *DecodeError", err)
	}
}

func TestGenerateContentEmptyHistory(t *testing.T) {
	client := New("test-key")

	_, err := client.GenerateContent(context.Background(), "gemini-2.0-flash", &types.GenerateContentRequest{})
	if !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("got %v, want ErrEmptyHistory", err)
	}
}

func TestGenerateContentMissingAPIKey(t *testing.T) {
	client := New("")

	_, err := client.GenerateContent(context.Background(), "gemini-2.0-flash", simpleRequest("Hello"))
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestListModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Errorf("got path %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("pageSize") != "10" || query.Get("pageToken") != "tok" {
			t.Errorf("got query %v", query)
		}
		w.Write([]byte(`{"models":[{"name":"models/gemini-2.0-flash","inputTokenLimit":1048576}],"nextPageToken":"next"}`))
	}))
	defer server.Close()

	client := New("test-key").WithBaseURL(server.URL).WithHTTPClient(server.Client())

	page, err := client.ListModels(context.Background(), 10, "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Models) != 1 || page.Models[0].Name != "models/gemini-2.0-flash" {
		t.Errorf("got %+v", page.Models)
	}
	if page.NextPageToken != "next" {
		t.Errorf("got token %q", page.NextPageToken)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GEMINI_API_BASE_URL", "https://example.test/v1")

	client := NewFromEnv()
	if client.apiKey != "env-key" {
		t.Errorf("got key %q", client.apiKey)
	}
	if client.baseURL != "https://example.test/v1" {
		t.Errorf("got base URL %q", client.baseURL)
	}
}
