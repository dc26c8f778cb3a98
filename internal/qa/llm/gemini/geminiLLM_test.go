package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akolanti/CampusQA/internal/qa/llm"
)

type generateRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
}

func newTestServer(t *testing.T, status int, body string, seen *generateRequest, path *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path != nil {
			*path = r.URL.Path
		}
		if seen != nil {
			_ = json.NewDecoder(r.Body).Decode(seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerate_Scenarios(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		body           string
		expectedAnswer string
		expectRemote   bool
	}{
		{
			name:           "Success_Text",
			status:         http.StatusOK,
			body:           `{"candidates":[{"content":{"role":"model","parts":[{"text":"The Tech Fest is on Friday."}]},"finishReason":"STOP"}]}`,
			expectedAnswer: "The Tech Fest is on Friday.",
		},
		{
			name:           "No_Candidates",
			status:         http.StatusOK,
			body:           `{"candidates":[]}`,
			expectedAnswer: "",
		},
		{
			name:           "Prompt_Blocked",
			status:         http.StatusOK,
			body:           `{"promptFeedback":{"blockReason":"SAFETY"}}`,
			expectedAnswer: "",
		},
		{
			name:         "Invalid_Key",
			status:       http.StatusForbidden,
			body:         `{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`,
			expectRemote: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body, nil, nil)

			c, err := newGeminiClient(context.Background(), "test-key", "gemini-test", srv.URL)
			if err != nil {
				t.Fatalf("newGeminiClient failed: %v", err)
			}

			answer, err := c.Generate(context.Background(), "prompt")

			if tt.expectRemote {
				var remote *llm.RemoteError
				if !errors.As(err, &remote) {
					t.Fatalf("expected *llm.RemoteError, got %T (%v)", err, err)
				}
				if remote.Code != http.StatusForbidden {
					t.Errorf("Code got %d, want %d", remote.Code, http.StatusForbidden)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if answer != tt.expectedAnswer {
				t.Errorf("Answer got %q, want %q", answer, tt.expectedAnswer)
			}
		})
	}
}

func TestGenerate_SendsPromptToModel(t *testing.T) {
	var seen generateRequest
	var path string
	srv := newTestServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"ok"}]}}]}`, &seen, &path)

	c, err := newGeminiClient(context.Background(), "test-key", "gemini-test", srv.URL)
	if err != nil {
		t.Fatalf("newGeminiClient failed: %v", err)
	}

	prompt := "You are helpful.\n\nUser Query: When is the Hackathon?"
	if _, err := c.Generate(context.Background(), prompt); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.Contains(path, "gemini-test") || !strings.HasSuffix(path, ":generateContent") {
		t.Errorf("unexpected request path %s", path)
	}
	if len(seen.Contents) != 1 || len(seen.Contents[0].Parts) != 1 {
		t.Fatalf("expected a single content part, got %+v", seen)
	}
	if got := seen.Contents[0].Parts[0].Text; got != prompt {
		t.Errorf("prompt got %q, want %q", got, prompt)
	}
}
