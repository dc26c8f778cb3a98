package openaiLLM

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/akolanti/CampusQA/internal/qa/llm"
)

func TestGenerate_Scenarios(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		body           string
		expectedAnswer string
		expectRemote   bool
		expectedCause  []string
	}{
		{
			name:           "Success_Content",
			status:         http.StatusOK,
			body:           `{"id":"c1","object":"chat.completion","created":1,"model":"gpt-test","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"The Career Fair is in the main hall."}}]}`,
			expectedAnswer: "The Career Fair is in the main hall.",
		},
		{
			name:           "No_Choices",
			status:         http.StatusOK,
			body:           `{"id":"c2","object":"chat.completion","created":1,"model":"gpt-test","choices":[]}`,
			expectedAnswer: "",
		},
		{
			name:           "Refusal",
			status:         http.StatusOK,
			body:           `{"id":"c3","object":"chat.completion","created":1,"model":"gpt-test","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"","refusal":"I can't help with that."}}]}`,
			expectedAnswer: "",
		},
		{
			name:          "Unauthorized",
			status:        http.StatusUnauthorized,
			body:          `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`,
			expectRemote:  true,
			expectedCause: []string{"Incorrect API key provided"},
		},
		{
			name:          "Gateway_Html_Error",
			status:        http.StatusInternalServerError,
			body:          `<html>oops</html>`,
			expectRemote:  true,
			expectedCause: []string{"oops", http.StatusText(http.StatusInternalServerError)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := newOpenAIClient("test-key", "gpt-test", srv.URL+"/")
			answer, err := c.Generate(context.Background(), "prompt")

			if tt.expectRemote {
				var remote *llm.RemoteError
				if !errors.As(err, &remote) {
					t.Fatalf("expected *llm.RemoteError, got %T (%v)", err, err)
				}
				if remote.Code != tt.status {
					t.Errorf("Code got %d, want %d", remote.Code, tt.status)
				}
				if remote.Message == "" {
					t.Errorf("remote error lost its cause: %q", remote.Error())
				}
				if !containsAny(remote.Message, tt.expectedCause) {
					t.Errorf("Message got %q, want one of %v", remote.Message, tt.expectedCause)
				}
				if got := atomic.LoadInt32(&calls); got != 1 {
					t.Errorf("expected exactly one request without retries, got %d", got)
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

func containsAny(s string, parts []string) bool {
	for _, p := range parts {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
