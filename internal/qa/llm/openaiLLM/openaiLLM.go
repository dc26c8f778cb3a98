package openaiLLM

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/akolanti/CampusQA/internal/config"
	"github.com/akolanti/CampusQA/internal/customHttpClient"
	"github.com/akolanti/CampusQA/internal/qa/llm"
	"github.com/akolanti/CampusQA/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const providerName = "openai"

type llmClient struct {
	client    openai.Client
	modelName string
	logger    *logger_i.Logger
}

func NewProvider(ctx context.Context, apiKey string, modelName string) (llm.Provider, error) {
	return newOpenAIClient(apiKey, modelName, config.BaseURL(config.ProviderOpenAI)), nil
}

func newOpenAIClient(apiKey string, modelName string, baseURL string) *llmClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(customHttpClient.GetClient()),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	logger := logger_i.NewLogger("llm_openai")
	logger.Debug("OpenAI client created", "model", modelName)
	return &llmClient{client: openai.NewClient(opts...), modelName: modelName, logger: logger}
}

func (c *llmClient) Generate(ctx context.Context, prompt string) (string, error) {
	log := c.logger.WithTrace(ctx)

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		log.Error("OpenAI chat completion failed", "model", c.modelName, "error", err)
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &llm.RemoteError{Provider: providerName, Code: apiErr.StatusCode, Message: errorCause(apiErr)}
		}
		return "", err
	}
	if completion == nil || len(completion.Choices) == 0 {
		return "", nil
	}
	if refusal := completion.Choices[0].Message.Refusal; refusal != "" {
		log.Warn("Model refused the prompt", "refusal", refusal)
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}

const maxErrorBodyLen = 512

// errorCause picks the most specific text for a failed call. Bodies that are
// not an openai error envelope (gateway pages) leave Message empty.
func errorCause(apiErr *openai.Error) string {
	if apiErr.Message != "" {
		return apiErr.Message
	}
	if raw := strings.TrimSpace(apiErr.RawJSON()); raw != "" {
		return raw
	}
	if apiErr.Response != nil && apiErr.Response.Body != nil {
		body, err := io.ReadAll(io.LimitReader(apiErr.Response.Body, maxErrorBodyLen))
		apiErr.Response.Body = io.NopCloser(bytes.NewReader(body))
		if err == nil && len(bytes.TrimSpace(body)) > 0 {
			return string(bytes.TrimSpace(body))
		}
	}
	if text := http.StatusText(apiErr.StatusCode); text != "" {
		return text
	}
	return "no error details"
}
