package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/akolanti/CampusQA/internal/config"
	"github.com/akolanti/CampusQA/internal/customHttpClient"
	"github.com/akolanti/CampusQA/internal/qa/llm"
	"github.com/akolanti/CampusQA/pkg/logger_i"
	"google.golang.org/genai"
)

const providerName = "gemini"

type llmClient struct {
	client    *genai.Client
	modelName string
	logger    *logger_i.Logger
}

// NewProvider creates a Gemini client bound to apiKey. The key lives on this
// client only.
func NewProvider(ctx context.Context, apiKey string, modelName string) (llm.Provider, error) {
	return newGeminiClient(ctx, apiKey, modelName, config.BaseURL(config.ProviderGemini))
}

func newGeminiClient(ctx context.Context, apiKey string, modelName string, baseURL string) (*llmClient, error) {
	logger := logger_i.NewLogger("llm_gemini")

	clientConfig := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: customHttpClient.GetClient(),
	}
	if baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	c, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		logger.Error("Error creating Gemini client", "error", err)
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	logger.Debug("Gemini client created", "model", modelName)
	return &llmClient{client: c, modelName: modelName, logger: logger}, nil
}

func (c *llmClient) Generate(ctx context.Context, prompt string) (string, error) {
	log := c.logger.WithTrace(ctx)

	result, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), nil)
	if err != nil {
		log.Error("Gemini generate content failed", "model", c.modelName, "error", err)
		return "", toRemoteError(err)
	}
	if result == nil {
		return "", nil
	}
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		log.Warn("Prompt blocked by Gemini", "reason", result.PromptFeedback.BlockReason)
		return "", nil
	}
	return result.Text(), nil
}

func toRemoteError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &llm.RemoteError{Provider: providerName, Code: apiErr.Code, Status: apiErr.Status, Message: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &llm.RemoteError{Provider: providerName, Code: apiErrPtr.Code, Status: apiErrPtr.Status, Message: apiErrPtr.Message}
	}
	return err
}
