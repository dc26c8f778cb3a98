package qa

import (
	"context"
	"fmt"
	"time"

	"github.com/akolanti/CampusQA/internal/config"
	"github.com/akolanti/CampusQA/internal/metrics"
	"github.com/akolanti/CampusQA/internal/qa/llm"
	"github.com/akolanti/CampusQA/pkg/logger_i"
)

type ClientConfig struct {
	APIKey   string // explicit credential, the environment is used when empty
	Provider string // llm backend, selects the credential variable
	Template string
	Factory  llm.Factory // optional, resolved from Provider when nil
}

// Client answers queries with one bound credential and model. It keeps no
// state between calls.
type Client struct {
	provider  llm.Provider
	modelName string
	template  string
	logger    *logger_i.Logger
}

// NewClient resolves the credential and model and binds them to a provider.
// A missing credential fails with *ConfigurationError before any remote call.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	providerName := cfg.Provider
	if providerName == "" {
		providerName = config.ProviderGemini
	}

	apiKey := config.APIKey(cfg.APIKey, providerName)
	if apiKey == "" {
		return nil, &ConfigurationError{Message: fmt.Sprintf(config.MissingAPIKeyMessage, config.CredentialEnvVar(providerName))}
	}

	factory := cfg.Factory
	if factory == nil {
		var err error
		if factory, err = ProviderFactory(providerName); err != nil {
			return nil, err
		}
	}

	modelName := config.ModelName()
	provider, err := factory(ctx, apiKey, modelName)
	if err != nil {
		return nil, fmt.Errorf("creating %s provider: %w", providerName, err)
	}

	return &Client{
		provider:  provider,
		modelName: modelName,
		template:  cfg.Template,
		logger:    logger_i.NewLogger("qa_client").With("provider", providerName, "model", modelName),
	}, nil
}

// ComposePrompt builds the exact text sent to the model.
func ComposePrompt(template string, query string) string {
	return template + config.PromptSeparator + config.QueryLabel + query
}

// Answer returns the model's text for query, or config.EmptyResponseFallback
// when the model produced nothing usable. Remote failures are returned as is.
func (c *Client) Answer(ctx context.Context, query string) (string, error) {
	text, err := c.generate(ctx, query)
	if err != nil {
		return "", err
	}
	if text == "" {
		return config.EmptyResponseFallback, nil
	}
	return text, nil
}

func (c *Client) generate(ctx context.Context, query string) (string, error) {
	log := c.logger.WithTrace(ctx)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	text, err := c.provider.Generate(ctx, ComposePrompt(c.template, query))
	if err != nil {
		return "", err
	}
	if text == "" {
		log.Warn("Model returned no text")
	}
	return text, nil
}
