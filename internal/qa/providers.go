package qa

import (
	"fmt"

	"github.com/akolanti/CampusQA/internal/config"
	"github.com/akolanti/CampusQA/internal/qa/llm"
	"github.com/akolanti/CampusQA/internal/qa/llm/gemini"
	"github.com/akolanti/CampusQA/internal/qa/llm/openaiLLM"
)

func ProviderFactory(name string) (llm.Factory, error) {
	switch name {
	case config.ProviderGemini, "":
		return gemini.NewProvider, nil
	case config.ProviderOpenAI:
		return openaiLLM.NewProvider, nil
	}
	return nil, &ConfigurationError{Message: fmt.Sprintf("unknown llm provider %q. Set %s to %s or %s.",
		name, config.LLMProviderEnv, config.ProviderGemini, config.ProviderOpenAI)}
}
