package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ProviderName returns the configured llm backend, gemini when unset.
func ProviderName() string {
	p := strings.ToLower(strings.TrimSpace(os.Getenv(LLMProviderEnv)))
	if p == "" {
		return ProviderGemini
	}
	return p
}

// CredentialEnvVar names the variable holding the credential for a provider.
func CredentialEnvVar(provider string) string {
	if provider == ProviderOpenAI {
		return OpenAIAPIKeyEnv
	}
	return GeminiAPIKeyEnv
}

// APIKey resolves the credential: the explicit value first, then the environment.
func APIKey(explicit string, provider string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(CredentialEnvVar(provider))
}

// ModelName is not validated here, an unknown model surfaces on the remote call.
func ModelName() string {
	return os.Getenv(ModelNameEnv)
}

func BaseURL(provider string) string {
	if provider == ProviderOpenAI {
		return os.Getenv(OpenAIBaseURLEnv)
	}
	return os.Getenv(GeminiBaseURLEnv)
}

// PromptPath picks the template file: the flag, then PROMPT_PATH, then
// prompt.txt in the working directory, then prompt.txt next to the binary.
// When neither file exists the working directory name is returned so the
// loader falls back to the default template.
func PromptPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(PromptPathEnv); p != "" {
		return p
	}
	if fileExists(PromptFilePath) {
		return PromptFilePath
	}
	if exe, err := os.Executable(); err == nil {
		if p := filepath.Join(filepath.Dir(exe), PromptFilePath); fileExists(p) {
			return p
		}
	}
	return PromptFilePath
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
