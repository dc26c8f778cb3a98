package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnv_MissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("LoadDotEnv on a missing file returned %v", err)
	}
}

func TestLoadDotEnv_ExistingVariablesWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "CAMPUSQA_PRESET=from_file\nCAMPUSQA_FRESH=from_file\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CAMPUSQA_PRESET", "preset")
	// registers cleanup, then unset so the file can fill it
	t.Setenv("CAMPUSQA_FRESH", "")
	os.Unsetenv("CAMPUSQA_FRESH")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	if got := os.Getenv("CAMPUSQA_PRESET"); got != "preset" {
		t.Errorf("CAMPUSQA_PRESET = %q; want the already set value", got)
	}
	if got := os.Getenv("CAMPUSQA_FRESH"); got != "from_file" {
		t.Errorf("CAMPUSQA_FRESH = %q; want the file value", got)
	}
}

func TestPromptPath_Order(t *testing.T) {
	// no prompt.txt in the working directory or next to the test binary
	t.Chdir(t.TempDir())

	tests := []struct {
		name     string
		flag     string
		env      string
		expected string
	}{
		{"Flag_Wins", "/etc/flag.txt", "/etc/env.txt", "/etc/flag.txt"},
		{"Env_Over_Default", "", "/etc/env.txt", "/etc/env.txt"},
		{"Default", "", "", PromptFilePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(PromptPathEnv, tt.env)
			if got := PromptPath(tt.flag); got != tt.expected {
				t.Errorf("PromptPath(%q) = %q; want %q", tt.flag, got, tt.expected)
			}
		})
	}
}

func TestPromptPath_WorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, PromptFilePath), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv(PromptPathEnv, "")

	if got := PromptPath(""); got != PromptFilePath {
		t.Errorf("PromptPath = %q; want %q", got, PromptFilePath)
	}
}

func TestProviderName(t *testing.T) {
	tests := []struct {
		env      string
		expected string
	}{
		{"", ProviderGemini},
		{"  OpenAI ", ProviderOpenAI},
		{"gemini", ProviderGemini},
	}
	for _, tt := range tests {
		t.Setenv(LLMProviderEnv, tt.env)
		if got := ProviderName(); got != tt.expected {
			t.Errorf("ProviderName with %q = %q; want %q", tt.env, got, tt.expected)
		}
	}
}

func TestAPIKey_ExplicitBeforeEnvironment(t *testing.T) {
	t.Setenv(GeminiAPIKeyEnv, "env-gemini")
	t.Setenv(OpenAIAPIKeyEnv, "env-openai")

	if got := APIKey("explicit", ProviderGemini); got != "explicit" {
		t.Errorf("explicit key got %q", got)
	}
	if got := APIKey("", ProviderGemini); got != "env-gemini" {
		t.Errorf("gemini env key got %q", got)
	}
	if got := APIKey("", ProviderOpenAI); got != "env-openai" {
		t.Errorf("openai env key got %q", got)
	}
}
