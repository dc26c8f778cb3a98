package qa_test

import (
	"context"

	"github.com/akolanti/CampusQA/internal/qa/llm"
)

// MockLLM implements llm.Provider
type MockLLM struct {
	OnGenerate func(ctx context.Context, prompt string) (string, error)
	Prompts    []string
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, prompt)
	}
	return "mocked llm response", nil
}

// MockFactory records the credential and model every client was built with.
type MockFactory struct {
	LLM       *MockLLM
	OnCreate  func(ctx context.Context, apiKey string, modelName string) error
	APIKeys   []string
	Models    []string
	CallCount int
}

func (f *MockFactory) Factory() llm.Factory {
	return func(ctx context.Context, apiKey string, modelName string) (llm.Provider, error) {
		f.CallCount++
		f.APIKeys = append(f.APIKeys, apiKey)
		f.Models = append(f.Models, modelName)
		if f.OnCreate != nil {
			if err := f.OnCreate(ctx, apiKey, modelName); err != nil {
				return nil, err
			}
		}
		if f.LLM == nil {
			f.LLM = &MockLLM{}
		}
		return f.LLM, nil
	}
}
