package llm

import (
	"context"
	"errors"
	"fmt"
)

type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Factory binds a credential and a model to a new Provider. Implementations
// must not touch process-wide state.
type Factory func(ctx context.Context, apiKey string, modelName string) (Provider, error)

var ErrMalformedResponse = errors.New("malformed response from model")

// RemoteError is a request the remote service answered with an error status.
type RemoteError struct {
	Provider string
	Code     int
	Status   string
	Message  string
}

func (e *RemoteError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%s error %d (%s): %s", e.Provider, e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("%s error %d: %s", e.Provider, e.Code, e.Message)
}
