package qa

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/url"

	"github.com/akolanti/CampusQA/internal/config"
	"github.com/akolanti/CampusQA/internal/qa/llm"
)

// ConfigurationError means the client cannot be built, e.g. no credential.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeEmptyResponse     Outcome = "empty_response"
	OutcomeConfiguration     Outcome = "configuration_error"
	OutcomeNetwork           Outcome = "network_error"
	OutcomeRemoteRejection   Outcome = "remote_rejection"
	OutcomeMalformedResponse Outcome = "malformed_response"
	OutcomeUnclassified      Outcome = "unclassified_error"
)

// Result is the answer to one query. Err is set for every failure outcome.
type Result struct {
	Query   string
	Text    string
	Outcome Outcome
	Err     error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

// Message is the user facing string for the result.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeSuccess:
		return r.Text
	case OutcomeEmptyResponse:
		return config.EmptyResponseFallback
	case OutcomeConfiguration:
		if r.Err == nil {
			return config.ConfigurationErrorPrefix + string(r.Outcome)
		}
		return config.ConfigurationErrorPrefix + r.Err.Error()
	}
	if r.Err == nil {
		return config.ProcessingErrorPrefix + string(r.Outcome)
	}
	return config.ProcessingErrorPrefix + r.Err.Error()
}

func classify(err error) Outcome {
	var confErr *ConfigurationError
	var remoteErr *llm.RemoteError
	var netErr net.Error
	var urlErr *url.Error
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &confErr):
		return OutcomeConfiguration
	case errors.As(err, &remoteErr):
		return OutcomeRemoteRejection
	case errors.Is(err, llm.ErrMalformedResponse), errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return OutcomeMalformedResponse
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled),
		errors.As(err, &netErr), errors.As(err, &urlErr):
		return OutcomeNetwork
	}
	return OutcomeUnclassified
}
