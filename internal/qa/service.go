package qa

import (
	"context"
	"time"

	"github.com/akolanti/CampusQA/internal/config"
	"github.com/akolanti/CampusQA/internal/metrics"
	"github.com/akolanti/CampusQA/pkg/logger_i"
)

// Service is what the outer surfaces (demo, http, mcp) call. They never see
// the client or the llm provider.
type Service interface {
	Ask(ctx context.Context, query string) Result
	AnswerQuery(ctx context.Context, query string) string
}

type service struct {
	cfg    ClientConfig
	logger *logger_i.Logger
}

func NewService(cfg ClientConfig) Service {
	return &service{
		cfg:    cfg,
		logger: logger_i.NewLogger("QA Service"),
	}
}

// Ask builds a fresh client, so the credential is resolved on every call, and
// tags the outcome instead of returning an error.
func (s *service) Ask(ctx context.Context, query string) Result {
	log := s.logger.WithTrace(ctx)
	start := time.Now()

	result := s.ask(ctx, query)

	metrics.CaptureQueryMetrics(string(result.Outcome), time.Since(start))
	if result.Failed() {
		log.Error("Query failed", "outcome", result.Outcome, "error", result.Err)
	} else {
		log.Debug("Query answered", "outcome", result.Outcome)
	}
	return result
}

func (s *service) ask(ctx context.Context, query string) Result {
	client, err := NewClient(ctx, s.cfg)
	if err != nil {
		return failure(query, err)
	}

	text, err := client.generate(ctx, query)
	if err != nil {
		return failure(query, err)
	}
	if text == "" {
		return Result{Query: query, Text: config.EmptyResponseFallback, Outcome: OutcomeEmptyResponse}
	}
	return Result{Query: query, Text: text, Outcome: OutcomeSuccess}
}

func (s *service) AnswerQuery(ctx context.Context, query string) string {
	return s.Ask(ctx, query).Message()
}

func failure(query string, err error) Result {
	return Result{Query: query, Outcome: classify(err), Err: err}
}
