package adapter

import (
	"github.com/akolanti/CampusQA/internal/api"
	"github.com/akolanti/CampusQA/internal/qa"
)

// ToQueryResponse keeps the same answer string AnswerQuery would return.
func ToQueryResponse(result qa.Result) api.QueryResponse {
	return api.QueryResponse{
		Query:   result.Query,
		Answer:  result.Message(),
		Outcome: string(result.Outcome),
	}
}

func BadRequest(traceId string, message string, code int) api.ErrorResponse {
	return api.ErrorResponse{
		TraceId: traceId,
		Status:  api.StatusError,
		Error: &api.OutgoingError{
			Code:    code,
			Message: message,
			Retry:   false,
		},
	}
}
