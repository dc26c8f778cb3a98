package api

type OutcomeStatus string

const (
	StatusError OutcomeStatus = "error"
)

// requests---------------------

type QueryRequest struct {
	Query string `json:"query" validate:"required" example:"When is the Tech Fest happening?"`
}

// responses---------------------

type QueryResponse struct {
	Query   string `json:"query" example:"When is the Tech Fest happening?"`
	Answer  string `json:"answer" example:"The Tech Fest is on Friday."`
	Outcome string `json:"outcome" example:"success"`
}

type ErrorResponse struct {
	TraceId string         `json:"trace_id,omitempty"`
	Status  OutcomeStatus  `json:"status"`
	Error   *OutgoingError `json:"error"`
}

type OutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"query is required"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
