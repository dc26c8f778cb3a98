package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/akolanti/CampusQA/internal/adapter"
	"github.com/akolanti/CampusQA/internal/api"
	"github.com/akolanti/CampusQA/internal/config"
	"github.com/akolanti/CampusQA/internal/qa"
	"github.com/akolanti/CampusQA/pkg/logger_i"
)

type QueryHandler struct {
	service qa.Service
	logger  *logger_i.Logger
}

func NewQueryHandler(service qa.Service) *QueryHandler {
	return &QueryHandler{
		service: service,
		logger:  logger_i.NewLogger("QueryHandler"),
	}
}

// Query answers one question synchronously. Only an empty query is rejected,
// every other failure is reported inside a 200 response with its outcome.
// @Summary      Answer a campus event question
// @Description  Sends the question to the language model and returns the answer, a fallback or a labelled error.
// @Tags         Query
// @Accept       json
// @Produce      json
// @Param        request  body      api.QueryRequest    true  "Question about campus events"
// @Success      200      {object}  api.QueryResponse   "Answer and outcome"
// @Failure      400      {object}  api.ErrorResponse   "Empty query or malformed body"
// @Router       /query [post]
func (h *QueryHandler) Query(w http.ResponseWriter, r *http.Request) {
	log := h.logger.WithTrace(r.Context())
	traceId := traceFrom(r)

	var requestData api.QueryRequest
	body := http.MaxBytesReader(w, r.Body, config.MaxQueryBodySize)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(&requestData); err != nil {
		log.Warn("Bad query request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, traceId, "Bad Request")
		return
	}
	if strings.TrimSpace(requestData.Query) == "" {
		log.Warn("Empty query")
		WriteErrorResponse(w, http.StatusBadRequest, traceId, "query is required")
		return
	}

	result := h.service.Ask(r.Context(), requestData.Query)
	writeJsonResponse(w, http.StatusOK, adapter.ToQueryResponse(result), log)
}

// Health godoc
// @Summary      Liveness check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /health [get]
func (h *QueryHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{Status: "ok"}, h.logger)
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, traceId string, message string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(traceId, message, httpCode), logger_i.NewLogger("QueryHandler"))
}

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}, log *logger_i.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// headers are already out, nothing left but logging
		log.Error("Error encoding response", "error", err)
	}
}

func traceFrom(r *http.Request) string {
	trace, _ := r.Context().Value(config.TRACE_ID_KEY).(string)
	return trace
}
