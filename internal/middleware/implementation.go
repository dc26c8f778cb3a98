package middleware

import (
	"net/http"
	"strconv"

	"github.com/akolanti/CampusQA/internal/metrics"
	"github.com/akolanti/CampusQA/pkg/logger_i"
)

type requestResponseStruct struct {
	writer http.ResponseWriter
	req    *http.Request
	logger *logger_i.Logger
}

// Wrap injects the trace id and records the request count by path and status.
func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: http.StatusOK}
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc()
		re.logger.Debug("Request done", "path", r.URL.Path, "status", rec.Status)
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Info("New request received", "method", re.req.Method, "path", re.req.URL.Path)
	return injectTrace(re)
}
