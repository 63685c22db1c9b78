package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware tags each request with an ID and logs its outcome.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		requestId := uuid.New().String()
		recorder := &statusRecorder{ResponseWriter: res, status: http.StatusOK}
		started := time.Now()

		next.ServeHTTP(recorder, req)

		log.Info().
			Str("requestId", requestId).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", recorder.status).
			Dur("elapsed", time.Since(started)).
			Msg("handled request")
	})
}
