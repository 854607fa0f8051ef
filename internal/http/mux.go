package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type RainbowContextKey string

const (
	requestIDContextKey = RainbowContextKey("requestID")
	requestIDHeader     = "X-Amzn-RequestId"
)

func storeRequestID(next http.Handler) http.Handler {
	f := func(w http.ResponseWriter, request *http.Request) {
		id := uuid.NewString()
		w.Header().Set(requestIDHeader, id)

		ctx := context.WithValue(request.Context(), requestIDContextKey, id)
		r := request.Clone(ctx)

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(f)
}

func getRequestID(request *http.Request) (string, bool) {
	ctx := request.Context()
	id, ok := ctx.Value(requestIDContextKey).(string)
	return id, ok
}

// NewChiMux routes the subset of the Lambda Invoke API needed to deliver S3
// notifications to the copy handler.
func NewChiMux(invoke InvokeHandler, metrics *Metrics) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger, middleware.Recoverer, storeRequestID)

	r.Get("/healthz", health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Post("/2015-03-31/functions/{function}/invocations", invoke.Invoke)

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
