package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/example/goal-planner/internal/models"
	"github.com/example/goal-planner/internal/requestid"
)

// CORS lets the static front end call the API from any origin. Preflight
// requests are answered here and never reach the router.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Expose-Headers", requestid.Header)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequestID reuses the caller's X-Request-ID or assigns a new one, echoes it
// in the response and stores it in the request context. The id is also set
// under chi's key so the access log reports the same value.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestid.Header)
		if id == "" || len(id) > 128 {
			id = requestid.New()
		}
		w.Header().Set(requestid.Header, id)
		ctx := requestid.NewContext(r.Context(), id)
		ctx = context.WithValue(ctx, middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Recoverer turns a panic in a handler into a JSON 500 and keeps the
// process serving.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("handler panicked",
					zap.String("request_id", requestid.FromContext(r.Context())),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)
				err := respondJSON(w, http.StatusInternalServerError, models.ErrorDescriptor{
					Error: fmt.Sprintf("An unexpected error occurred: %v", rec),
				})
				if err != nil {
					logger.Debug("write response", zap.Int("status", http.StatusInternalServerError), zap.Error(err))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
