package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog"
	"github.com/rs/zerolog"
	"go.uber.org/zap"

	"github.com/example/goal-planner/internal/agents"
	"github.com/example/goal-planner/internal/models"
)

const (
	msgInvalidJSON = "Invalid JSON in request body."
	msgNoGoal      = "No goal provided in the request."
)

// Options tune NewRouter.
type Options struct {
	// AccessLog enables one JSON access log line per request on stdout.
	AccessLog bool
	// ServiceName tags access log lines.
	ServiceName string
	// AccessLogger replaces the default stdout access logger.
	AccessLogger *zerolog.Logger
}

type handler struct {
	planner agents.Planner
	logger  *zap.Logger
}

// NewRouter exposes planner as POST /api/plan.
func NewRouter(planner agents.Planner, logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handler{planner: planner, logger: logger}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Recoverer(logger))
	if opts.AccessLog {
		// httplog.Handler, unlike RequestLogger, installs no request id or
		// recoverer of its own; ours above stay in charge.
		r.Use(httplog.Handler(accessLogger(opts)))
	}
	r.Use(CORS)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.respond(w, http.StatusNotFound, models.ErrorDescriptor{Error: "Not found."})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.respond(w, http.StatusMethodNotAllowed, models.ErrorDescriptor{Error: "Method not allowed."})
	})

	r.Post("/api/plan", h.plan)
	return r
}

func accessLogger(opts Options) zerolog.Logger {
	if opts.AccessLogger != nil {
		return *opts.AccessLogger
	}
	name := opts.ServiceName
	if name == "" {
		name = "goal-planner"
	}
	return httplog.NewLogger(name, httplog.Options{JSON: true, Concise: true})
}

func (h *handler) plan(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.respond(w, http.StatusBadRequest, models.ErrorDescriptor{Error: msgInvalidJSON})
		return
	}
	var req map[string]json.RawMessage
	if err := json.Unmarshal(body, &req); err != nil || req == nil {
		h.respond(w, http.StatusBadRequest, models.ErrorDescriptor{Error: msgInvalidJSON})
		return
	}
	goal, ok := goalFrom(req)
	if !ok {
		h.respond(w, http.StatusBadRequest, models.ErrorDescriptor{Error: msgNoGoal})
		return
	}

	// A client that goes away does not cancel the provider call; the result
	// is simply not delivered.
	plan, err := h.planner.GeneratePlan(context.WithoutCancel(r.Context()), goal)
	if err == nil && plan == nil {
		err = errors.New("planner returned no plan")
	}
	if err != nil {
		pe := agents.AsPlanError(err)
		h.respond(w, http.StatusInternalServerError, models.ErrorDescriptor{Error: pe.Message})
		return
	}
	h.respond(w, http.StatusOK, plan)
}

// goalFrom extracts a non-blank string "goal" member.
func goalFrom(req map[string]json.RawMessage) (string, bool) {
	raw, ok := req["goal"]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return models.NormalizeGoal(s)
}

func (h *handler) respond(w http.ResponseWriter, status int, v any) {
	if err := respondJSON(w, status, v); err != nil {
		h.logger.Debug("write response", zap.Int("status", status), zap.Error(err))
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Server wraps http.Server with the planner's defaults.
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

func NewServer(addr string, h http.Handler, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
			ErrorLog:          zap.NewStdLog(logger),
		},
		logger: logger,
	}
}

func (s *Server) Addr() string { return s.srv.Addr }

// ListenAndServe blocks until the server stops. It returns nil after a
// graceful Shutdown.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// Serve accepts connections on l until Shutdown; l is closed on return.
func (s *Server) Serve(l net.Listener) error {
	s.logger.Info("server listening", zap.String("addr", l.Addr().String()))
	if err := s.srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown waits for in-flight requests, including their provider calls,
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.srv.Shutdown(ctx)
}
