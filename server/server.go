package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"auto_blog_generator/generator"
)

// Server exposes the generation pipeline over HTTP.
type Server struct {
	pipeline *generator.Pipeline
}

// New wires the HTTP façade to a pipeline.
func New(pipeline *generator.Pipeline) (*Server, error) {
	if pipeline == nil {
		return nil, errors.New("pipeline is required")
	}
	return &Server{pipeline: pipeline}, nil
}

// Routes builds the handler tree.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/blogs", s.handleBlogs)
	mux.HandleFunc("/healthz", handleHealthz)
	return logMiddleware(mux)
}

// --- Handlers ---

type blogCreateReq struct {
	Topic string `json:"topic"`
}

type blogData struct {
	Topic string         `json:"topic"`
	Blog  generator.Blog `json:"blog"`
}

type blogResp struct {
	Data blogData `json:"data"`
}

type errorResp struct {
	Message string `json:"message"`
}

func (s *Server) handleBlogs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req blogCreateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		writeError(w, http.StatusBadRequest, "topic is required")
		return
	}

	blog, err := s.pipeline.Run(r.Context(), req.Topic)
	if err != nil {
		// Never leak a partially generated blog in an error body.
		switch {
		case errors.Is(err, generator.ErrEmptyTopic):
			writeError(w, http.StatusBadRequest, "topic is required")
		case errors.Is(err, generator.ErrModelUnavailable):
			slog.Error("model call failed", slog.String("error", err.Error()))
			writeError(w, http.StatusBadGateway, "blog generation failed")
		default:
			slog.Error("pipeline run failed", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, blogResp{Data: blogData{Topic: req.Topic, Blog: blog}})
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResp{Message: msg})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)))
	})
}
