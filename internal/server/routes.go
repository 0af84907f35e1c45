package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hacksolana/hks/internal/content"
	"github.com/hacksolana/hks/internal/model"
	"github.com/hacksolana/hks/internal/report"
	"github.com/hacksolana/hks/internal/site"
)

// contactAccepted is the body of a successful contact submission.
type contactAccepted struct {
	Status        string `json:"status"`
	ConfirmMillis int64  `json:"confirmMillis"`
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Page
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.Handle("GET /static/", site.StaticHandler())
	mux.HandleFunc("GET /data.json", s.handleContent)

	// API
	mux.HandleFunc("POST /api/scan", s.handleScan)
	mux.HandleFunc("POST /api/contact", s.handleContact)

	// Operations
	mux.HandleFunc("GET /healthz", healthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)
	mux.Handle("GET /metrics", s.opts.Metrics.Handler())
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.opts.Renderer.Render(&buf); err != nil {
		s.opts.Logger.Error("failed to render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("section")
	if name == "" {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(s.opts.Content.Raw())
		return
	}

	section, err := s.opts.Content.Section(name)
	if err != nil {
		if errors.Is(err, content.ErrUnknownSection) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(section)
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	format := report.FormatJSON
	if name := r.URL.Query().Get("format"); name != "" {
		f, err := report.ParseFormat(name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		format = f
	}

	var req model.ScanRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.IsBlank() {
		s.opts.Metrics.ScanRejected()
		writeError(w, http.StatusBadRequest, "address is required")
		return
	}

	rep, err := s.opts.Simulator.Scan(r.Context(), req.Address)
	if err != nil {
		// The client went away before the delay elapsed; nobody is listening.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		s.opts.Logger.Error("scan failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	s.opts.Metrics.ScanCompleted(rep.Result.Level)

	var buf bytes.Buffer
	if _, err := report.New(format, &buf, false).Write(rep); err != nil {
		s.opts.Logger.Error("failed to render scan report", "format", format.String(), "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var msg model.ContactMessage
	if !s.decode(w, r, &msg) {
		return
	}
	if !msg.Valid() {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "all fields are required",
			Fields: msg.MissingFields(),
		})
		return
	}

	if err := s.opts.Contact.Receive(r.Context(), msg); err != nil {
		s.opts.Logger.Error("failed to receive contact message", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusAccepted, contactAccepted{
		Status:        "received",
		ConfirmMillis: s.opts.ConfirmDelay.Milliseconds(),
	})
}

// decode reads a JSON body into v and writes the error response itself.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.opts.Ready != nil {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()
		if err := s.opts.Ready(ctx); err != nil {
			s.opts.Logger.Warn("readiness check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
