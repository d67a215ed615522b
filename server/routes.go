package server

import (
	"bytes"
	"errors"
	"net/http"

	algovista "github.com/iayr1/algovista-sub001"
	"github.com/iayr1/algovista-sub001/internal/page"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeSVG  = "image/svg+xml"
	contentTypeJSON = "application/json"
)

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, page.ListingPath, http.StatusFound)
	})
	mux.HandleFunc("GET /algorithms", s.handleIndex)
	mux.HandleFunc("GET /algorithms/{$}", s.handleIndex)
	mux.HandleFunc("GET /algorithms/{id}", s.handleAlgorithm)
	mux.HandleFunc("GET /algorithms/{id}/{tab}/{$}", s.handleTab)
	mux.HandleFunc("GET /algorithms/{id}/widget.svg", s.handleWidget)
	mux.HandleFunc("GET /api/algorithms", s.handleAPIList)
	mux.HandleFunc("GET /api/algorithms/{id}", s.handleAPIAlgorithm)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if s.cfg.Metrics != nil {
		mux.Handle("GET /metrics", s.cfg.Metrics.Handler())
	}
	mux.HandleFunc("GET /", s.handleNotFound)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.site.RenderIndex(r.Context(), &buf); err != nil {
		s.internalError(w, r, err)
		return
	}
	writeBody(w, http.StatusOK, contentTypeHTML, buf.Bytes())
}

func (s *Server) handleAlgorithm(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	res, err := s.site.RenderAlgorithm(r.Context(), &buf, r.PathValue("id"), r.URL.Query())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	status := http.StatusOK
	if res.NotFound {
		status = http.StatusNotFound
	}
	writeBody(w, status, contentTypeHTML, buf.Bytes())
}

// handleTab serves the directory-style tab links of exported pages.
func (s *Server) handleTab(w http.ResponseWriter, r *http.Request) {
	tab, ok := page.LookupTab(r.PathValue("tab"))
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	q := r.URL.Query()
	q.Set("tab", string(tab))

	var buf bytes.Buffer
	res, err := s.site.RenderAlgorithm(r.Context(), &buf, r.PathValue("id"), q)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	status := http.StatusOK
	if res.NotFound {
		status = http.StatusNotFound
	}
	writeBody(w, status, contentTypeHTML, buf.Bytes())
}

func (s *Server) handleWidget(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := s.site.RenderWidget(r.Context(), &buf, r.PathValue("id"), r.URL.Query())
	switch {
	case errors.Is(err, algovista.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case err != nil:
		s.internalError(w, r, err)
	default:
		w.Header().Set("Cache-Control", "public, max-age=3600")
		writeBody(w, http.StatusOK, contentTypeSVG, buf.Bytes())
	}
}

func (s *Server) handleAPIList(w http.ResponseWriter, r *http.Request) {
	b, err := s.site.CatalogJSON()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeBody(w, http.StatusOK, contentTypeJSON, b)
}

func (s *Server) handleAPIAlgorithm(w http.ResponseWriter, r *http.Request) {
	b, err := s.site.DescriptorJSON(r.PathValue("id"))
	switch {
	case errors.Is(err, algovista.ErrNotFound):
		s.jsonError(w, http.StatusNotFound, err)
	case err != nil:
		s.internalError(w, r, err)
	default:
		writeBody(w, http.StatusOK, contentTypeJSON, b)
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.site.RenderNotFound(r.Context(), &buf, ""); err != nil {
		s.internalError(w, r, err)
		return
	}
	writeBody(w, http.StatusNotFound, contentTypeHTML, buf.Bytes())
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) jsonError(w http.ResponseWriter, status int, err error) {
	b, merr := s.site.Codec().Marshal(errorBody{Error: err.Error()})
	if merr != nil {
		http.Error(w, err.Error(), status)
		return
	}
	writeBody(w, status, contentTypeJSON, b)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeBody(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
