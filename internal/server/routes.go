package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/pierkiroule/tagweave/internal/engine"
	"github.com/pierkiroule/tagweave/internal/store"
)

// writeError maps engine errors onto status codes: validation failures
// are 400, unknown tags 404, everything else 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrTagNotFound):
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text  string `json:"text"`
		Title string `json:"title"`
		Top   int    `json:"top"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}

	tags, err := s.engine.Extract(req.Text, req.Title, req.Top)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"tags":  tags,
		"total": len(tags),
	})
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DocumentID string `json:"document_id"`
		Text       string `json:"text"`
		Title      string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}

	tags, err := s.engine.Ingest(req.DocumentID, req.Text, req.Title)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"document_id": req.DocumentID,
		"tags":        tags,
	})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Seed  []string `json:"seed"`
		Limit int      `json:"limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}

	tags, err := s.engine.SuggestFromSeeds(req.Seed, req.Limit)
	if err != nil {
		writeError(w, err)
		return
	}

	if tags == nil {
		tags = []store.TagScore{}
	}
	writeJSON(w, map[string]any{"tags": tags})
}

func (s *Server) handleRelated(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	related, err := s.engine.RelatedTo(tag, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	if related == nil {
		related = []store.TagScore{}
	}
	writeJSON(w, map[string]any{
		"tag":  tag,
		"tags": related,
	})
}

func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	trending, err := s.engine.Trending(days, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	if trending == nil {
		trending = []store.TagScore{}
	}
	writeJSON(w, map[string]any{"tags": trending})
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	var req struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}

	to, err := s.engine.Merge(req.From, req.To)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"ok": true,
		"to": to,
	})
}
