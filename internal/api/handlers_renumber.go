package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dgallion1/outlinefix/internal/outline"
)

type renumberRequest struct {
	Labels []string `json:"labels"`
}

type renumberResponse struct {
	Labels  []string         `json:"labels"`
	Changes []outline.Change `json:"changes"`
}

type batchRequest struct {
	Lists [][]string `json:"lists"`
}

type batchItem struct {
	Labels  []string         `json:"labels,omitempty"`
	Changes []outline.Change `json:"changes,omitempty"`
	Error   string           `json:"error,omitempty"`
}

func (s *Server) handleRenumber(w http.ResponseWriter, r *http.Request) {
	var req renumberRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if len(req.Labels) > s.cfg.MaxLabels {
		jsonError(w, fmt.Sprintf("too many labels (max %d)", s.cfg.MaxLabels), http.StatusRequestEntityTooLarge)
		return
	}

	changes, err := s.renumberer.Map(req.Labels)
	if err != nil {
		jsonError(w, err.Error(), errorStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(newRenumberResponse(changes))
}

func (s *Server) handleRenumberBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Lists == nil {
		jsonError(w, "lists is required", http.StatusBadRequest)
		return
	}
	total := 0
	for _, l := range req.Lists {
		total += len(l)
	}
	if total > s.cfg.MaxLabels {
		jsonError(w, fmt.Sprintf("too many labels (max %d)", s.cfg.MaxLabels), http.StatusRequestEntityTooLarge)
		return
	}

	results := s.renumberer.MapBatch(r.Context(), req.Lists, s.cfg.BatchConcurrency)
	items := make([]batchItem, len(results))
	failed := 0
	for i, res := range results {
		if res.Err != nil {
			items[i] = batchItem{Error: res.Err.Error()}
			failed++
			continue
		}
		resp := newRenumberResponse(res.Changes)
		items[i] = batchItem{Labels: resp.Labels, Changes: resp.Changes}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"results": items,
		"failed":  failed,
	})
}

func newRenumberResponse(changes []outline.Change) renumberResponse {
	labels := make([]string, len(changes))
	for i, c := range changes {
		labels[i] = c.New
	}
	if changes == nil {
		changes = []outline.Change{}
	}
	return renumberResponse{Labels: labels, Changes: changes}
}

// decodeJSON reads a size-limited JSON body into v. It writes the error
// response itself and reports whether decoding succeeded.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		jsonError(w, "invalid input: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, outline.ErrInvalidInput), errors.Is(err, outline.ErrMalformedLabel):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
