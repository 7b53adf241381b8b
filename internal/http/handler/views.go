package handler

import (
	"net/http"

	"poetry/internal/view"
)

type ViewHandler struct {
	Svc *view.Service
}

func (h *ViewHandler) Record(w http.ResponseWriter, r *http.Request) {
	poemID, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	count, err := h.Svc.Record(r.Context(), poemID, clientIP(r))
	if err != nil {
		writeServiceError(w, r, err, "record view")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "view recorded",
		"count":   count,
	})
}

func (h *ViewHandler) Count(w http.ResponseWriter, r *http.Request) {
	poemID, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	count, err := h.Svc.Count(r.Context(), poemID)
	if err != nil {
		writeServiceError(w, r, err, "count views")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": count})
}
