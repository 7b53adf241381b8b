package handler

import (
	"net/http"

	"poetry/internal/auth"
)

type VisitorHandler struct {
	Tokens *auth.VisitorTokens
}

func (h *VisitorHandler) Issue(w http.ResponseWriter, r *http.Request) {
	id, token, err := h.Tokens.Issue()
	if err != nil {
		writeServiceError(w, r, err, "issue visitor token")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"userId": id,
		"token":  token,
	})
}
