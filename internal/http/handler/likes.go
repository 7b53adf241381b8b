package handler

import (
	"net/http"
	"strings"

	"poetry/internal/auth"
	"poetry/internal/like"
)

type LikeHandler struct {
	Svc *like.Service
}

type toggleLikeReq struct {
	UserID *string `json:"userId"`
}

// identity resolves who is liking: body userId, then the userId query
// parameter, then x-user-id, then a verified visitor token, then the
// network address.
func identity(r *http.Request, bodyUserID *string) like.Identity {
	id := like.Identity{Address: clientIP(r)}

	candidates := []string{
		r.URL.Query().Get("userId"),
		r.Header.Get("x-user-id"),
	}
	if bodyUserID != nil {
		candidates = append([]string{*bodyUserID}, candidates...)
	}
	if v, ok := auth.VisitorIDFromContext(r.Context()); ok {
		candidates = append(candidates, v)
	}

	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			id.UserID = c
			break
		}
	}
	return id
}

func (h *LikeHandler) Status(w http.ResponseWriter, r *http.Request) {
	poemID, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	st, err := h.Svc.Status(r.Context(), poemID, identity(r, nil))
	if err != nil {
		writeServiceError(w, r, err, "like status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":   st.Count,
		"isLiked": st.Liked,
	})
}

func (h *LikeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	poemID, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req toggleLikeReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	st, err := h.Svc.Toggle(r.Context(), poemID, identity(r, req.UserID))
	if err != nil {
		writeServiceError(w, r, err, "toggle like")
		return
	}

	msg := "like removed"
	if st.Liked {
		msg = "like added"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": msg,
		"count":   st.Count,
		"isLiked": st.Liked,
	})
}
