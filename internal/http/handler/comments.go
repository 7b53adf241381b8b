package handler

import (
	"net/http"
	"time"

	"poetry/internal/comment"
)

type CommentHandler struct {
	Svc *comment.Service
}

type commentDTO struct {
	ID          uint64    `json:"id"`
	AuthorName  string    `json:"author_name"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	poemID, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.Svc.List(r.Context(), poemID)
	if err != nil {
		writeServiceError(w, r, err, "list comments")
		return
	}

	out := make([]commentDTO, 0, len(rows))
	for _, c := range rows {
		out = append(out, commentDTO{
			ID:          c.ID,
			AuthorName:  c.AuthorName,
			CommentText: c.CommentText,
			CreatedAt:   c.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type addCommentReq struct {
	AuthorName  string `json:"author_name"`
	CommentText string `json:"comment_text"`
}

func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	poemID, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req addCommentReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	id, err := h.Svc.Add(r.Context(), poemID, comment.AddInput{
		AuthorName:  req.AuthorName,
		CommentText: req.CommentText,
	})
	if err != nil {
		writeServiceError(w, r, err, "add comment")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "comment added",
		"id":      id,
	})
}

// Remove answers 200 whether or not the comment existed. An id that does not
// parse cannot match a row, so nothing is deleted.
func (h *CommentHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if id, err := idParam(r, "id"); err == nil {
		if err := h.Svc.Remove(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "remove comment")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "comment deleted"})
}
