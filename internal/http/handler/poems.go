package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"poetry/internal/poem"
)

type PoemHandler struct {
	Svc *poem.Service
}

type poemDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description *string   `json:"description"`
	WrittenDate *string   `json:"writtenDate"`
	Theme       *string   `json:"theme"`
	Audio       *string   `json:"audio"`
	Verses      []string  `json:"verses"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toPoemDTO(p poem.Poem) poemDTO {
	return poemDTO{
		ID:          strconv.FormatUint(p.ID, 10),
		Title:       p.Title,
		Author:      p.Author,
		Description: nullIfEmpty(p.Description),
		WrittenDate: nullIfEmpty(p.WrittenDate),
		Theme:       nullIfEmpty(p.Theme),
		Audio:       nullIfEmpty(p.AudioURL),
		Verses:      p.Lines(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func nullIfEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func (h *PoemHandler) List(w http.ResponseWriter, r *http.Request) {
	poems, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list poems")
		return
	}

	out := make([]poemDTO, 0, len(poems))
	for _, p := range poems {
		out = append(out, toPoemDTO(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *PoemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "get poem")
		return
	}
	writeJSON(w, http.StatusOK, toPoemDTO(*p))
}

type createPoemReq struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Verses      []string `json:"verses"`
	Description *string  `json:"description"`
	Theme       *string  `json:"theme"`
	WrittenDate *string  `json:"writtenDate"`
	Audio       *string  `json:"audio"`
}

func (h *PoemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPoemReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	id, err := h.Svc.Create(r.Context(), poem.CreateInput{
		Title:       req.Title,
		Author:      req.Author,
		Verses:      req.Verses,
		Description: req.Description,
		Theme:       req.Theme,
		WrittenDate: req.WrittenDate,
		AudioURL:    req.Audio,
	})
	if err != nil {
		writeServiceError(w, r, err, "create poem")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "poem created",
		"id":      id,
	})
}
