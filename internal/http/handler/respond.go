package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"

	"poetry/internal/comment"
	"poetry/internal/poem"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

var errInvalidID = errors.New("invalid id")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps domain errors to status codes. Anything unknown is
// logged with the request id and reported as a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, op string) {
	switch {
	case errors.Is(err, poem.ErrNotFound):
		writeError(w, http.StatusNotFound, "poem not found")
	case errors.Is(err, poem.ErrInvalidInput), errors.Is(err, comment.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().
			Err(err).
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("op", op).
			Msg("request failed")
		writeError(w, http.StatusInternalServerError, "server error")
	}
}

// decodeBody decodes a JSON body into v. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func idParam(r *http.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// clientIP is the request's network address without the port. With
// TRUST_PROXY the RealIP middleware has already rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "route not found")
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Backend API is running!",
	})
}
