package http

import (
	"net/http"

	"poetry/internal/auth"
	"poetry/internal/comment"
	"poetry/internal/config"
	"poetry/internal/http/handler"
	mw "poetry/internal/http/middleware"
	"poetry/internal/like"
	"poetry/internal/poem"
	"poetry/internal/view"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

// NewRouter wires every route. visitors may be nil, which disables visitor
// tokens.
func NewRouter(cfg config.Config, db *gorm.DB, visitors *auth.VisitorTokens) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	if cfg.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(mw.Logger)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	// Set before Route so the /api subrouter inherits them.
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.NotFound)

	// audio files are public
	r.Handle("/audio/*", http.StripPrefix("/audio/", http.FileServer(http.Dir(cfg.AudioDir))))

	poemH := &handler.PoemHandler{Svc: &poem.Service{DB: db, DefaultAuthor: cfg.DefaultAuthor}}
	commentH := &handler.CommentHandler{Svc: &comment.Service{DB: db}}
	likeH := &handler.LikeHandler{Svc: &like.Service{DB: db}}
	viewH := &handler.ViewHandler{Svc: &view.Service{DB: db}}

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.RequireAPIKey(cfg.APIKey))

		r.Get("/health", handler.Health)

		r.Get("/poems", poemH.List)
		r.Post("/poems", poemH.Create)
		r.Get("/poems/{id}", poemH.Get)

		r.Get("/poems/{id}/comments", commentH.List)
		r.Post("/poems/{id}/comments", commentH.Add)
		r.Delete("/comments/{id}", commentH.Remove)

		r.Group(func(r chi.Router) {
			r.Use(auth.OptionalVisitor(visitors))

			r.Get("/poems/{id}/likes", likeH.Status)
			r.Post("/poems/{id}/likes", likeH.Toggle)
		})

		r.Get("/poems/{id}/views", viewH.Count)
		r.Post("/poems/{id}/views", viewH.Record)

		if visitors != nil {
			vh := &handler.VisitorHandler{Tokens: visitors}
			r.Post("/visitors", vh.Issue)
		}
	})

	return r
}
