package wire

import (
	"cinetheque/internal/adaptor"
	"cinetheque/internal/data/repository"
	"cinetheque/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(r *chi.Mux, handler *adaptor.MovieHandler, repo *repository.Repository, logger *zap.Logger) {
	// Public read model. The detail view resolves the viewer when a
	// valid session token is presented, anonymously otherwise.
	r.Route("/movies", func(r chi.Router) {
		r.Get("/", handler.GetMovies)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthOptional(repo.Session, logger))
			r.Get("/{id}/", handler.GetMovieByID)
		})
	})

	// Catalogue administration
	r.Route("/admin/movies", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, logger))
		r.Use(middleware.Admin(repo.User, logger))

		r.Post("/", handler.CreateMovie)
		r.Put("/{id}", handler.UpdateMovie)
		r.Delete("/{id}", handler.DeleteMovie)
	})
}
