package wire

import (
	"cinetheque/internal/adaptor"
	"cinetheque/internal/data/repository"
	"cinetheque/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(r *chi.Mux, handler *adaptor.AuthHandler, repo *repository.Repository, logger *zap.Logger) {
	r.Post("/users/", handler.Register)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, logger))
		r.Get("/users/me/", handler.Me)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(repo.Session, repo.User, logger))
			r.Post("/logout", handler.Logout)
		})
	})
}
