package wire

import (
	"cinetheque/internal/adaptor"
	"cinetheque/internal/data/repository"
	"cinetheque/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireActor(r *chi.Mux, handler *adaptor.ActorHandler, repo *repository.Repository, logger *zap.Logger) {
	r.Route("/actors", func(r chi.Router) {
		r.Get("/", handler.GetActors)
		r.Get("/{id}/", handler.GetActorByID)
	})

	r.Route("/admin/actors", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, logger))
		r.Use(middleware.Admin(repo.User, logger))

		r.Post("/", handler.CreateActor)
		r.Put("/{id}", handler.UpdateActor)
		r.Delete("/{id}", handler.DeleteActor)
	})
}
