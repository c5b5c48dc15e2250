package wire

import (
	"time"

	"cinetheque/internal/adaptor"
	"cinetheque/internal/data/repository"
	"cinetheque/pkg/middleware"
	"cinetheque/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func wireInteraction(
	r *chi.Mux,
	handler *adaptor.InteractionHandler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) {
	writeLimit := httprate.LimitByIP(config.RateLimit.RequestsPerMinute, time.Minute)

	r.Route("/{movieID}", func(r chi.Router) {
		r.Get("/comments/", handler.GetComments)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(repo.Session, repo.User, logger))
			r.Use(writeLimit)

			r.Post("/comments/", handler.CreateComment)
			r.Post("/likes/", handler.ToggleLike)
			r.Post("/ratings/", handler.SetRating)
		})
	})
}
