package usecase

import (
	"cinetheque/internal/data/repository"
	"cinetheque/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Movie       MovieService
	Actor       ActorService
	Interaction InteractionService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		Movie:       NewMovieService(repo, log),
		Actor:       NewActorService(repo, log),
		Interaction: NewInteractionService(repo, log),
	}
}
