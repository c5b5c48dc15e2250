package adaptor

import (
	"errors"
	"net/http"

	"cinetheque/internal/usecase"
	"cinetheque/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Movie       *MovieHandler
	Actor       *ActorHandler
	Interaction *InteractionHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Movie:       NewMovieHandler(service.Movie, log),
		Actor:       NewActorHandler(service.Actor, log),
		Interaction: NewInteractionHandler(service.Interaction, log),
	}
}

// respondServiceError maps service sentinels onto the HTTP error taxonomy.
// Unclassified errors become opaque 500s.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrAuthenticationRequired):
		log.Warn(operation+" failed - authentication required", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
