package usecase

import (
	"context"
	"fmt"
	"time"

	"cinetheque/internal/data/entity"
	"cinetheque/internal/data/repository"
	"cinetheque/internal/dto/request"
	"cinetheque/internal/dto/response"
	"cinetheque/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ActorService interface {
	GetActors(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ActorResponse], error)
	GetActorByID(ctx context.Context, actorID uuid.UUID) (*response.ActorResponse, error)
	CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
	UpdateActor(ctx context.Context, actorID uuid.UUID, req *request.ActorUpdateRequest) (*response.ActorResponse, error)
	DeleteActor(ctx context.Context, actorID uuid.UUID) error
}

type actorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewActorService(repo *repository.Repository, log *zap.Logger) ActorService {
	return &actorService{
		repo: repo,
		log:  log.With(zap.String("service", "actor")),
	}
}

func (s *actorService) GetActors(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ActorResponse], error) {
	actors, err := s.repo.Actor.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get actors", zap.Error(err))
		return nil, fmt.Errorf("get actors: %w", err)
	}

	total, err := s.repo.Actor.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count actors: %w", err)
	}

	actorResponses := make([]response.ActorResponse, len(actors))
	for i, actor := range actors {
		actorResponses[i] = response.ActorToResponse(actor)
	}

	return response.NewPaginatedResponse(actorResponses, req.Page, req.PerPage, total), nil
}

func (s *actorService) GetActorByID(ctx context.Context, actorID uuid.UUID) (*response.ActorResponse, error) {
	actor, err := s.repo.Actor.FindByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}
	if actor == nil {
		return nil, fmt.Errorf("%w: actor %s", ErrNotFound, actorID.String())
	}

	actorResp := response.ActorToResponse(actor)
	return &actorResp, nil
}

func (s *actorService) CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create actor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	actor := &entity.Actor{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	}

	if err := s.repo.Actor.Create(ctx, actor); err != nil {
		s.log.Error("Failed to create actor", zap.Error(err), zap.String("first_name", req.FirstName))
		return nil, fmt.Errorf("create actor: %w", err)
	}

	s.log.Info("Actor created",
		zap.String("actor_id", actor.ID.String()),
		zap.String("full_name", response.FullName(actor.FirstName, actor.LastName)),
	)

	actorResp := response.ActorToResponse(actor)
	return &actorResp, nil
}

func (s *actorService) UpdateActor(ctx context.Context, actorID uuid.UUID, req *request.ActorUpdateRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update actor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	actor, err := s.repo.Actor.FindByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}
	if actor == nil {
		return nil, fmt.Errorf("%w: actor %s", ErrNotFound, actorID.String())
	}

	if req.FirstName != nil {
		actor.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		actor.LastName = req.LastName
	}
	if req.Bio != nil {
		actor.Bio = req.Bio
	}
	actor.UpdatedAt = time.Now()

	if err := s.repo.Actor.Update(ctx, actor); err != nil {
		s.log.Error("Failed to update actor",
			zap.Error(err),
			zap.String("actor_id", actorID.String()),
		)
		return nil, fmt.Errorf("update actor: %w", err)
	}

	actorResp := response.ActorToResponse(actor)
	return &actorResp, nil
}

func (s *actorService) DeleteActor(ctx context.Context, actorID uuid.UUID) error {
	actor, err := s.repo.Actor.FindByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("get actor: %w", err)
	}
	if actor == nil {
		return fmt.Errorf("%w: actor %s", ErrNotFound, actorID.String())
	}

	if err := s.repo.Actor.Delete(ctx, actorID); err != nil {
		s.log.Error("Failed to delete actor",
			zap.Error(err),
			zap.String("actor_id", actorID.String()),
		)
		return fmt.Errorf("delete actor: %w", err)
	}

	return nil
}
