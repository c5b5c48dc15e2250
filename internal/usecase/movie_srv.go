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

type MovieService interface {
	GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieListItemResponse], error)
	// GetMovieByID builds the detail read model. viewerID is nil for
	// anonymous viewers; user_liked/user_rating then stay false/nil.
	GetMovieByID(ctx context.Context, movieID uuid.UUID, viewerID *uuid.UUID) (*response.MovieDetailResponse, error)

	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error)
	UpdateMovie(ctx context.Context, movieID uuid.UUID, req *request.MovieUpdateRequest) (*response.MovieDetailResponse, error)
	DeleteMovie(ctx context.Context, movieID uuid.UUID) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieListItemResponse], error) {
	movies, err := s.repo.Movie.FindAllWithStats(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	total, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count movies", zap.Error(err))
		return nil, fmt.Errorf("count movies: %w", err)
	}

	movieResponses := make([]response.MovieListItemResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToListResponse(movie)
	}

	return response.NewPaginatedResponse(movieResponses, req.Page, req.PerPage, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID uuid.UUID, viewerID *uuid.UUID) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByIDWithStats(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %s", ErrNotFound, movieID.String())
	}

	castings, err := s.repo.Casting.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get castings",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("get castings: %w", err)
	}

	comments, err := s.repo.Comment.FindByMovieID(ctx, movieID, 100, 0)
	if err != nil {
		s.log.Error("Failed to get comments",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("get comments: %w", err)
	}

	userLiked := false
	var userRating *int
	if viewerID != nil {
		like, err := s.repo.Like.FindByUserAndMovie(ctx, *viewerID, movieID)
		if err != nil {
			return nil, fmt.Errorf("get viewer like: %w", err)
		}
		if like != nil {
			userLiked = like.Liked
		}

		rating, err := s.repo.Rating.FindByUserAndMovie(ctx, *viewerID, movieID)
		if err != nil {
			return nil, fmt.Errorf("get viewer rating: %w", err)
		}
		if rating != nil {
			userRating = &rating.Score
		}
	}

	detail := response.MovieToDetailResponse(movie, castings, comments, userLiked, userRating)
	return &detail, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid release_date", ErrValidation)
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TitleFR:         req.TitleFR,
		TitleOriginal:   req.TitleOriginal,
		Country:         req.Country,
		DurationMinutes: req.DurationMinutes,
		DirectorName:    req.DirectorName,
		Description:     req.Description,
		ReleaseDate:     releaseDate,
		Poster:          req.Poster,
		CoverImage:      req.CoverImage,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title_fr", req.TitleFR))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	if err := s.createCastings(ctx, movie.ID, req.Cast); err != nil {
		return nil, err
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title_fr", movie.TitleFR),
	)

	return s.GetMovieByID(ctx, movie.ID, nil)
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID uuid.UUID, req *request.MovieUpdateRequest) (*response.MovieDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %s", ErrNotFound, movieID.String())
	}

	if req.TitleFR != nil {
		movie.TitleFR = *req.TitleFR
	}
	if req.TitleOriginal != nil {
		movie.TitleOriginal = *req.TitleOriginal
	}
	if req.Country != nil {
		movie.Country = req.Country
	}
	if req.DurationMinutes != nil {
		movie.DurationMinutes = *req.DurationMinutes
	}
	if req.DirectorName != nil {
		movie.DirectorName = req.DirectorName
	}
	if req.Description != nil {
		movie.Description = req.Description
	}
	if req.ReleaseDate != nil {
		releaseDate, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid release_date", ErrValidation)
		}
		movie.ReleaseDate = releaseDate
	}
	if req.Poster != nil {
		movie.Poster = req.Poster
	}
	if req.CoverImage != nil {
		movie.CoverImage = req.CoverImage
	}
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}

	// A provided cast array replaces the existing casting set.
	if req.Cast != nil {
		if err := s.repo.Casting.DeleteByMovieID(ctx, movieID); err != nil {
			return nil, fmt.Errorf("replace castings: %w", err)
		}
		if err := s.createCastings(ctx, movieID, req.Cast); err != nil {
			return nil, err
		}
	}

	s.log.Info("Movie updated", zap.String("movie_id", movieID.String()))

	return s.GetMovieByID(ctx, movieID, nil)
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID uuid.UUID) error {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return fmt.Errorf("%w: movie %s", ErrNotFound, movieID.String())
	}

	if err := s.repo.Movie.Delete(ctx, movieID); err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	return nil
}

func (s *movieService) createCastings(ctx context.Context, movieID uuid.UUID, cast []request.CastingRequest) error {
	for _, item := range cast {
		actorID, err := uuid.Parse(item.ActorID)
		if err != nil {
			return fmt.Errorf("%w: invalid actor_id %s", ErrValidation, item.ActorID)
		}

		actor, err := s.repo.Actor.FindByID(ctx, actorID)
		if err != nil {
			return fmt.Errorf("check actor: %w", err)
		}
		if actor == nil {
			return fmt.Errorf("%w: actor %s", ErrNotFound, item.ActorID)
		}

		casting := &entity.Casting{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			MovieID:       movieID,
			ActorID:       actorID,
			CharacterName: item.CharacterName,
			DisplayOrder:  item.Order,
		}

		if err := s.repo.Casting.Create(ctx, casting); err != nil {
			return fmt.Errorf("create casting: %w", err)
		}
	}

	return nil
}
