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

// InteractionService implements the rules tying users to movies through
// likes, ratings and comments. Likes and ratings are keyed unique per
// (user, movie); comments always append.
type InteractionService interface {
	// ToggleLike flips the like state when desired is nil, or forces it
	// when set. Returns the resulting state and the movie's liked count.
	ToggleLike(ctx context.Context, userID, movieID uuid.UUID, desired *bool) (*response.LikeResponse, error)
	// SetRating upserts the viewer's score for the movie. Score must be in [1,10].
	SetRating(ctx context.Context, userID, movieID uuid.UUID, score int) (*response.RatingResponse, error)
	AddComment(ctx context.Context, userID, movieID uuid.UUID, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	GetComments(ctx context.Context, movieID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
}

type interactionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewInteractionService(repo *repository.Repository, log *zap.Logger) InteractionService {
	return &interactionService{
		repo: repo,
		log:  log.With(zap.String("service", "interaction")),
	}
}

func (s *interactionService) ToggleLike(ctx context.Context, userID, movieID uuid.UUID, desired *bool) (*response.LikeResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %s", ErrNotFound, movieID.String())
	}

	var liked bool
	if desired != nil {
		liked, err = s.repo.Like.Set(ctx, userID, movieID, *desired)
	} else {
		liked, err = s.repo.Like.Toggle(ctx, userID, movieID)
	}
	if err != nil {
		s.log.Error("Failed to set like",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("set like: %w", err)
	}

	likesCount, err := s.repo.Like.CountByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to count likes",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("count likes: %w", err)
	}

	s.log.Info("Like updated",
		zap.String("user_id", userID.String()),
		zap.String("movie_id", movieID.String()),
		zap.Bool("liked", liked),
		zap.Int64("likes_count", likesCount),
	)

	return &response.LikeResponse{
		Liked:      liked,
		LikesCount: likesCount,
	}, nil
}

func (s *interactionService) SetRating(ctx context.Context, userID, movieID uuid.UUID, score int) (*response.RatingResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}

	// Range check happens before any store access.
	if score < 1 || score > 10 {
		return nil, fmt.Errorf("%w: score must be between 1 and 10", ErrValidation)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %s", ErrNotFound, movieID.String())
	}

	rating := &entity.Rating{
		Base: entity.Base{
			ID: uuid.New(),
		},
		UserID:  userID,
		MovieID: movieID,
		Score:   score,
	}

	if err := s.repo.Rating.Upsert(ctx, rating); err != nil {
		s.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("upsert rating: %w", err)
	}

	user, _ := s.repo.User.FindByID(ctx, userID)
	username := ""
	if user != nil {
		username = user.Username
	}

	s.log.Info("Rating saved",
		zap.String("user_id", userID.String()),
		zap.String("movie_id", movieID.String()),
		zap.Int("score", score),
	)

	ratingResp := response.RatingToResponse(rating, username)
	return &ratingResp, nil
}

func (s *interactionService) AddComment(ctx context.Context, userID, movieID uuid.UUID, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	// Anonymous comments are rejected by policy; see DESIGN.md.
	if userID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %s", ErrNotFound, movieID.String())
	}

	comment := &entity.Comment{
		ID:          uuid.New(),
		MovieID:     movieID,
		UserID:      userID,
		Text:        req.Text,
		Edited:      false,
		PublishedAt: time.Now(),
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("create comment: %w", err)
	}

	user, _ := s.repo.User.FindByID(ctx, userID)
	username := ""
	if user != nil {
		username = user.Username
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("movie_id", movieID.String()),
	)

	commentResp := response.CommentToResponse(comment, username)
	return &commentResp, nil
}

func (s *interactionService) GetComments(ctx context.Context, movieID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %s", ErrNotFound, movieID.String())
	}

	comments, err := s.repo.Comment.FindByMovieID(ctx, movieID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get comments",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("get comments: %w", err)
	}

	total, err := s.repo.Comment.CountByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	commentResponses := make([]response.CommentResponse, len(comments))
	for i, comment := range comments {
		commentResponses[i] = response.CommentToResponse(&comment.Comment, comment.Username)
	}

	return response.NewPaginatedResponse(commentResponses, req.Page, req.PerPage, total), nil
}
