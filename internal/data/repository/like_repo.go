package repository

import (
	"context"
	"fmt"

	"cinetheque/internal/data/entity"
	"cinetheque/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// LikeRepository keeps the one-row-per-(user, movie) invariant inside single
// INSERT ... ON CONFLICT statements so concurrent requests cannot race a
// read-then-write into duplicate rows.
type LikeRepository interface {
	// Toggle flips the stored flag, creating the row with liked=true on
	// first call. Returns the resulting state.
	Toggle(ctx context.Context, userID, movieID uuid.UUID) (bool, error)
	// Set forces the flag to the given state, creating the row if absent.
	Set(ctx context.Context, userID, movieID uuid.UUID, liked bool) (bool, error)
	FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Like, error)
	CountByMovieID(ctx context.Context, movieID uuid.UUID) (int64, error)
}

type likeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLikeRepository(db database.PgxIface, log *zap.Logger) LikeRepository {
	return &likeRepository{
		db:  db,
		log: log.With(zap.String("repository", "like")),
	}
}

func (r *likeRepository) Toggle(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO likes (id, user_id, movie_id, liked, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		ON CONFLICT (user_id, movie_id)
		DO UPDATE SET liked = NOT likes.liked, updated_at = NOW()
		RETURNING liked
	`

	var liked bool
	err := r.db.QueryRow(ctx, query, uuid.New(), userID, movieID).Scan(&liked)
	if err != nil {
		r.log.Error("Failed to toggle like",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return false, fmt.Errorf("toggle like for movie %s by user %s: %w",
			movieID.String(), userID.String(), err)
	}

	return liked, nil
}

func (r *likeRepository) Set(ctx context.Context, userID, movieID uuid.UUID, liked bool) (bool, error) {
	query := `
		INSERT INTO likes (id, user_id, movie_id, liked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, movie_id)
		DO UPDATE SET liked = EXCLUDED.liked, updated_at = NOW()
		RETURNING liked
	`

	var result bool
	err := r.db.QueryRow(ctx, query, uuid.New(), userID, movieID, liked).Scan(&result)
	if err != nil {
		r.log.Error("Failed to set like",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
			zap.Bool("liked", liked),
		)
		return false, fmt.Errorf("set like for movie %s by user %s: %w",
			movieID.String(), userID.String(), err)
	}

	return result, nil
}

func (r *likeRepository) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Like, error) {
	query := `
		SELECT id, user_id, movie_id, liked, created_at, updated_at
		FROM likes
		WHERE user_id = $1 AND movie_id = $2
	`

	var like entity.Like
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(
		&like.ID,
		&like.UserID,
		&like.MovieID,
		&like.Liked,
		&like.CreatedAt,
		&like.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find like by user and movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find like by user %s and movie %s: %w",
			userID.String(), movieID.String(), err)
	}

	return &like, nil
}

func (r *likeRepository) CountByMovieID(ctx context.Context, movieID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM likes WHERE movie_id = $1 AND liked`

	var count int64
	err := r.db.QueryRow(ctx, query, movieID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count likes by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return 0, fmt.Errorf("count likes by movie ID %s: %w", movieID.String(), err)
	}

	return count, nil
}
