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

type RatingRepository interface {
	// Upsert creates the rating or overwrites the existing score for the
	// (user, movie) pair in one statement. The entity is filled with the
	// persisted row on return.
	Upsert(ctx context.Context, rating *entity.Rating) error
	FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Rating, error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

func (r *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (id, user_id, movie_id, score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, movie_id)
		DO UPDATE SET score = EXCLUDED.score, updated_at = NOW()
		RETURNING id, score, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		rating.ID,
		rating.UserID,
		rating.MovieID,
		rating.Score,
	).Scan(
		&rating.ID,
		&rating.Score,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.String("user_id", rating.UserID.String()),
			zap.String("movie_id", rating.MovieID.String()),
			zap.Int("score", rating.Score),
		)
		return fmt.Errorf("upsert rating for movie %s by user %s: %w",
			rating.MovieID.String(), rating.UserID.String(), err)
	}

	return nil
}

func (r *ratingRepository) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Rating, error) {
	query := `
		SELECT id, user_id, movie_id, score, created_at, updated_at
		FROM ratings
		WHERE user_id = $1 AND movie_id = $2
	`

	var rating entity.Rating
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(
		&rating.ID,
		&rating.UserID,
		&rating.MovieID,
		&rating.Score,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rating by user and movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find rating by user %s and movie %s: %w",
			userID.String(), movieID.String(), err)
	}

	return &rating, nil
}
