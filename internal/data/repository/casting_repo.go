package repository

import (
	"context"
	"fmt"

	"cinetheque/internal/data/entity"
	"cinetheque/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CastingRepository interface {
	Create(ctx context.Context, casting *entity.Casting) error
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.CastingWithActor, error)
	DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error
}

type castingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCastingRepository(db database.PgxIface, log *zap.Logger) CastingRepository {
	return &castingRepository{
		db:  db,
		log: log.With(zap.String("repository", "casting")),
	}
}

func (r *castingRepository) Create(ctx context.Context, casting *entity.Casting) error {
	query := `
		INSERT INTO castings (id, movie_id, actor_id, character_name, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		casting.ID,
		casting.MovieID,
		casting.ActorID,
		casting.CharacterName,
		casting.DisplayOrder,
		casting.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create casting",
			zap.Error(err),
			zap.String("movie_id", casting.MovieID.String()),
			zap.String("actor_id", casting.ActorID.String()),
		)
		return fmt.Errorf("create casting for movie %s: %w", casting.MovieID.String(), err)
	}

	return nil
}

func (r *castingRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.CastingWithActor, error) {
	query := `
		SELECT c.id, c.movie_id, c.actor_id, c.character_name, c.display_order, c.created_at,
		       a.id, a.first_name, a.last_name, a.bio, a.created_at, a.updated_at
		FROM castings c
		JOIN actors a ON a.id = c.actor_id
		WHERE c.movie_id = $1
		ORDER BY c.display_order ASC
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find castings by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find castings by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	var castings []*entity.CastingWithActor
	for rows.Next() {
		var casting entity.CastingWithActor
		err := rows.Scan(
			&casting.ID,
			&casting.MovieID,
			&casting.ActorID,
			&casting.CharacterName,
			&casting.DisplayOrder,
			&casting.CreatedAt,
			&casting.Actor.ID,
			&casting.Actor.FirstName,
			&casting.Actor.LastName,
			&casting.Actor.Bio,
			&casting.Actor.CreatedAt,
			&casting.Actor.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan casting row", zap.Error(err))
			return nil, fmt.Errorf("scan casting row: %w", err)
		}
		castings = append(castings, &casting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate casting rows: %w", err)
	}

	return castings, nil
}

func (r *castingRepository) DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error {
	query := `DELETE FROM castings WHERE movie_id = $1`

	_, err := r.db.Exec(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to delete castings by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("delete castings for movie %s: %w", movieID.String(), err)
	}

	return nil
}
