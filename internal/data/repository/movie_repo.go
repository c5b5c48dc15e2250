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

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Read model with likes_count / avg_rating computed in SQL.
	FindAllWithStats(ctx context.Context, limit, offset int) ([]*entity.MovieWithStats, error)
	FindByIDWithStats(ctx context.Context, id uuid.UUID) (*entity.MovieWithStats, error)
	CountAll(ctx context.Context) (int64, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title_fr, title_original, country, duration_minutes,
		                   director_name, description, release_date, poster, cover_image,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.TitleFR,
		movie.TitleOriginal,
		movie.Country,
		movie.DurationMinutes,
		movie.DirectorName,
		movie.Description,
		movie.ReleaseDate,
		movie.Poster,
		movie.CoverImage,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title_fr", movie.TitleFR),
		)
		return fmt.Errorf("create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, title_fr, title_original, country, duration_minutes,
		       director_name, description, release_date, poster, cover_image,
		       created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.TitleFR,
		&movie.TitleOriginal,
		&movie.Country,
		&movie.DurationMinutes,
		&movie.DirectorName,
		&movie.Description,
		&movie.ReleaseDate,
		&movie.Poster,
		&movie.CoverImage,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAllWithStats(ctx context.Context, limit, offset int) ([]*entity.MovieWithStats, error) {
	// Aggregates as correlated subqueries so like rows cannot skew the
	// rating average. AVG is NULL when the movie has no ratings.
	query := `
		SELECT m.id, m.title_fr, m.title_original, m.country, m.duration_minutes,
		       m.director_name, m.description, m.release_date, m.poster, m.cover_image,
		       m.created_at, m.updated_at,
		       (SELECT COUNT(*) FROM likes l WHERE l.movie_id = m.id AND l.liked) AS likes_count,
		       (SELECT AVG(r.score)::float8 FROM ratings r WHERE r.movie_id = m.id) AS avg_rating
		FROM movies m
		ORDER BY m.release_date DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.MovieWithStats
	for rows.Next() {
		var movie entity.MovieWithStats
		err := rows.Scan(
			&movie.ID,
			&movie.TitleFR,
			&movie.TitleOriginal,
			&movie.Country,
			&movie.DurationMinutes,
			&movie.DirectorName,
			&movie.Description,
			&movie.ReleaseDate,
			&movie.Poster,
			&movie.CoverImage,
			&movie.CreatedAt,
			&movie.UpdatedAt,
			&movie.LikesCount,
			&movie.AvgRating,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) FindByIDWithStats(ctx context.Context, id uuid.UUID) (*entity.MovieWithStats, error) {
	query := `
		SELECT m.id, m.title_fr, m.title_original, m.country, m.duration_minutes,
		       m.director_name, m.description, m.release_date, m.poster, m.cover_image,
		       m.created_at, m.updated_at,
		       (SELECT COUNT(*) FROM likes l WHERE l.movie_id = m.id AND l.liked) AS likes_count,
		       (SELECT AVG(r.score)::float8 FROM ratings r WHERE r.movie_id = m.id) AS avg_rating
		FROM movies m
		WHERE m.id = $1
	`

	var movie entity.MovieWithStats
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.TitleFR,
		&movie.TitleOriginal,
		&movie.Country,
		&movie.DurationMinutes,
		&movie.DirectorName,
		&movie.Description,
		&movie.ReleaseDate,
		&movie.Poster,
		&movie.CoverImage,
		&movie.CreatedAt,
		&movie.UpdatedAt,
		&movie.LikesCount,
		&movie.AvgRating,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie with stats",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie with stats %s: %w", id.String(), err)
	}

	return &movie, nil
}

func (r *movieRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM movies`

	var total int64
	err := r.db.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("count movies: %w", err)
	}

	return total, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title_fr = $2, title_original = $3, country = $4, duration_minutes = $5,
		    director_name = $6, description = $7, release_date = $8,
		    poster = $9, cover_image = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.TitleFR,
		movie.TitleOriginal,
		movie.Country,
		movie.DurationMinutes,
		movie.DirectorName,
		movie.Description,
		movie.ReleaseDate,
		movie.Poster,
		movie.CoverImage,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s not found", movie.ID.String())
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s not found", id.String())
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}
