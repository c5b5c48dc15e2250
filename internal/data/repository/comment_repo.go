package repository

import (
	"context"
	"fmt"

	"cinetheque/internal/data/entity"
	"cinetheque/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByMovieID(ctx context.Context, movieID uuid.UUID, limit, offset int) ([]*entity.CommentWithUser, error)
	CountByMovieID(ctx context.Context, movieID uuid.UUID) (int64, error)
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (id, movie_id, user_id, text, edited, published_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		comment.ID,
		comment.MovieID,
		comment.UserID,
		comment.Text,
		comment.Edited,
		comment.PublishedAt,
	)

	if err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("movie_id", comment.MovieID.String()),
			zap.String("user_id", comment.UserID.String()),
		)
		return fmt.Errorf("create comment for movie %s: %w", comment.MovieID.String(), err)
	}

	return nil
}

func (r *commentRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID, limit, offset int) ([]*entity.CommentWithUser, error) {
	query := `
		SELECT c.id, c.movie_id, c.user_id, c.text, c.edited, c.published_at,
		       u.username
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.movie_id = $1
		ORDER BY c.published_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, movieID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find comments by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find comments by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	var comments []*entity.CommentWithUser
	for rows.Next() {
		var comment entity.CommentWithUser
		err := rows.Scan(
			&comment.ID,
			&comment.MovieID,
			&comment.UserID,
			&comment.Text,
			&comment.Edited,
			&comment.PublishedAt,
			&comment.Username,
		)
		if err != nil {
			r.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) CountByMovieID(ctx context.Context, movieID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM comments WHERE movie_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, movieID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count comments by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return 0, fmt.Errorf("count comments by movie ID %s: %w", movieID.String(), err)
	}

	return count, nil
}
