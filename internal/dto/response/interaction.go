package response

import (
	"cinetheque/internal/data/entity"
	"time"
)

type CommentResponse struct {
	ID          string    `json:"id"`
	User        string    `json:"user"`
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"published_at"`
	Edited      bool      `json:"edited"`
}

type LikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

type RatingResponse struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	MovieID   string    `json:"movie"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Helper converters
func CommentToResponse(comment *entity.Comment, username string) CommentResponse {
	return CommentResponse{
		ID:          comment.ID.String(),
		User:        username,
		Text:        comment.Text,
		PublishedAt: comment.PublishedAt,
		Edited:      comment.Edited,
	}
}

func RatingToResponse(rating *entity.Rating, username string) RatingResponse {
	return RatingResponse{
		ID:        rating.ID.String(),
		User:      username,
		MovieID:   rating.MovieID.String(),
		Score:     rating.Score,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}
