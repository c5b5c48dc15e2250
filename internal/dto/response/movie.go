package response

import (
	"fmt"
	"sort"
	"time"

	"cinetheque/internal/data/entity"
)

type MovieListItemResponse struct {
	ID            string   `json:"id"`
	TitleFR       string   `json:"title_fr"`
	TitleOriginal string   `json:"title_original"`
	Poster        *string  `json:"poster"`
	ReleaseDate   string   `json:"release_date"`
	LikesCount    int64    `json:"likes_count"`
	AvgRating     *float64 `json:"avg_rating"`
}

type MovieDetailResponse struct {
	ID              string            `json:"id"`
	TitleFR         string            `json:"title_fr"`
	TitleOriginal   string            `json:"title_original"`
	Country         *string           `json:"country"`
	DurationMinutes int               `json:"duration_minutes"`
	Duration        string            `json:"duration"`
	DirectorName    *string           `json:"director_name"`
	Description     *string           `json:"description"`
	ReleaseDate     string            `json:"release_date"`
	Poster          *string           `json:"poster"`
	CoverImage      *string           `json:"cover_image"`
	LikesCount      int64             `json:"likes_count"`
	AvgRating       *float64          `json:"avg_rating"`
	Actors          []CastingResponse `json:"actors"`
	Comments        []CommentResponse `json:"comments"`
	UserLiked       bool              `json:"user_liked"`
	UserRating      *int              `json:"user_rating"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// FormatDuration renders minutes as "1h 32m", dropping a zero hour or minute
// component. Zero minutes total still renders as "0m".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

func MovieToListResponse(movie *entity.MovieWithStats) MovieListItemResponse {
	return MovieListItemResponse{
		ID:            movie.ID.String(),
		TitleFR:       movie.TitleFR,
		TitleOriginal: movie.TitleOriginal,
		Poster:        movie.Poster,
		ReleaseDate:   movie.ReleaseDate.Format("2006-01-02"),
		LikesCount:    movie.LikesCount,
		AvgRating:     movie.AvgRating,
	}
}

// MovieToDetailResponse builds the full read model for one movie. userLiked
// and userRating are viewer-scoped: false/nil for anonymous viewers.
func MovieToDetailResponse(
	movie *entity.MovieWithStats,
	castings []*entity.CastingWithActor,
	comments []*entity.CommentWithUser,
	userLiked bool,
	userRating *int,
) MovieDetailResponse {
	sorted := make([]*entity.CastingWithActor, len(castings))
	copy(sorted, castings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DisplayOrder < sorted[j].DisplayOrder
	})

	actorResponses := make([]CastingResponse, len(sorted))
	for i, casting := range sorted {
		actorResponses[i] = CastingToResponse(casting)
	}

	commentResponses := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		commentResponses[i] = CommentToResponse(&comment.Comment, comment.Username)
	}

	return MovieDetailResponse{
		ID:              movie.ID.String(),
		TitleFR:         movie.TitleFR,
		TitleOriginal:   movie.TitleOriginal,
		Country:         movie.Country,
		DurationMinutes: movie.DurationMinutes,
		Duration:        FormatDuration(movie.DurationMinutes),
		DirectorName:    movie.DirectorName,
		Description:     movie.Description,
		ReleaseDate:     movie.ReleaseDate.Format("2006-01-02"),
		Poster:          movie.Poster,
		CoverImage:      movie.CoverImage,
		LikesCount:      movie.LikesCount,
		AvgRating:       movie.AvgRating,
		Actors:          actorResponses,
		Comments:        commentResponses,
		UserLiked:       userLiked,
		UserRating:      userRating,
		CreatedAt:       movie.CreatedAt,
		UpdatedAt:       movie.UpdatedAt,
	}
}
