package entity

import (
	"time"
)

type Movie struct {
	Base
	TitleFR         string    `db:"title_fr"`
	TitleOriginal   string    `db:"title_original"`
	Country         *string   `db:"country"`
	DurationMinutes int       `db:"duration_minutes"`
	DirectorName    *string   `db:"director_name"`
	Description     *string   `db:"description"`
	ReleaseDate     time.Time `db:"release_date"`
	Poster          *string   `db:"poster"`
	CoverImage      *string   `db:"cover_image"`
}

// MovieStats carries the read-time aggregates of a movie. AvgRating is nil
// when the movie has no ratings.
type MovieStats struct {
	LikesCount int64
	AvgRating  *float64
}

type MovieWithStats struct {
	Movie
	MovieStats
}
