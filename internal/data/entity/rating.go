package entity

import (
	"github.com/google/uuid"
)

// Rating holds at most one row per (user, movie); re-rating overwrites Score.
type Rating struct {
	Base
	UserID  uuid.UUID `db:"user_id"`
	MovieID uuid.UUID `db:"movie_id"`
	Score   int       `db:"score"` // 1-10
}
