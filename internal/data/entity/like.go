package entity

import (
	"github.com/google/uuid"
)

// Like holds at most one row per (user, movie). Unliking keeps the row with
// Liked=false; rows are never deleted.
type Like struct {
	Base
	UserID  uuid.UUID `db:"user_id"`
	MovieID uuid.UUID `db:"movie_id"`
	Liked   bool      `db:"liked"`
}
