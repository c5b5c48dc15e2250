package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is append-only; Edited is stored for the wire format but no edit
// endpoint exists.
type Comment struct {
	ID          uuid.UUID `db:"id"`
	MovieID     uuid.UUID `db:"movie_id"`
	UserID      uuid.UUID `db:"user_id"`
	Text        string    `db:"text"`
	Edited      bool      `db:"edited"`
	PublishedAt time.Time `db:"published_at"`
}

type CommentWithUser struct {
	Comment
	Username string
}
