package entity

import (
	"github.com/google/uuid"
)

// Casting links a movie to an actor with role metadata. DisplayOrder drives
// the ordering of the cast list.
type Casting struct {
	BaseSimple
	MovieID       uuid.UUID `db:"movie_id"`
	ActorID       uuid.UUID `db:"actor_id"`
	CharacterName string    `db:"character_name"`
	DisplayOrder  int       `db:"display_order"`
}

type CastingWithActor struct {
	Casting
	Actor Actor
}
