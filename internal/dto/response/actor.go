package response

import (
	"fmt"

	"cinetheque/internal/data/entity"
)

type ActorResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
	FullName  string  `json:"full_name"`
	Bio       *string `json:"bio,omitempty"`
}

type CastingResponse struct {
	ID            string        `json:"id"`
	Actor         ActorResponse `json:"actor"`
	CharacterName string        `json:"character_name"`
	Order         int           `json:"order"`
}

// FullName joins first and last name, falling back to the first name alone
// when the last name is absent.
func FullName(firstName string, lastName *string) string {
	if lastName != nil && *lastName != "" {
		return fmt.Sprintf("%s %s", firstName, *lastName)
	}
	return firstName
}

func ActorToResponse(actor *entity.Actor) ActorResponse {
	return ActorResponse{
		ID:        actor.ID.String(),
		FirstName: actor.FirstName,
		LastName:  actor.LastName,
		FullName:  FullName(actor.FirstName, actor.LastName),
		Bio:       actor.Bio,
	}
}

func CastingToResponse(casting *entity.CastingWithActor) CastingResponse {
	return CastingResponse{
		ID:            casting.ID.String(),
		Actor:         ActorToResponse(&casting.Actor),
		CharacterName: casting.CharacterName,
		Order:         casting.DisplayOrder,
	}
}
