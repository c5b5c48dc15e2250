package request

type ActorRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Bio       *string `json:"bio,omitempty"`
}

type ActorUpdateRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Bio       *string `json:"bio,omitempty"`
}
