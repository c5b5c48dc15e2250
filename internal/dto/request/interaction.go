package request

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// LikeRequest: an empty body toggles; an explicit liked value sets the state
// directly.
type LikeRequest struct {
	Liked *bool `json:"liked,omitempty"`
}

type RatingRequest struct {
	Score int `json:"score" validate:"required,min=1,max=10"`
}
