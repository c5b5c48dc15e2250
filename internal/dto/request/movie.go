package request

type CastingRequest struct {
	ActorID       string `json:"actor_id" validate:"required,uuid4"`
	CharacterName string `json:"character_name" validate:"max=200"`
	Order         int    `json:"order" validate:"gte=0"`
}

type MovieRequest struct {
	TitleFR         string           `json:"title_fr" validate:"required,min=1,max=200"`
	TitleOriginal   string           `json:"title_original" validate:"required,min=1,max=200"`
	Country         *string          `json:"country,omitempty" validate:"omitempty,max=100"`
	DurationMinutes int              `json:"duration_minutes" validate:"gte=0,lte=999"`
	DirectorName    *string          `json:"director_name,omitempty" validate:"omitempty,max=200"`
	Description     *string          `json:"description,omitempty"`
	ReleaseDate     string           `json:"release_date" validate:"required,datetime=2006-01-02"`
	Poster          *string          `json:"poster,omitempty"`
	CoverImage      *string          `json:"cover_image,omitempty"`
	Cast            []CastingRequest `json:"cast,omitempty" validate:"omitempty,dive"`
}

type MovieUpdateRequest struct {
	TitleFR         *string `json:"title_fr,omitempty" validate:"omitempty,min=1,max=200"`
	TitleOriginal   *string `json:"title_original,omitempty" validate:"omitempty,min=1,max=200"`
	Country         *string `json:"country,omitempty" validate:"omitempty,max=100"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" validate:"omitempty,gte=0,lte=999"`
	DirectorName    *string `json:"director_name,omitempty" validate:"omitempty,max=200"`
	Description     *string `json:"description,omitempty"`
	ReleaseDate     *string `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Poster          *string `json:"poster,omitempty"`
	CoverImage      *string `json:"cover_image,omitempty"`
	// When Cast is non-nil the existing casting set is replaced.
	Cast []CastingRequest `json:"cast,omitempty" validate:"omitempty,dive"`
}
