package repository

import (
	"cinetheque/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Movie   MovieRepository
	Actor   ActorRepository
	Casting CastingRepository
	Comment CommentRepository
	Like    LikeRepository
	Rating  RatingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Movie:   NewMovieRepository(db, log),
		Actor:   NewActorRepository(db, log),
		Casting: NewCastingRepository(db, log),
		Comment: NewCommentRepository(db, log),
		Like:    NewLikeRepository(db, log),
		Rating:  NewRatingRepository(db, log),
	}
}
