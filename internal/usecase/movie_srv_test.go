package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinetheque/internal/data/entity"
	"cinetheque/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newMovieService(t *testing.T) (MovieService, *testRepos) {
	t.Helper()
	repo, fakes := newTestRepository()
	return NewMovieService(repo, zap.NewNop()), fakes
}

func TestGetMovieByIDAnonymousViewer(t *testing.T) {
	service, fakes := newMovieService(t)
	movie := seedMovie(fakes)

	detail, err := service.GetMovieByID(context.Background(), movie.ID, nil)
	if err != nil {
		t.Fatalf("get movie: %v", err)
	}
	if detail.UserLiked {
		t.Error("anonymous viewer should see user_liked=false")
	}
	if detail.UserRating != nil {
		t.Errorf("anonymous viewer should see user_rating=nil, got %d", *detail.UserRating)
	}
	if detail.Duration != "1h 32m" {
		t.Errorf("duration = %q, want 1h 32m", detail.Duration)
	}
}

func TestGetMovieByIDViewerScopedFields(t *testing.T) {
	service, fakes := newMovieService(t)
	movie := seedMovie(fakes)
	user := seedUser(fakes, "alice")
	ctx := context.Background()

	if _, err := fakes.like.Set(ctx, user.ID, movie.ID, true); err != nil {
		t.Fatalf("seed like: %v", err)
	}
	rating := &entity.Rating{
		Base:    entity.Base{ID: uuid.New()},
		UserID:  user.ID,
		MovieID: movie.ID,
		Score:   8,
	}
	if err := fakes.rating.Upsert(ctx, rating); err != nil {
		t.Fatalf("seed rating: %v", err)
	}

	detail, err := service.GetMovieByID(ctx, movie.ID, &user.ID)
	if err != nil {
		t.Fatalf("get movie: %v", err)
	}
	if !detail.UserLiked {
		t.Error("viewer who liked should see user_liked=true")
	}
	if detail.UserRating == nil || *detail.UserRating != 8 {
		t.Errorf("user_rating = %v, want 8", detail.UserRating)
	}

	// Another user's view stays untouched by alice's interactions.
	other := seedUser(fakes, "bob")
	detail, err = service.GetMovieByID(ctx, movie.ID, &other.ID)
	if err != nil {
		t.Fatalf("get movie as bob: %v", err)
	}
	if detail.UserLiked || detail.UserRating != nil {
		t.Errorf("bob's view: liked=%v rating=%v, want false/nil", detail.UserLiked, detail.UserRating)
	}
}

func TestGetMovieByIDStats(t *testing.T) {
	service, fakes := newMovieService(t)
	movie := seedMovie(fakes)
	avg := 6.666666666666667
	fakes.movie.stats[movie.ID] = entity.MovieStats{LikesCount: 3, AvgRating: &avg}

	detail, err := service.GetMovieByID(context.Background(), movie.ID, nil)
	if err != nil {
		t.Fatalf("get movie: %v", err)
	}
	if detail.LikesCount != 3 {
		t.Errorf("likes_count = %d, want 3", detail.LikesCount)
	}
	if detail.AvgRating == nil || *detail.AvgRating != avg {
		t.Errorf("avg_rating = %v, want %v", detail.AvgRating, avg)
	}
}

func TestGetMovieByIDNotFound(t *testing.T) {
	service, _ := newMovieService(t)

	_, err := service.GetMovieByID(context.Background(), uuid.New(), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateMovieWithCast(t *testing.T) {
	service, fakes := newMovieService(t)
	ctx := context.Background()

	lastName := "Dujardin"
	actor := &entity.Actor{
		Base:      entity.Base{ID: uuid.New()},
		FirstName: "Jean",
		LastName:  &lastName,
	}
	fakes.actor.actors[actor.ID] = actor

	req := &request.MovieRequest{
		TitleFR:         "L'Artiste",
		TitleOriginal:   "The Artist",
		DurationMinutes: 100,
		ReleaseDate:     "2011-10-12",
		Cast: []request.CastingRequest{
			{ActorID: actor.ID.String(), CharacterName: "George Valentin", Order: 0},
		},
	}

	detail, err := service.CreateMovie(ctx, req)
	if err != nil {
		t.Fatalf("create movie: %v", err)
	}
	if detail.TitleFR != "L'Artiste" {
		t.Errorf("title_fr = %q", detail.TitleFR)
	}
	if detail.ReleaseDate != "2011-10-12" {
		t.Errorf("release_date = %q, want 2011-10-12", detail.ReleaseDate)
	}
	if len(detail.Actors) != 1 {
		t.Fatalf("actors = %d, want 1", len(detail.Actors))
	}
	if detail.Actors[0].CharacterName != "George Valentin" {
		t.Errorf("character = %q", detail.Actors[0].CharacterName)
	}
}

func TestCreateMovieUnknownActor(t *testing.T) {
	service, _ := newMovieService(t)

	req := &request.MovieRequest{
		TitleFR:         "Film",
		TitleOriginal:   "Film",
		DurationMinutes: 90,
		ReleaseDate:     "2020-01-01",
		Cast: []request.CastingRequest{
			{ActorID: uuid.New().String(), CharacterName: "Lead", Order: 0},
		},
	}

	_, err := service.CreateMovie(context.Background(), req)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateMovieInvalidReleaseDate(t *testing.T) {
	service, _ := newMovieService(t)

	req := &request.MovieRequest{
		TitleFR:         "Film",
		TitleOriginal:   "Film",
		DurationMinutes: 90,
		ReleaseDate:     "12/10/2011",
	}

	_, err := service.CreateMovie(context.Background(), req)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestUpdateMovieReplacesCast(t *testing.T) {
	service, fakes := newMovieService(t)
	movie := seedMovie(fakes)
	ctx := context.Background()

	first := &entity.Actor{Base: entity.Base{ID: uuid.New()}, FirstName: "Anna"}
	second := &entity.Actor{Base: entity.Base{ID: uuid.New()}, FirstName: "Marc"}
	fakes.actor.actors[first.ID] = first
	fakes.actor.actors[second.ID] = second

	fakes.casting.castings = append(fakes.casting.castings, &entity.CastingWithActor{
		Casting: entity.Casting{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			MovieID:    movie.ID,
			ActorID:    first.ID,
		},
		Actor: *first,
	})

	req := &request.MovieUpdateRequest{
		Cast: []request.CastingRequest{
			{ActorID: second.ID.String(), CharacterName: "Hero", Order: 0},
		},
	}

	detail, err := service.UpdateMovie(ctx, movie.ID, req)
	if err != nil {
		t.Fatalf("update movie: %v", err)
	}
	if len(detail.Actors) != 1 {
		t.Fatalf("actors = %d, want 1 after replacement", len(detail.Actors))
	}

	castings, _ := fakes.casting.FindByMovieID(ctx, movie.ID)
	if len(castings) != 1 || castings[0].ActorID != second.ID {
		t.Errorf("cast not replaced: %+v", castings)
	}
}

func TestUpdateMoviePartialFields(t *testing.T) {
	service, fakes := newMovieService(t)
	movie := seedMovie(fakes)
	ctx := context.Background()

	title := "Nouveau Titre"
	req := &request.MovieUpdateRequest{TitleFR: &title}

	detail, err := service.UpdateMovie(ctx, movie.ID, req)
	if err != nil {
		t.Fatalf("update movie: %v", err)
	}
	if detail.TitleFR != title {
		t.Errorf("title_fr = %q, want %q", detail.TitleFR, title)
	}
	if detail.TitleOriginal != "The Journey" {
		t.Errorf("title_original changed unexpectedly: %q", detail.TitleOriginal)
	}
}

func TestDeleteMovieNotFound(t *testing.T) {
	service, _ := newMovieService(t)

	err := service.DeleteMovie(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
