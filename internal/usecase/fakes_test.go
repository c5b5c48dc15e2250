package usecase

import (
	"context"
	"sync"
	"time"

	"cinetheque/internal/data/entity"
	"cinetheque/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repositories backing the service tests. They mirror the
// uniqueness rules the SQL layer enforces: one like row and one rating row
// per (user, movie), comments append-only.

type userMovieKey struct {
	userID  uuid.UUID
	movieID uuid.UUID
}

type fakeMovieRepo struct {
	mu     sync.Mutex
	movies map[uuid.UUID]*entity.Movie
	stats  map[uuid.UUID]entity.MovieStats
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{
		movies: make(map[uuid.UUID]*entity.Movie),
		stats:  make(map[uuid.UUID]entity.MovieStats),
	}
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.movies[id], nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.movies, id)
	return nil
}

func (f *fakeMovieRepo) FindAllWithStats(ctx context.Context, limit, offset int) ([]*entity.MovieWithStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.MovieWithStats
	for id, movie := range f.movies {
		out = append(out, &entity.MovieWithStats{Movie: *movie, MovieStats: f.stats[id]})
	}
	return out, nil
}

func (f *fakeMovieRepo) FindByIDWithStats(ctx context.Context, id uuid.UUID) (*entity.MovieWithStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	movie, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	return &entity.MovieWithStats{Movie: *movie, MovieStats: f.stats[id]}, nil
}

func (f *fakeMovieRepo) CountAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.movies)), nil
}

type fakeLikeRepo struct {
	mu    sync.Mutex
	likes map[userMovieKey]*entity.Like
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[userMovieKey]*entity.Like)}
}

func (f *fakeLikeRepo) Toggle(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := userMovieKey{userID, movieID}
	if like, ok := f.likes[key]; ok {
		like.Liked = !like.Liked
		return like.Liked, nil
	}
	f.likes[key] = &entity.Like{
		Base:    entity.Base{ID: uuid.New()},
		UserID:  userID,
		MovieID: movieID,
		Liked:   true,
	}
	return true, nil
}

func (f *fakeLikeRepo) Set(ctx context.Context, userID, movieID uuid.UUID, liked bool) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := userMovieKey{userID, movieID}
	if like, ok := f.likes[key]; ok {
		like.Liked = liked
		return liked, nil
	}
	f.likes[key] = &entity.Like{
		Base:    entity.Base{ID: uuid.New()},
		UserID:  userID,
		MovieID: movieID,
		Liked:   liked,
	}
	return liked, nil
}

func (f *fakeLikeRepo) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.likes[userMovieKey{userID, movieID}], nil
}

func (f *fakeLikeRepo) CountByMovieID(ctx context.Context, movieID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for key, like := range f.likes {
		if key.movieID == movieID && like.Liked {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikeRepo) rowCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.likes)
}

type fakeRatingRepo struct {
	mu      sync.Mutex
	ratings map[userMovieKey]*entity.Rating
	upserts int
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[userMovieKey]*entity.Rating)}
}

func (f *fakeRatingRepo) Upsert(ctx context.Context, rating *entity.Rating) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	key := userMovieKey{rating.UserID, rating.MovieID}
	if existing, ok := f.ratings[key]; ok {
		existing.Score = rating.Score
		existing.UpdatedAt = time.Now()
		*rating = *existing
		return nil
	}
	now := time.Now()
	rating.CreatedAt = now
	rating.UpdatedAt = now
	stored := *rating
	f.ratings[key] = &stored
	return nil
}

func (f *fakeRatingRepo) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ratings[userMovieKey{userID, movieID}], nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments []*entity.CommentWithUser
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments = append(f.comments, &entity.CommentWithUser{Comment: *comment})
	return nil
}

func (f *fakeCommentRepo) FindByMovieID(ctx context.Context, movieID uuid.UUID, limit, offset int) ([]*entity.CommentWithUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.CommentWithUser
	for _, comment := range f.comments {
		if comment.MovieID == movieID {
			out = append(out, comment)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCommentRepo) CountByMovieID(ctx context.Context, movieID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, comment := range f.comments {
		if comment.MovieID == movieID {
			count++
		}
	}
	return count, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || time.Now().After(session.ExpiresAt) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if session, ok := f.sessions[token]; ok {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

type fakeActorRepo struct {
	mu     sync.Mutex
	actors map[uuid.UUID]*entity.Actor
}

func newFakeActorRepo() *fakeActorRepo {
	return &fakeActorRepo{actors: make(map[uuid.UUID]*entity.Actor)}
}

func (f *fakeActorRepo) Create(ctx context.Context, actor *entity.Actor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actors[actor.ID] = actor
	return nil
}

func (f *fakeActorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.actors[id], nil
}

func (f *fakeActorRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Actor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Actor
	for _, actor := range f.actors {
		out = append(out, actor)
	}
	return out, nil
}

func (f *fakeActorRepo) CountAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.actors)), nil
}

func (f *fakeActorRepo) Update(ctx context.Context, actor *entity.Actor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actors[actor.ID] = actor
	return nil
}

func (f *fakeActorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.actors, id)
	return nil
}

type fakeCastingRepo struct {
	mu       sync.Mutex
	castings []*entity.CastingWithActor
}

func (f *fakeCastingRepo) Create(ctx context.Context, casting *entity.Casting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.castings = append(f.castings, &entity.CastingWithActor{Casting: *casting})
	return nil
}

func (f *fakeCastingRepo) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.CastingWithActor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.CastingWithActor
	for _, casting := range f.castings {
		if casting.MovieID == movieID {
			out = append(out, casting)
		}
	}
	return out, nil
}

func (f *fakeCastingRepo) DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.castings[:0]
	for _, casting := range f.castings {
		if casting.MovieID != movieID {
			kept = append(kept, casting)
		}
	}
	f.castings = kept
	return nil
}

type testRepos struct {
	user    *fakeUserRepo
	session *fakeSessionRepo
	movie   *fakeMovieRepo
	actor   *fakeActorRepo
	casting *fakeCastingRepo
	comment *fakeCommentRepo
	like    *fakeLikeRepo
	rating  *fakeRatingRepo
}

func newTestRepository() (*repository.Repository, *testRepos) {
	fakes := &testRepos{
		user:    newFakeUserRepo(),
		session: newFakeSessionRepo(),
		movie:   newFakeMovieRepo(),
		actor:   newFakeActorRepo(),
		casting: &fakeCastingRepo{},
		comment: &fakeCommentRepo{},
		like:    newFakeLikeRepo(),
		rating:  newFakeRatingRepo(),
	}

	repo := &repository.Repository{
		User:    fakes.user,
		Session: fakes.session,
		Movie:   fakes.movie,
		Actor:   fakes.actor,
		Casting: fakes.casting,
		Comment: fakes.comment,
		Like:    fakes.like,
		Rating:  fakes.rating,
	}

	return repo, fakes
}

func seedMovie(fakes *testRepos) *entity.Movie {
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TitleFR:         "Le Voyage",
		TitleOriginal:   "The Journey",
		DurationMinutes: 92,
		ReleaseDate:     time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	fakes.movie.movies[movie.ID] = movie
	return movie
}

func seedUser(fakes *testRepos, username string) *entity.User {
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username: username,
		Role:     entity.RoleCustomer,
		IsActive: true,
	}
	fakes.user.users[user.ID] = user
	return user
}
