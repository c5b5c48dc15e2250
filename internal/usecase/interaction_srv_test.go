package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"cinetheque/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newInteractionService(t *testing.T) (InteractionService, *testRepos) {
	t.Helper()
	repo, fakes := newTestRepository()
	return NewInteractionService(repo, zap.NewNop()), fakes
}

func TestToggleLikeFlipsState(t *testing.T) {
	service, fakes := newInteractionService(t)
	movie := seedMovie(fakes)
	user := seedUser(fakes, "alice")
	ctx := context.Background()

	resp, err := service.ToggleLike(ctx, user.ID, movie.ID, nil)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !resp.Liked {
		t.Error("first toggle should like the movie")
	}
	if resp.LikesCount != 1 {
		t.Errorf("likes_count = %d, want 1", resp.LikesCount)
	}

	resp, err = service.ToggleLike(ctx, user.ID, movie.ID, nil)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if resp.Liked {
		t.Error("second toggle should unlike the movie")
	}
	if resp.LikesCount != 0 {
		t.Errorf("likes_count after unlike = %d, want 0", resp.LikesCount)
	}

	// Unliking keeps the row; it flips the flag instead of deleting.
	if got := fakes.like.rowCount(); got != 1 {
		t.Errorf("like rows = %d, want 1", got)
	}
}

func TestToggleLikeExplicitSet(t *testing.T) {
	service, fakes := newInteractionService(t)
	movie := seedMovie(fakes)
	user := seedUser(fakes, "alice")
	ctx := context.Background()

	liked := true
	resp, err := service.ToggleLike(ctx, user.ID, movie.ID, &liked)
	if err != nil {
		t.Fatalf("set liked=true: %v", err)
	}
	if !resp.Liked {
		t.Error("explicit liked=true should like the movie")
	}

	// Setting the same state again is idempotent, unlike a toggle.
	resp, err = service.ToggleLike(ctx, user.ID, movie.ID, &liked)
	if err != nil {
		t.Fatalf("set liked=true again: %v", err)
	}
	if !resp.Liked || resp.LikesCount != 1 {
		t.Errorf("repeated set: liked=%v count=%d, want true/1", resp.Liked, resp.LikesCount)
	}

	unliked := false
	resp, err = service.ToggleLike(ctx, user.ID, movie.ID, &unliked)
	if err != nil {
		t.Fatalf("set liked=false: %v", err)
	}
	if resp.Liked || resp.LikesCount != 0 {
		t.Errorf("set false: liked=%v count=%d, want false/0", resp.Liked, resp.LikesCount)
	}
}

func TestToggleLikeRequiresAuth(t *testing.T) {
	service, fakes := newInteractionService(t)
	movie := seedMovie(fakes)

	_, err := service.ToggleLike(context.Background(), uuid.Nil, movie.ID, nil)
	if !errors.Is(err, ErrAuthenticationRequired) {
		t.Errorf("err = %v, want ErrAuthenticationRequired", err)
	}
}

func TestToggleLikeUnknownMovie(t *testing.T) {
	service, fakes := newInteractionService(t)
	user := seedUser(fakes, "alice")

	_, err := service.ToggleLike(context.Background(), user.ID, uuid.New(), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestToggleLikeConcurrent(t *testing.T) {
	service, fakes := newInteractionService(t)
	movie := seedMovie(fakes)
	user := seedUser(fakes, "alice")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := service.ToggleLike(ctx, user.ID, movie.ID, nil); err != nil {
				t.Errorf("concurrent toggle: %v", err)
			}
		}()
	}
	wg.Wait()

	// However the toggles interleave, the pair only ever owns one row.
	if got := fakes.like.rowCount(); got != 1 {
		t.Errorf("like rows after concurrent toggles = %d, want 1", got)
	}

	// An even number of toggles lands back on unliked.
	like, err := fakes.like.FindByUserAndMovie(ctx, user.ID, movie.ID)
	if err != nil {
		t.Fatalf("find like: %v", err)
	}
	if like == nil || like.Liked {
		t.Errorf("after 20 toggles liked should be false, got %+v", like)
	}
}

func TestSetRatingUpserts(t *testing.T) {
	service, fakes := newInteractionService(t)
	movie := seedMovie(fakes)
	user := seedUser(fakes, "alice")
	ctx := context.Background()

	resp, err := service.SetRating(ctx, user.ID, movie.ID, 7)
	if err != nil {
		t.Fatalf("first rating: %v", err)
	}
	if resp.Score != 7 {
		t.Errorf("score = %d, want 7", resp.Score)
	}
	if resp.User != "alice" {
		t.Errorf("user = %q, want alice", resp.User)
	}

	resp, err = service.SetRating(ctx, user.ID, movie.ID, 3)
	if err != nil {
		t.Fatalf("re-rating: %v", err)
	}
	if resp.Score != 3 {
		t.Errorf("score after re-rate = %d, want 3", resp.Score)
	}

	if got := len(fakes.rating.ratings); got != 1 {
		t.Errorf("rating rows = %d, want 1", got)
	}
	stored, _ := fakes.rating.FindByUserAndMovie(ctx, user.ID, movie.ID)
	if stored.Score != 3 {
		t.Errorf("stored score = %d, want 3", stored.Score)
	}
}

func TestSetRatingRejectsOutOfRange(t *testing.T) {
	service, fakes := newInteractionService(t)
	movie := seedMovie(fakes)
	user := seedUser(fakes, "alice")
	ctx := context.Background()

	for _, score := range []int{-1, 0, 11, 100} {
		_, err := service.SetRating(ctx, user.ID, movie.ID, score)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("score %d: err = %v, want ErrValidation", score, err)
		}
	}

	// Rejected scores never reach the store.
	if fakes.rating.upserts != 0 {
		t.Errorf("upserts = %d, want 0", fakes.rating.upserts)
	}

	for _, score := range []int{1, 10} {
		if _, err := service.SetRating(ctx, user.ID, movie.ID, score); err != nil {
			t.Errorf("score %d: unexpected err %v", score, err)
		}
	}
}

func TestSetRatingRequiresAuth(t *testing.T) {
	service, fakes := newInteractionService(t)
	movie := seedMovie(fakes)

	_, err := service.SetRating(context.Background(), uuid.Nil, movie.ID, 5)
	if !errors.Is(err, ErrAuthenticationRequired) {
		t.Errorf("err = %v, want ErrAuthenticationRequired", err)
	}
}

func TestAddCommentAppends(t *testing.T) {
	service, fakes := newInteractionService(t)
	movie := seedMovie(fakes)
	user := seedUser(fakes, "alice")
	ctx := context.Background()

	for _, text := range []string{"first", "second"} {
		resp, err := service.AddComment(ctx, user.ID, movie.ID, &request.CreateCommentRequest{Text: text})
		if err != nil {
			t.Fatalf("add comment %q: %v", text, err)
		}
		if resp.Text != text {
			t.Errorf("text = %q, want %q", resp.Text, text)
		}
		if resp.Edited {
			t.Error("fresh comment should not be marked edited")
		}
	}

	total, _ := fakes.comment.CountByMovieID(ctx, movie.ID)
	if total != 2 {
		t.Errorf("comments = %d, want 2", total)
	}
}

func TestAddCommentRequiresAuth(t *testing.T) {
	service, fakes := newInteractionService(t)
	movie := seedMovie(fakes)

	_, err := service.AddComment(context.Background(), uuid.Nil, movie.ID, &request.CreateCommentRequest{Text: "hello"})
	if !errors.Is(err, ErrAuthenticationRequired) {
		t.Errorf("err = %v, want ErrAuthenticationRequired", err)
	}
}

func TestAddCommentRejectsEmptyText(t *testing.T) {
	service, fakes := newInteractionService(t)
	movie := seedMovie(fakes)
	user := seedUser(fakes, "alice")

	_, err := service.AddComment(context.Background(), user.ID, movie.ID, &request.CreateCommentRequest{Text: ""})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestGetCommentsUnknownMovie(t *testing.T) {
	service, _ := newInteractionService(t)

	req := &request.PaginatedRequest{Page: 1, PerPage: 10}
	_, err := service.GetComments(context.Background(), uuid.New(), req)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGetCommentsPagination(t *testing.T) {
	service, fakes := newInteractionService(t)
	movie := seedMovie(fakes)
	user := seedUser(fakes, "alice")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := service.AddComment(ctx, user.ID, movie.ID, &request.CreateCommentRequest{Text: "comment"}); err != nil {
			t.Fatalf("add comment: %v", err)
		}
	}

	page, err := service.GetComments(ctx, movie.ID, &request.PaginatedRequest{Page: 2, PerPage: 2})
	if err != nil {
		t.Fatalf("get comments: %v", err)
	}
	if len(page.Data) != 2 {
		t.Errorf("page size = %d, want 2", len(page.Data))
	}
	if page.Pagination.Total != 5 {
		t.Errorf("total = %d, want 5", page.Pagination.Total)
	}
	if page.Pagination.TotalPages != 3 {
		t.Errorf("total_pages = %d, want 3", page.Pagination.TotalPages)
	}
}
