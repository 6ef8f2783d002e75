package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"movie-matcher/internal/dto/request"
	"movie-matcher/internal/omdb"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fakeMetadata answers title lookups from a fixed map
type fakeMetadata struct {
	movies map[string]*omdb.Movie
	fail   map[string]bool
}

func (f *fakeMetadata) FindByTitle(ctx context.Context, title string) (*omdb.Movie, error) {
	if f.fail[title] {
		return nil, fmt.Errorf("lookup failed")
	}
	return f.movies[title], nil
}

func newMovieService(store *fakeStore) MovieService {
	return NewMovieService(store.repos(), &fakeMetadata{}, zap.NewNop())
}

func TestPickUnseen_SkipsSeenMovies(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice")
	seen := store.addMovie("Seen One", 2000)
	unseen := store.addMovie("Fresh One", 2001)

	ctx := context.Background()
	store.MarkSeen(ctx, user.ID, seen.ID)

	svc := newMovieService(store)
	for i := 0; i < 50; i++ {
		movie, err := svc.PickUnseen(ctx, user.ID)
		if err != nil {
			t.Fatalf("PickUnseen failed: %v", err)
		}
		if movie == nil {
			t.Fatal("expected a movie while unseen candidates remain")
		}
		if movie.ID != unseen.ID.String() {
			t.Fatalf("picked seen movie %s", movie.Title)
		}
	}
}

func TestPickUnseen_ExhaustedReturnsNil(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice")
	a := store.addMovie("Movie A", 2000)
	b := store.addMovie("Movie B", 2001)

	ctx := context.Background()
	store.MarkSeen(ctx, user.ID, a.ID)
	store.Like(ctx, user.ID, b.ID)

	svc := newMovieService(store)
	movie, err := svc.PickUnseen(ctx, user.ID)
	if err != nil {
		t.Fatalf("PickUnseen failed: %v", err)
	}
	if movie != nil {
		t.Fatalf("expected nil after exhausting the catalog, got %s", movie.Title)
	}
}

func TestPickUnseen_EveryCandidateReachable(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice")
	for i := 0; i < 3; i++ {
		store.addMovie(fmt.Sprintf("Movie %d", i), 2000+i)
	}

	svc := newMovieService(store)
	picked := make(map[string]int)
	for i := 0; i < 300; i++ {
		movie, err := svc.PickUnseen(context.Background(), user.ID)
		if err != nil {
			t.Fatalf("PickUnseen failed: %v", err)
		}
		picked[movie.Title]++
	}

	if len(picked) != 3 {
		t.Errorf("expected all 3 movies to be picked over 300 draws, got %d: %v", len(picked), picked)
	}
}

func TestLike_MarksSeenAndIsIdempotent(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice")
	movie := store.addMovie("Repeat", 2010)

	svc := newMovieService(store)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := svc.Like(ctx, user.ID, movie.ID); err != nil {
			t.Fatalf("Like attempt %d failed: %v", i+1, err)
		}
	}

	if !store.liked[user.ID][movie.ID] {
		t.Error("movie not recorded as liked")
	}
	if !store.seen[user.ID][movie.ID] {
		t.Error("liking must also mark the movie seen")
	}

	seen, _ := store.CountSeen(ctx, user.ID)
	if seen != 1 {
		t.Errorf("seen count = %d after repeated likes, want 1", seen)
	}
}

func TestLike_UnknownMovie(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice")

	svc := newMovieService(store)
	err := svc.Like(context.Background(), user.ID, uuid.New())
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDislike_MarksSeenWithoutLiking(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice")
	movie := store.addMovie("Pass", 2010)

	svc := newMovieService(store)
	ctx := context.Background()

	if err := svc.Dislike(ctx, user.ID, movie.ID); err != nil {
		t.Fatalf("Dislike failed: %v", err)
	}

	if store.liked[user.ID][movie.ID] {
		t.Error("dislike must not record a like")
	}
	if !store.seen[user.ID][movie.ID] {
		t.Error("dislike must mark the movie seen")
	}
}

func TestAdd_ParsesYearAndStoresMovie(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice")

	svc := newMovieService(store)
	resp, err := svc.Add(context.Background(), user.ID, &request.AddMovieRequest{
		Title:      "Heat",
		Poster:     "http://example.com/heat.jpg",
		Plot:       "A heist crew and a detective.",
		Genre:      "Crime",
		ImdbRating: "8.3",
		Runtime:    "170 min",
		Actors:     "Al Pacino, Robert De Niro",
		Year:       "1995",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if resp.Message != "Movie added successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}

	id, err := uuid.Parse(resp.ID)
	if err != nil {
		t.Fatalf("response id %q is not a uuid", resp.ID)
	}
	stored := store.movies[id]
	if stored == nil {
		t.Fatal("movie not stored")
	}
	if stored.Year != 1995 {
		t.Errorf("year = %d, want 1995", stored.Year)
	}
	if stored.AddedByID != user.ID {
		t.Error("added_by not recorded")
	}
}

func TestAdd_RejectsBadYear(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice")

	svc := newMovieService(store)
	_, err := svc.Add(context.Background(), user.ID, &request.AddMovieRequest{
		Title: "Unknown", Year: "N/A",
	})
	if err == nil || !strings.Contains(err.Error(), "invalid year") {
		t.Fatalf("expected invalid-year error, got %v", err)
	}
}

func TestAdd_DuplicateTitleAndYear(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice")
	store.addMovie("Dune", 2021)

	svc := newMovieService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, user.ID, &request.AddMovieRequest{Title: "Dune", Year: "2021"})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	// Same title under a different year is a different movie
	if _, err := svc.Add(ctx, user.ID, &request.AddMovieRequest{Title: "Dune", Year: "1984"}); err != nil {
		t.Fatalf("remake rejected: %v", err)
	}
}

func TestListAll_ComputesUnseenByAsSetDifference(t *testing.T) {
	store := newFakeStore()
	alice := store.addUser("alice")
	bob := store.addUser("bob")
	movie := store.addMovie("Split", 2016)
	movie.AddedByID = alice.ID

	ctx := context.Background()
	store.Like(ctx, alice.ID, movie.ID)

	svc := newMovieService(store)
	items, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 movie, got %d", len(items))
	}

	item := items[0]
	if item.LikesCount != 1 {
		t.Errorf("likes_count = %d, want 1", item.LikesCount)
	}
	if len(item.UnseenBy) != 1 || item.UnseenBy[0].Username != bob.Username {
		t.Errorf("unseen_by = %v, want just bob", item.UnseenBy)
	}
	if item.AddedBy.Username != "alice" {
		t.Errorf("added_by = %q, want alice", item.AddedBy.Username)
	}
}

func TestSearch_SplitsQueryAndDegradesOnFailure(t *testing.T) {
	store := newFakeStore()
	metadata := &fakeMetadata{
		movies: map[string]*omdb.Movie{
			"Alien":  {Title: "Alien", Year: "1979"},
			"Aliens": {Title: "Aliens", Year: "1986"},
		},
		fail: map[string]bool{"Broken": true},
	}
	svc := NewMovieService(store.repos(), metadata, zap.NewNop())

	results, err := svc.Search(context.Background(), "Alien; Aliens ;Broken; Missing;;")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Title != "Alien" || results[1].Title != "Aliens" {
		t.Errorf("unexpected results: %v, %v", results[0].Title, results[1].Title)
	}
}

func TestHistory_ReflectsLikesAndDislikes(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice")
	liked := store.addMovie("Good One", 2000)
	passed := store.addMovie("Meh One", 2001)

	ctx := context.Background()
	store.Like(ctx, user.ID, liked.ID)
	store.MarkSeen(ctx, user.ID, passed.ID)

	svc := newMovieService(store)
	history, err := svc.History(ctx, user.ID)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}

	byTitle := make(map[string]bool, len(history))
	for _, item := range history {
		byTitle[item.Title] = item.Liked
	}
	if !byTitle["Good One"] {
		t.Error("liked movie reported as not liked")
	}
	if byTitle["Meh One"] {
		t.Error("disliked movie reported as liked")
	}
}

func TestCounts_SeenPlusUnseenEqualsTotal(t *testing.T) {
	store := newFakeStore()
	user := store.addUser("alice")
	a := store.addMovie("Movie A", 2000)
	store.addMovie("Movie B", 2001)
	store.addMovie("Movie C", 2002)

	ctx := context.Background()
	store.Like(ctx, user.ID, a.ID)

	svc := newMovieService(store)
	counts, err := svc.Counts(ctx, user.ID)
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if counts.TotalMovies != 3 || counts.SeenMovies != 1 || counts.UnseenMovies != 2 {
		t.Errorf("counts = %+v, want 3/1/2", counts)
	}
}
