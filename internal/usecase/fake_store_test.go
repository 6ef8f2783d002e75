package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"movie-matcher/internal/data/entity"
	"movie-matcher/internal/data/repository"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for every repository interface.
// The seen and liked relations are plain pair-sets, mirroring the
// composite-key join tables.
type fakeStore struct {
	mu     sync.Mutex
	users  map[uuid.UUID]*entity.User
	movies map[uuid.UUID]*entity.Movie
	seen   map[uuid.UUID]map[uuid.UUID]bool
	liked  map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  make(map[uuid.UUID]*entity.User),
		movies: make(map[uuid.UUID]*entity.Movie),
		seen:   make(map[uuid.UUID]map[uuid.UUID]bool),
		liked:  make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (f *fakeStore) repos() *repository.Repository {
	return &repository.Repository{User: f, Movie: fakeMovieRepo{f}, Swipe: f, Match: f}
}

func (f *fakeStore) addUser(username string) *entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	user := &entity.User{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Username:   username,
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeStore) addMovie(title string, year int) *entity.Movie {
	f.mu.Lock()
	defer f.mu.Unlock()
	movie := &entity.Movie{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Title:      title,
		Year:       year,
	}
	f.movies[movie.ID] = movie
	return movie
}

// ---- UserRepository ----

func (f *fakeStore) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return fmt.Errorf("user %s already exists", user.Username)
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeStore) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindAll(ctx context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]*entity.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

// ---- MovieRepository ----
// CreateMovie cannot share the Create name with the user method, so the
// fake routes both through interface-specific wrappers below.

type fakeMovieRepo struct{ *fakeStore }

func (f fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.movies {
		if existing.Title == movie.Title && existing.Year == movie.Year {
			return fmt.Errorf("movie %q (%d) already exists", movie.Title, movie.Year)
		}
	}
	f.movies[movie.ID] = movie
	return nil
}

func (f fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.movies[id], nil
}

func (f *fakeStore) FindUnseenIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []uuid.UUID
	for id := range f.movies {
		if !f.seen[userID][id] {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeStore) FindAllWithStats(ctx context.Context) ([]*repository.MovieStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var stats []*repository.MovieStats
	for id, movie := range f.movies {
		st := &repository.MovieStats{Movie: *movie}
		if adder, ok := f.users[movie.AddedByID]; ok {
			st.AddedByUsername = adder.Username
		}
		for _, movies := range f.liked {
			if movies[id] {
				st.LikesCount++
			}
		}
		for userID, movies := range f.seen {
			if movies[id] {
				st.SeenByIDs = append(st.SeenByIDs, userID)
			}
		}
		stats = append(stats, st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Movie.Title < stats[j].Movie.Title })
	return stats, nil
}

func (f *fakeStore) CountAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.movies)), nil
}

// ---- SwipeRepository ----

func (f *fakeStore) MarkSeen(ctx context.Context, userID, movieID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markSeenLocked(userID, movieID)
	return nil
}

func (f *fakeStore) Like(ctx context.Context, userID, movieID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.liked[userID] == nil {
		f.liked[userID] = make(map[uuid.UUID]bool)
	}
	f.liked[userID][movieID] = true
	f.markSeenLocked(userID, movieID)
	return nil
}

func (f *fakeStore) markSeenLocked(userID, movieID uuid.UUID) {
	if f.seen[userID] == nil {
		f.seen[userID] = make(map[uuid.UUID]bool)
	}
	f.seen[userID][movieID] = true
}

func (f *fakeStore) CountSeen(ctx context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.seen[userID])), nil
}

func (f *fakeStore) History(ctx context.Context, userID uuid.UUID) ([]*repository.HistoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []*repository.HistoryItem
	for movieID := range f.seen[userID] {
		items = append(items, &repository.HistoryItem{
			Title: f.movies[movieID].Title,
			Liked: f.liked[userID][movieID],
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Title < items[j].Title })
	return items, nil
}

// ---- MatchRepository ----

func (f *fakeStore) LikedByAll(ctx context.Context, userIDs []uuid.UUID) ([]*repository.MovieMatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matches []*repository.MovieMatch
	for movieID, movie := range f.movies {
		all := true
		for _, userID := range userIDs {
			if !f.liked[userID][movieID] {
				all = false
				break
			}
		}
		if !all {
			continue
		}

		match := &repository.MovieMatch{Movie: *movie}
		sorted := append([]uuid.UUID(nil), userIDs...)
		sort.Slice(sorted, func(i, j int) bool {
			return f.users[sorted[i]].Username < f.users[sorted[j]].Username
		})
		for _, userID := range sorted {
			match.UserIDs = append(match.UserIDs, userID)
			match.Usernames = append(match.Usernames, f.users[userID].Username)
		}
		matches = append(matches, match)
	}
	return matches, nil
}
