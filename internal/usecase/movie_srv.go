package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"movie-matcher/internal/data/entity"
	"movie-matcher/internal/data/repository"
	"movie-matcher/internal/dto/request"
	"movie-matcher/internal/dto/response"
	"movie-matcher/internal/omdb"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MetadataFinder looks movie metadata up in an external service
type MetadataFinder interface {
	FindByTitle(ctx context.Context, title string) (*omdb.Movie, error)
}

type MovieService interface {
	// PickUnseen returns a uniformly random movie the user has not seen
	// yet, or (nil, nil) when the unseen set is empty.
	PickUnseen(ctx context.Context, userID uuid.UUID) (*response.MovieResponse, error)
	Like(ctx context.Context, userID, movieID uuid.UUID) error
	Dislike(ctx context.Context, userID, movieID uuid.UUID) error
	Add(ctx context.Context, userID uuid.UUID, req *request.AddMovieRequest) (*response.AddMovieResponse, error)
	ListAll(ctx context.Context) ([]*response.MovieListItem, error)
	Search(ctx context.Context, query string) ([]*omdb.Movie, error)
	History(ctx context.Context, userID uuid.UUID) ([]response.HistoryItemResponse, error)
	Counts(ctx context.Context, userID uuid.UUID) (*response.MovieCountsResponse, error)
}

type movieService struct {
	repo     *repository.Repository
	metadata MetadataFinder
	log      *zap.Logger
}

func NewMovieService(repo *repository.Repository, metadata MetadataFinder, log *zap.Logger) MovieService {
	return &movieService{
		repo:     repo,
		metadata: metadata,
		log:      log,
	}
}

func (s *movieService) PickUnseen(ctx context.Context, userID uuid.UUID) (*response.MovieResponse, error) {
	// Materialize the candidate list before sampling so every unseen movie
	// has equal probability.
	ids, err := s.repo.Movie.FindUnseenIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find unseen movies")
	}

	if len(ids) == 0 {
		s.log.Debug("No unseen movies left", zap.String("user_id", userID.String()))
		return nil, nil
	}

	pick := ids[rand.Intn(len(ids))]

	movie, err := s.repo.Movie.FindByID(ctx, pick)
	if err != nil {
		return nil, fmt.Errorf("failed to load movie")
	}
	if movie == nil {
		s.log.Error("Picked movie vanished", zap.String("movie_id", pick.String()))
		return nil, fmt.Errorf("failed to load movie")
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) Like(ctx context.Context, userID, movieID uuid.UUID) error {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return fmt.Errorf("failed to load movie")
	}
	if movie == nil {
		return fmt.Errorf("movie not found")
	}

	// Liking also marks the movie seen
	if err := s.repo.Swipe.Like(ctx, userID, movieID); err != nil {
		s.log.Error("Failed to record like", zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()))
		return fmt.Errorf("failed to record like")
	}

	return nil
}

func (s *movieService) Dislike(ctx context.Context, userID, movieID uuid.UUID) error {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return fmt.Errorf("failed to load movie")
	}
	if movie == nil {
		return fmt.Errorf("movie not found")
	}

	// Dislikes are not stored; the movie is only marked seen
	if err := s.repo.Swipe.MarkSeen(ctx, userID, movieID); err != nil {
		s.log.Error("Failed to mark seen", zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()))
		return fmt.Errorf("failed to mark movie seen")
	}

	return nil
}

func (s *movieService) Add(ctx context.Context, userID uuid.UUID, req *request.AddMovieRequest) (*response.AddMovieResponse, error) {
	year, err := strconv.Atoi(strings.TrimSpace(req.Year))
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", req.Year)
	}

	movie := &entity.Movie{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Title:       req.Title,
		Year:        year,
		Poster:      req.Poster,
		Description: req.Plot,
		Genre:       req.Genre,
		Rating:      req.ImdbRating,
		Length:      req.Runtime,
		Starring:    req.Actors,
		AddedByID:   userID,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		// Duplicate (title, year) errors pass through for the handler
		return nil, err
	}

	s.log.Info("Movie added",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.Int("year", movie.Year),
		zap.String("added_by", userID.String()))

	return &response.AddMovieResponse{
		Message: "Movie added successfully",
		ID:      movie.ID.String(),
	}, nil
}

func (s *movieService) ListAll(ctx context.Context) ([]*response.MovieListItem, error) {
	stats, err := s.repo.Movie.FindAllWithStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies")
	}

	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users")
	}

	items := make([]*response.MovieListItem, 0, len(stats))
	for _, st := range stats {
		seen := make(map[uuid.UUID]bool, len(st.SeenByIDs))
		for _, id := range st.SeenByIDs {
			seen[id] = true
		}

		// Unseen-by is the set difference: all users minus the seen set
		unseenBy := make([]response.UserBrief, 0)
		for _, user := range users {
			if !seen[user.ID] {
				unseenBy = append(unseenBy, response.UserToBrief(user))
			}
		}

		items = append(items, &response.MovieListItem{
			MovieResponse: response.MovieToResponse(&st.Movie),
			LikesCount:    st.LikesCount,
			UnseenBy:      unseenBy,
			AddedBy: response.UserBrief{
				ID:       st.Movie.AddedByID.String(),
				Username: st.AddedByUsername,
			},
		})
	}

	return items, nil
}

// Search looks up one or more titles (separated by ';') in the external
// metadata service. Lookup failures degrade to fewer results.
func (s *movieService) Search(ctx context.Context, query string) ([]*omdb.Movie, error) {
	results := make([]*omdb.Movie, 0)

	for _, title := range strings.Split(query, ";") {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}

		movie, err := s.metadata.FindByTitle(ctx, title)
		if err != nil {
			s.log.Warn("Metadata lookup failed", zap.Error(err), zap.String("title", title))
			continue
		}
		if movie == nil {
			continue
		}

		results = append(results, movie)
	}

	return results, nil
}

func (s *movieService) History(ctx context.Context, userID uuid.UUID) ([]response.HistoryItemResponse, error) {
	items, err := s.repo.Swipe.History(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load movie history")
	}

	history := make([]response.HistoryItemResponse, 0, len(items))
	for _, item := range items {
		history = append(history, response.HistoryItemResponse{
			Title: item.Title,
			Liked: item.Liked,
		})
	}

	return history, nil
}

func (s *movieService) Counts(ctx context.Context, userID uuid.UUID) (*response.MovieCountsResponse, error) {
	total, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count movies")
	}

	seen, err := s.repo.Swipe.CountSeen(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count seen movies")
	}

	return &response.MovieCountsResponse{
		TotalMovies:  total,
		SeenMovies:   seen,
		UnseenMovies: total - seen,
	}, nil
}
