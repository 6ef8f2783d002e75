package adaptor

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-matcher/internal/dto/request"
	"movie-matcher/internal/dto/response"
	"movie-matcher/internal/omdb"
	"movie-matcher/pkg/utils"

	"github.com/google/uuid"
)

// Function-field stubs so each test overrides only the calls it cares about

type stubAuthService struct {
	registerFn func(ctx context.Context, req *request.RegisterRequest) error
	loginFn    func(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

func (s *stubAuthService) Register(ctx context.Context, req *request.RegisterRequest) error {
	return s.registerFn(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	return s.loginFn(ctx, req)
}

type stubMovieService struct {
	pickUnseenFn func(ctx context.Context, userID uuid.UUID) (*response.MovieResponse, error)
	likeFn       func(ctx context.Context, userID, movieID uuid.UUID) error
	dislikeFn    func(ctx context.Context, userID, movieID uuid.UUID) error
	addFn        func(ctx context.Context, userID uuid.UUID, req *request.AddMovieRequest) (*response.AddMovieResponse, error)
	listAllFn    func(ctx context.Context) ([]*response.MovieListItem, error)
	searchFn     func(ctx context.Context, query string) ([]*omdb.Movie, error)
	historyFn    func(ctx context.Context, userID uuid.UUID) ([]response.HistoryItemResponse, error)
	countsFn     func(ctx context.Context, userID uuid.UUID) (*response.MovieCountsResponse, error)
}

func (s *stubMovieService) PickUnseen(ctx context.Context, userID uuid.UUID) (*response.MovieResponse, error) {
	return s.pickUnseenFn(ctx, userID)
}

func (s *stubMovieService) Like(ctx context.Context, userID, movieID uuid.UUID) error {
	return s.likeFn(ctx, userID, movieID)
}

func (s *stubMovieService) Dislike(ctx context.Context, userID, movieID uuid.UUID) error {
	return s.dislikeFn(ctx, userID, movieID)
}

func (s *stubMovieService) Add(ctx context.Context, userID uuid.UUID, req *request.AddMovieRequest) (*response.AddMovieResponse, error) {
	return s.addFn(ctx, userID, req)
}

func (s *stubMovieService) ListAll(ctx context.Context) ([]*response.MovieListItem, error) {
	return s.listAllFn(ctx)
}

func (s *stubMovieService) Search(ctx context.Context, query string) ([]*omdb.Movie, error) {
	return s.searchFn(ctx, query)
}

func (s *stubMovieService) History(ctx context.Context, userID uuid.UUID) ([]response.HistoryItemResponse, error) {
	return s.historyFn(ctx, userID)
}

func (s *stubMovieService) Counts(ctx context.Context, userID uuid.UUID) (*response.MovieCountsResponse, error) {
	return s.countsFn(ctx, userID)
}

type stubMatchService struct {
	computeFn func(ctx context.Context, userIDs []string) ([]response.MatchResponse, error)
}

func (s *stubMatchService) Compute(ctx context.Context, userIDs []string) ([]response.MatchResponse, error) {
	return s.computeFn(ctx, userIDs)
}

type stubUserService struct {
	listFn func(ctx context.Context) ([]response.UserBrief, error)
	infoFn func(ctx context.Context, userID uuid.UUID) (*response.UserInfoResponse, error)
}

func (s *stubUserService) List(ctx context.Context) ([]response.UserBrief, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Info(ctx context.Context, userID uuid.UUID) (*response.UserInfoResponse, error) {
	return s.infoFn(ctx, userID)
}

// authedRequest builds a request carrying the authenticated user identity
func authedRequest(t *testing.T, method, target, body string, userID uuid.UUID) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(utils.SetUserContext(req.Context(), userID, "alice"))
}

func assertBody(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantBody string) {
	t.Helper()
	if rec.Code != wantStatus {
		t.Errorf("status = %d, want %d (body %s)", rec.Code, wantStatus, rec.Body.String())
	}
	if got := strings.TrimSpace(rec.Body.String()); got != wantBody {
		t.Errorf("body = %s, want %s", got, wantBody)
	}
}
