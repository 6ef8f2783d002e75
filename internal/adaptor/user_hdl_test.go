package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-matcher/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestUserList(t *testing.T) {
	svc := &stubUserService{
		listFn: func(ctx context.Context) ([]response.UserBrief, error) {
			return []response.UserBrief{
				{ID: "u1", Username: "alice"},
				{ID: "u2", Username: "bob"},
			}, nil
		},
	}
	handler := NewUserHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assertBody(t, rec, http.StatusOK,
		`[{"id":"u1","username":"alice"},{"id":"u2","username":"bob"}]`)
}

func TestUserInfo(t *testing.T) {
	svc := &stubUserService{
		infoFn: func(ctx context.Context, userID uuid.UUID) (*response.UserInfoResponse, error) {
			return &response.UserInfoResponse{Username: "alice"}, nil
		},
	}
	handler := NewUserHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Info(rec, authedRequest(t, http.MethodGet, "/api/user/info", "", uuid.New()))

	assertBody(t, rec, http.StatusOK, `{"username":"alice"}`)
}

func TestUserInfo_NotFound(t *testing.T) {
	svc := &stubUserService{
		infoFn: func(ctx context.Context, userID uuid.UUID) (*response.UserInfoResponse, error) {
			return nil, fmt.Errorf("user not found")
		},
	}
	handler := NewUserHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Info(rec, authedRequest(t, http.MethodGet, "/api/user/info", "", uuid.New()))

	assertBody(t, rec, http.StatusNotFound, `{"error":"User not found"}`)
}

func TestUserInfo_Unauthenticated(t *testing.T) {
	handler := NewUserHandler(&stubUserService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Info(rec, httptest.NewRequest(http.MethodGet, "/api/user/info", nil))

	assertBody(t, rec, http.StatusUnauthorized, `{"message":"Authentication required"}`)
}
