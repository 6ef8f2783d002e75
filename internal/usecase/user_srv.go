package usecase

import (
	"context"
	"fmt"

	"movie-matcher/internal/data/repository"
	"movie-matcher/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	List(ctx context.Context) ([]response.UserBrief, error)
	Info(ctx context.Context, userID uuid.UUID) (*response.UserInfoResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

func (s *userService) List(ctx context.Context) ([]response.UserBrief, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users")
	}

	briefs := make([]response.UserBrief, 0, len(users))
	for _, user := range users {
		briefs = append(briefs, response.UserToBrief(user))
	}

	return briefs, nil
}

func (s *userService) Info(ctx context.Context, userID uuid.UUID) (*response.UserInfoResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	return &response.UserInfoResponse{Username: user.Username}, nil
}
