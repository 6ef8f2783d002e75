package usecase

import (
	"movie-matcher/internal/data/repository"
	"movie-matcher/internal/omdb"
	"movie-matcher/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Movie MovieService
	Match MatchService
	User  UserService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	metadata := omdb.NewClient(config.OMDB.APIKey, config.OMDB.BaseURL, log)

	return &Service{
		Auth:  NewAuthService(repo.User, config, log),
		Movie: NewMovieService(repo, metadata, log),
		Match: NewMatchService(repo.Match, log),
		User:  NewUserService(repo.User, log),
	}
}
