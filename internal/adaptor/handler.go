package adaptor

import (
	"movie-matcher/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	Movie *MovieHandler
	Match *MatchHandler
	User  *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, log),
		Movie: NewMovieHandler(service.Movie, log),
		Match: NewMatchHandler(service.Match, log),
		User:  NewUserHandler(service.User, log),
	}
}
