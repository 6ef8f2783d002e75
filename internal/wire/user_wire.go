package wire

import (
	"movie-matcher/internal/adaptor"
	"movie-matcher/internal/data/repository"
	"movie-matcher/pkg/middleware"
	"movie-matcher/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthJWT(repo.User, config.JWT, log)

	r.With(auth).Get("/api/users", userHandler.List)

	r.Route("/api/user", func(r chi.Router) {
		r.Use(auth)

		r.Get("/info", userHandler.Info)
		r.Get("/movie-history", movieHandler.History)
	})
}
