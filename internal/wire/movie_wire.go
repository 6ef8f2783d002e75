package wire

import (
	"movie-matcher/internal/adaptor"
	"movie-matcher/internal/data/repository"
	"movie-matcher/pkg/middleware"
	"movie-matcher/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	matchHandler *adaptor.MatchHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// All movie routes require authentication
	r.Route("/api/movies", func(r chi.Router) {
		r.Use(middleware.AuthJWT(repo.User, config.JWT, log))

		r.Get("/random", movieHandler.Random)
		r.Post("/like", movieHandler.Like)
		r.Post("/dislike", movieHandler.Dislike)
		r.Post("/matches", matchHandler.Matches)
		r.Get("/search", movieHandler.Search)
		r.Post("/add", movieHandler.Add)
		r.Get("/all", movieHandler.All)
	})

	// Debug aggregate for the caller's seen/unseen breakdown
	r.With(middleware.AuthJWT(repo.User, config.JWT, log)).
		Get("/api/debug/movie-counts", movieHandler.Counts)
}
