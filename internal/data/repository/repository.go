package repository

import (
	"movie-matcher/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User  UserRepository
	Movie MovieRepository
	Swipe SwipeRepository
	Match MatchRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(db, log),
		Movie: NewMovieRepository(db, log),
		Swipe: NewSwipeRepository(db, log),
		Match: NewMatchRepository(db, log),
	}
}
