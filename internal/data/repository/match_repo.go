package repository

import (
	"context"
	"fmt"

	"movie-matcher/internal/data/entity"
	"movie-matcher/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MovieMatch is a movie liked by every candidate user, with the matching
// users aggregated alongside.
type MovieMatch struct {
	Movie     entity.Movie
	UserIDs   []uuid.UUID
	Usernames []string
}

type MatchRepository interface {
	LikedByAll(ctx context.Context, userIDs []uuid.UUID) ([]*MovieMatch, error)
}

type matchRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMatchRepository(db database.PgxIface, log *zap.Logger) MatchRepository {
	return &matchRepository{
		db:  db,
		log: log.With(zap.String("repository", "match")),
	}
}

// LikedByAll returns the movies liked by every user in userIDs. One pass
// over user_likes restricted to the candidate set, grouped by movie and
// filtered on the distinct-user count; the matching users are aggregated in
// the same query, so no per-movie rescan happens.
func (r *matchRepository) LikedByAll(ctx context.Context, userIDs []uuid.UUID) ([]*MovieMatch, error) {
	query := `
		SELECT m.id, m.title, m.year, m.poster, m.description, m.genre,
		       m.rating, m.length, m.starring, m.added_by_id, m.created_at,
		       array_agg(u.id::text ORDER BY u.username),
		       array_agg(u.username ORDER BY u.username)
		FROM movies m
		JOIN user_likes l ON l.movie_id = m.id
		JOIN users u ON u.id = l.user_id
		WHERE l.user_id = ANY($1)
		GROUP BY m.id
		HAVING COUNT(DISTINCT l.user_id) = $2
	`

	rows, err := r.db.Query(ctx, query, userIDs, len(userIDs))
	if err != nil {
		r.log.Error("Failed to query matches",
			zap.Error(err),
			zap.Int("user_count", len(userIDs)),
		)
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []*MovieMatch
	for rows.Next() {
		var match MovieMatch
		var rawIDs []string
		err := rows.Scan(
			&match.Movie.ID,
			&match.Movie.Title,
			&match.Movie.Year,
			&match.Movie.Poster,
			&match.Movie.Description,
			&match.Movie.Genre,
			&match.Movie.Rating,
			&match.Movie.Length,
			&match.Movie.Starring,
			&match.Movie.AddedByID,
			&match.Movie.CreatedAt,
			&rawIDs,
			&match.Usernames,
		)
		if err != nil {
			r.log.Error("Failed to scan match row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}

		match.UserIDs = make([]uuid.UUID, 0, len(rawIDs))
		for _, raw := range rawIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("parse matched user id %q: %w", raw, err)
			}
			match.UserIDs = append(match.UserIDs, id)
		}

		matches = append(matches, &match)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return matches, nil
}
