package repository

import (
	"context"
	"fmt"

	"movie-matcher/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HistoryItem is one entry of a user's swipe history.
type HistoryItem struct {
	Title string
	Liked bool
}

// SwipeRepository manages the seen and liked relations. Both are sets of
// (user, movie) pairs with composite primary keys; inserts use
// ON CONFLICT DO NOTHING so duplicate requests are idempotent.
type SwipeRepository interface {
	MarkSeen(ctx context.Context, userID, movieID uuid.UUID) error
	Like(ctx context.Context, userID, movieID uuid.UUID) error
	CountSeen(ctx context.Context, userID uuid.UUID) (int64, error)
	History(ctx context.Context, userID uuid.UUID) ([]*HistoryItem, error)
}

type swipeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSwipeRepository(db database.PgxIface, log *zap.Logger) SwipeRepository {
	return &swipeRepository{
		db:  db,
		log: log.With(zap.String("repository", "swipe")),
	}
}

// MarkSeen records that the user has responded to the movie
func (r *swipeRepository) MarkSeen(ctx context.Context, userID, movieID uuid.UUID) error {
	query := `
		INSERT INTO user_seen_movies (user_id, movie_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		r.log.Error("Failed to mark movie seen",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("failed to mark movie seen: %w", err)
	}

	return nil
}

// Like records a positive response. Liking also marks the movie seen; both
// inserts run in one transaction so the liked set stays a subset of seen.
func (r *swipeRepository) Like(ctx context.Context, userID, movieID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin like transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	likeQuery := `
		INSERT INTO user_likes (user_id, movie_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	if _, err := tx.Exec(ctx, likeQuery, userID, movieID); err != nil {
		r.log.Error("Failed to like movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("failed to like movie: %w", err)
	}

	seenQuery := `
		INSERT INTO user_seen_movies (user_id, movie_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	if _, err := tx.Exec(ctx, seenQuery, userID, movieID); err != nil {
		r.log.Error("Failed to mark liked movie seen",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("failed to mark liked movie seen: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit like transaction: %w", err)
	}

	return nil
}

func (r *swipeRepository) CountSeen(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM user_seen_movies WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count seen movies",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("failed to count seen movies: %w", err)
	}

	return count, nil
}

// History lists every movie the user has responded to with the liked flag
func (r *swipeRepository) History(ctx context.Context, userID uuid.UUID) ([]*HistoryItem, error) {
	query := `
		SELECT m.title, l.movie_id IS NOT NULL
		FROM user_seen_movies s
		JOIN movies m ON m.id = s.movie_id
		LEFT JOIN user_likes l ON l.user_id = s.user_id AND l.movie_id = s.movie_id
		WHERE s.user_id = $1
		ORDER BY m.title
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to load swipe history",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("failed to load swipe history: %w", err)
	}
	defer rows.Close()

	var items []*HistoryItem
	for rows.Next() {
		var item HistoryItem
		if err := rows.Scan(&item.Title, &item.Liked); err != nil {
			r.log.Error("Failed to scan history row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return items, nil
}
