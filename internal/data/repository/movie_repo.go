package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-matcher/internal/data/entity"
	"movie-matcher/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// MovieStats is one row of the aggregate listing: the movie, who added it,
// how many users liked it and which users have seen it.
type MovieStats struct {
	Movie           entity.Movie
	AddedByUsername string
	LikesCount      int64
	SeenByIDs       []uuid.UUID
}

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindUnseenIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	FindAllWithStats(ctx context.Context) ([]*MovieStats, error)
	CountAll(ctx context.Context) (int64, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

// Create inserts a movie. The movies table carries UNIQUE (title, year), so
// concurrent adds of the same film resolve at the database and the loser
// surfaces as a duplicate error.
func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, year, poster, description, genre,
		                    rating, length, starring, added_by_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Year,
		movie.Poster,
		movie.Description,
		movie.Genre,
		movie.Rating,
		movie.Length,
		movie.Starring,
		movie.AddedByID,
		movie.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("movie %q (%d) already exists", movie.Title, movie.Year)
		}
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
			zap.Int("year", movie.Year),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, title, year, poster, description, genre,
		       rating, length, starring, added_by_id, created_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Year,
		&movie.Poster,
		&movie.Description,
		&movie.Genre,
		&movie.Rating,
		&movie.Length,
		&movie.Starring,
		&movie.AddedByID,
		&movie.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return &movie, nil
}

// FindUnseenIDs materializes the full set difference (all movies minus the
// user's seen set) so the caller can sample from it without bias.
func (r *movieRepository) FindUnseenIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT m.id
		FROM movies m
		WHERE NOT EXISTS (
			SELECT 1 FROM user_seen_movies s
			WHERE s.movie_id = m.id AND s.user_id = $1
		)
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find unseen movies",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("failed to find unseen movies: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			r.log.Error("Failed to scan movie id", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return ids, nil
}

// FindAllWithStats returns every movie with its like count, the set of users
// who have seen it and the username of the user who added it.
func (r *movieRepository) FindAllWithStats(ctx context.Context) ([]*MovieStats, error) {
	query := `
		SELECT m.id, m.title, m.year, m.poster, m.description, m.genre,
		       m.rating, m.length, m.starring, m.added_by_id, m.created_at,
		       u.username,
		       (SELECT COUNT(*) FROM user_likes l WHERE l.movie_id = m.id),
		       COALESCE(
		           (SELECT array_agg(s.user_id::text) FROM user_seen_movies s WHERE s.movie_id = m.id),
		           '{}'
		       )
		FROM movies m
		JOIN users u ON u.id = m.added_by_id
		ORDER BY m.created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find movies with stats", zap.Error(err))
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer rows.Close()

	var stats []*MovieStats
	for rows.Next() {
		var st MovieStats
		var seenBy []string
		err := rows.Scan(
			&st.Movie.ID,
			&st.Movie.Title,
			&st.Movie.Year,
			&st.Movie.Poster,
			&st.Movie.Description,
			&st.Movie.Genre,
			&st.Movie.Rating,
			&st.Movie.Length,
			&st.Movie.Starring,
			&st.Movie.AddedByID,
			&st.Movie.CreatedAt,
			&st.AddedByUsername,
			&st.LikesCount,
			&seenBy,
		)
		if err != nil {
			r.log.Error("Failed to scan movie stats row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie stats: %w", err)
		}

		st.SeenByIDs = make([]uuid.UUID, 0, len(seenBy))
		for _, raw := range seenBy {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("parse seen-by user id %q: %w", raw, err)
			}
			st.SeenByIDs = append(st.SeenByIDs, id)
		}

		stats = append(stats, &st)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return stats, nil
}

func (r *movieRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM movies`

	var total int64
	err := r.db.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}

	return total, nil
}
