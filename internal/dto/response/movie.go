package response

import (
	"movie-matcher/internal/data/entity"
)

type MovieResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Year        int    `json:"year"`
	Poster      string `json:"poster"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Rating      string `json:"rating"`
	Length      string `json:"length"`
	Starring    string `json:"starring"`
}

// MovieListItem is one row of the all-movies listing with its aggregates
type MovieListItem struct {
	MovieResponse
	LikesCount int64       `json:"likes_count"`
	UnseenBy   []UserBrief `json:"unseen_by"`
	AddedBy    UserBrief   `json:"added_by"`
}

// AddMovieResponse confirms a created movie
type AddMovieResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// HistoryItemResponse is one entry of a user's swipe history
type HistoryItemResponse struct {
	Title string `json:"title"`
	Liked bool   `json:"liked"`
}

// MovieCountsResponse reports the seen/unseen breakdown for a user
type MovieCountsResponse struct {
	TotalMovies  int64 `json:"total_movies"`
	SeenMovies   int64 `json:"seen_movies"`
	UnseenMovies int64 `json:"unseen_movies"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Year:        movie.Year,
		Poster:      movie.Poster,
		Description: movie.Description,
		Genre:       movie.Genre,
		Rating:      movie.Rating,
		Length:      movie.Length,
		Starring:    movie.Starring,
	}
}
