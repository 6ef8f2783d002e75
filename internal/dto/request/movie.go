package request

// SwipeRequest is the body of like/dislike calls
type SwipeRequest struct {
	MovieID string `json:"movieId" validate:"required,uuid"`
}

// AddMovieRequest mirrors an OMDb record; the frontend forwards lookup
// results as-is, so the field names follow OMDb's capitalization.
type AddMovieRequest struct {
	Title      string `json:"Title" validate:"required"`
	Poster     string `json:"Poster" validate:"required"`
	Plot       string `json:"Plot" validate:"required"`
	Genre      string `json:"Genre" validate:"required"`
	ImdbRating string `json:"imdbRating" validate:"required"`
	Runtime    string `json:"Runtime" validate:"required"`
	Actors     string `json:"Actors" validate:"required"`
	Year       string `json:"Year" validate:"required"`
}
