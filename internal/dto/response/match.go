package response

import (
	"movie-matcher/internal/data/repository"
)

// MatchResponse is a movie liked by every queried user. The year field is
// absent on purpose; the original matches payload never carried it.
type MatchResponse struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Poster       string      `json:"poster"`
	Description  string      `json:"description"`
	Genre        string      `json:"genre"`
	Rating       string      `json:"rating"`
	Length       string      `json:"length"`
	Starring     string      `json:"starring"`
	MatchCount   int         `json:"match_count"`
	MatchedUsers []UserBrief `json:"matched_users"`
}

func MatchToResponse(match *repository.MovieMatch) MatchResponse {
	users := make([]UserBrief, 0, len(match.UserIDs))
	for i, id := range match.UserIDs {
		users = append(users, UserBrief{
			ID:       id.String(),
			Username: match.Usernames[i],
		})
	}

	return MatchResponse{
		ID:           match.Movie.ID.String(),
		Title:        match.Movie.Title,
		Poster:       match.Movie.Poster,
		Description:  match.Movie.Description,
		Genre:        match.Movie.Genre,
		Rating:       match.Movie.Rating,
		Length:       match.Movie.Length,
		Starring:     match.Movie.Starring,
		MatchCount:   len(users),
		MatchedUsers: users,
	}
}
