package request

// MatchRequest names the users to compare; at least two distinct ids are
// required (the service deduplicates before checking).
type MatchRequest struct {
	UserIDs []string `json:"userIds" validate:"required,dive,uuid"`
}
