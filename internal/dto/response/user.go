package response

import (
	"movie-matcher/internal/data/entity"
)

// UserBrief is the id+username pair used in listings and match metadata
type UserBrief struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type UserInfoResponse struct {
	Username string `json:"username"`
}

func UserToBrief(user *entity.User) UserBrief {
	return UserBrief{
		ID:       user.ID.String(),
		Username: user.Username,
	}
}
