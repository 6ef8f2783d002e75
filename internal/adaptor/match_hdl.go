package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"movie-matcher/internal/dto/request"
	"movie-matcher/internal/usecase"
	"movie-matcher/pkg/utils"

	"go.uber.org/zap"
)

type MatchHandler struct {
	service usecase.MatchService
	log     *zap.Logger
}

func NewMatchHandler(service usecase.MatchService, log *zap.Logger) *MatchHandler {
	return &MatchHandler{
		service: service,
		log:     log.With(zap.String("handler", "match")),
	}
}

// Matches handles POST /api/movies/matches
func (h *MatchHandler) Matches(w http.ResponseWriter, r *http.Request) {
	var req request.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "No input data provided")
		return
	}

	results, err := h.service.Compute(r.Context(), req.UserIDs)
	if err != nil {
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "at least two"):
			utils.ResponseError(w, http.StatusBadRequest, "Please select at least two users to compare matches")
		case strings.Contains(errMsg, "invalid user id"):
			utils.ResponseError(w, http.StatusBadRequest, errMsg)
		default:
			h.log.Error("Failed to compute matches", zap.Error(err))
			utils.ResponseError(w, http.StatusInternalServerError, "An error occurred while fetching matches")
		}
		return
	}

	// No matches is a successful, empty result
	utils.ResponseJSON(w, http.StatusOK, results)
}
