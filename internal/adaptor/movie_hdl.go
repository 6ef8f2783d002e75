package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"movie-matcher/internal/dto/request"
	"movie-matcher/internal/usecase"
	"movie-matcher/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// Random handles GET /api/movies/random
func (h *MovieHandler) Random(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseMessage(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	movie, err := h.service.PickUnseen(r.Context(), userID)
	if err != nil {
		h.log.Error("Failed to pick unseen movie", zap.Error(err))
		utils.ResponseMessage(w, http.StatusInternalServerError, "Error fetching movie")
		return
	}

	// An exhausted unseen set is not a failure, just nothing left to show
	if movie == nil {
		utils.ResponseMessage(w, http.StatusNotFound, "No more unseen movies")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movie)
}

// Like handles POST /api/movies/like
func (h *MovieHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.swipe(w, r, "like")
}

// Dislike handles POST /api/movies/dislike
func (h *MovieHandler) Dislike(w http.ResponseWriter, r *http.Request) {
	h.swipe(w, r, "dislike")
}

func (h *MovieHandler) swipe(w http.ResponseWriter, r *http.Request, verdict string) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseMessage(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request.SwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, "No input data provided")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseMessage(w, http.StatusBadRequest, "A valid movieId is required")
		return
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, "A valid movieId is required")
		return
	}

	if verdict == "like" {
		err = h.service.Like(r.Context(), userID, movieID)
	} else {
		err = h.service.Dislike(r.Context(), userID, movieID)
	}

	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.ResponseMessage(w, http.StatusNotFound, "Movie not found")
			return
		}
		h.log.Error("Failed to record swipe", zap.Error(err), zap.String("verdict", verdict))
		utils.ResponseMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if verdict == "like" {
		utils.ResponseMessage(w, http.StatusOK, "Movie liked and marked as seen successfully")
	} else {
		utils.ResponseMessage(w, http.StatusOK, "Movie marked as seen successfully")
	}
}

// Add handles POST /api/movies/add
func (h *MovieHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseMessage(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request.AddMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "No data provided")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseError(w, http.StatusBadRequest, utils.FormatValidationErrors(validationErrors))
		return
	}

	resp, err := h.service.Add(r.Context(), userID, &req)
	if err != nil {
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "already exists"):
			h.log.Warn("Add movie failed - duplicate", zap.String("title", req.Title))
			utils.ResponseError(w, http.StatusConflict, errMsg)
		case strings.Contains(errMsg, "invalid"):
			utils.ResponseError(w, http.StatusBadRequest, errMsg)
		default:
			h.log.Error("Failed to add movie", zap.Error(err))
			utils.ResponseError(w, http.StatusInternalServerError, "An error occurred while adding the movie")
		}
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, resp)
}

// All handles GET /api/movies/all
func (h *MovieHandler) All(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.ListAll(r.Context())
	if err != nil {
		h.log.Error("Failed to list movies", zap.Error(err))
		utils.ResponseError(w, http.StatusInternalServerError, "An error occurred while fetching movies")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movies)
}

// Search handles GET /api/movies/search?query=title;title
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		utils.ResponseError(w, http.StatusBadRequest, "No search query provided")
		return
	}

	results, err := h.service.Search(r.Context(), query)
	if err != nil {
		h.log.Error("Failed to search movies", zap.Error(err))
		utils.ResponseError(w, http.StatusInternalServerError, "An error occurred while searching movies")
		return
	}

	if len(results) == 0 {
		utils.ResponseError(w, http.StatusNotFound, "No movies found")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, results)
}

// History handles GET /api/user/movie-history
func (h *MovieHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseMessage(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	history, err := h.service.History(r.Context(), userID)
	if err != nil {
		h.log.Error("Failed to load movie history", zap.Error(err))
		utils.ResponseError(w, http.StatusInternalServerError, "An error occurred while fetching movie history")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, history)
}

// Counts handles GET /api/debug/movie-counts
func (h *MovieHandler) Counts(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseMessage(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	counts, err := h.service.Counts(r.Context(), userID)
	if err != nil {
		h.log.Error("Failed to count movies", zap.Error(err))
		utils.ResponseError(w, http.StatusInternalServerError, "An error occurred while counting movies")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, counts)
}
