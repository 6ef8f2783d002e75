package usecase

import (
	"context"
	"fmt"

	"movie-matcher/internal/data/repository"
	"movie-matcher/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MatchService interface {
	// Compute returns the movies liked by every named user. Fewer than two
	// distinct ids is a validation error; no matches is an empty result.
	Compute(ctx context.Context, userIDs []string) ([]response.MatchResponse, error)
}

type matchService struct {
	matchRepo repository.MatchRepository
	log       *zap.Logger
}

func NewMatchService(matchRepo repository.MatchRepository, log *zap.Logger) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		log:       log,
	}
}

func (s *matchService) Compute(ctx context.Context, userIDs []string) ([]response.MatchResponse, error) {
	// Deduplicate before the distinct-count check; [A, A] is one user
	seen := make(map[uuid.UUID]bool, len(userIDs))
	ids := make([]uuid.UUID, 0, len(userIDs))
	for _, raw := range userIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q", raw)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	if len(ids) < 2 {
		return nil, fmt.Errorf("at least two distinct users required")
	}

	matches, err := s.matchRepo.LikedByAll(ctx, ids)
	if err != nil {
		s.log.Error("Failed to compute matches", zap.Error(err), zap.Int("user_count", len(ids)))
		return nil, fmt.Errorf("failed to compute matches")
	}

	results := make([]response.MatchResponse, 0, len(matches))
	for _, match := range matches {
		results = append(results, response.MatchToResponse(match))
	}

	s.log.Debug("Matches computed",
		zap.Int("user_count", len(ids)),
		zap.Int("match_count", len(results)))

	return results, nil
}
