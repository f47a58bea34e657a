package usecase

import (
	"context"

	"career-advisor/internal/domain/career"
)

// CareerStats counts how often each category has been recommended.
type CareerStats interface {
	Increment(ctx context.Context, id career.CategoryID) error
	Counts(ctx context.Context, ids []career.CategoryID) (map[career.CategoryID]int64, error)
}

// RecommendationNotifier is told about every recommendation served. Implementations must
// not block.
type RecommendationNotifier interface {
	NotifyRecommendation(recommendationID string, id career.CategoryID, title string)
}
