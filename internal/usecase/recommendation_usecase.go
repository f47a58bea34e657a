package usecase

import (
	"context"
	"fmt"
	"strings"

	"career-advisor/internal/domain/career"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Recommendation struct {
	ID          uuid.UUID
	CareerID    career.CategoryID
	Skills      string
	Title       string
	Description string
	NextSteps   []string
	SalaryRange string
	JobGrowth   string
	Message     string
	Confidence  string
}

type CareerSummary struct {
	ID          career.CategoryID
	Title       string
	Description string
}

type CareerHits struct {
	ID    career.CategoryID
	Title string
	Hits  int64
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, skills string) (Recommendation, error)
	ListCareers(ctx context.Context) []CareerSummary
	CareerStats(ctx context.Context) ([]CareerHits, error)
}

type Recommender struct {
	stats    CareerStats
	notifier RecommendationNotifier
	logger   *zap.Logger
}

func NewRecommender(stats CareerStats, notifier RecommendationNotifier, logger *zap.Logger) *Recommender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommender{stats: stats, notifier: notifier, logger: logger}
}

func (u *Recommender) Recommend(ctx context.Context, skills string) (Recommendation, error) {
	skills = strings.TrimSpace(skills)
	if skills == "" {
		return Recommendation{}, ErrSkillsEmpty
	}

	m := career.MatchSkills(skills)
	rec := career.Lookup(m.Category)

	out := Recommendation{
		ID:          uuid.New(),
		CareerID:    rec.ID,
		Skills:      skills,
		Title:       rec.Title,
		Description: rec.Description,
		NextSteps:   rec.NextSteps,
		SalaryRange: rec.SalaryRange,
		JobGrowth:   rec.JobGrowth,
		Message:     career.Encouragement(skills),
		Confidence:  career.ConfidenceScore,
	}

	u.logger.Debug("skills classified",
		zap.String("recommendation_id", out.ID.String()),
		zap.String("career_id", string(m.Category)),
		zap.String("keyword", m.Keyword),
		zap.Bool("fallback", m.Fallback),
	)

	if u.stats != nil {
		if err := u.stats.Increment(ctx, rec.ID); err != nil {
			u.logger.Warn("failed to record career hit", zap.String("career_id", string(rec.ID)), zap.Error(err))
		}
	}
	if u.notifier != nil {
		u.notifier.NotifyRecommendation(out.ID.String(), rec.ID, rec.Title)
	}

	return out, nil
}

func (u *Recommender) ListCareers(_ context.Context) []CareerSummary {
	all := career.All()
	out := make([]CareerSummary, 0, len(all))
	for _, r := range all {
		out = append(out, CareerSummary{ID: r.ID, Title: r.Title, Description: r.Description})
	}
	return out
}

func (u *Recommender) CareerStats(ctx context.Context) ([]CareerHits, error) {
	all := career.All()
	ids := make([]career.CategoryID, 0, len(all))
	for _, r := range all {
		ids = append(ids, r.ID)
	}

	counts := map[career.CategoryID]int64{}
	if u.stats != nil {
		c, err := u.stats.Counts(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		counts = c
	}

	out := make([]CareerHits, 0, len(all))
	for _, r := range all {
		out = append(out, CareerHits{ID: r.ID, Title: r.Title, Hits: counts[r.ID]})
	}
	return out, nil
}
