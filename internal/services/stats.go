package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/flowpomo/internal/domain"
	"github.com/renato0307/flowpomo/internal/logging"
	"github.com/renato0307/flowpomo/internal/ports"
)

// MaxSummarySessions caps how many recent sessions a summary reads
const MaxSummarySessions = 500

// SummaryParams selects what a summary covers
type SummaryParams struct {
	Filter domain.TimeFilter
	Now    time.Time // Zero means time.Now()
	Pro    bool      // The time filter is only honored for pro users
	UserID string
}

// Summary aggregates a user's recorded focus time
type Summary struct {
	Filter        domain.TimeFilter
	FilterApplied bool
	Sessions      []domain.SessionRecord // Newest first
	TotalSeconds  int
	Totals        []domain.CategoryTotal // First-seen order
}

// StatsService builds summaries over recorded sessions
type StatsService struct {
	categories ports.CategoryRepository
	sessions   ports.SessionReader
}

// NewStatsService creates a new StatsService
func NewStatsService(sessions ports.SessionReader, categories ports.CategoryRepository) *StatsService {
	return &StatsService{
		categories: categories,
		sessions:   sessions,
	}
}

// Summary loads sessions and categories concurrently and totals time per category
func (s *StatsService) Summary(ctx context.Context, params SummaryParams) (*Summary, error) {
	if params.UserID == "" {
		return nil, domain.ErrNoIdentity
	}
	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}

	var sessions []domain.SessionRecord
	var categories []domain.Category

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sessions, err = s.sessions.ListSessions(gctx, params.UserID, MaxSummarySessions)
		if err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.ListCategories(gctx, params.UserID)
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{
		Filter:        domain.FilterAll,
		FilterApplied: params.Pro && params.Filter != "" && params.Filter != domain.FilterAll,
		Sessions:      make([]domain.SessionRecord, 0, len(sessions)),
		Totals:        []domain.CategoryTotal{},
	}
	if summary.FilterApplied {
		summary.Filter = params.Filter
	}

	index := make(map[string]int)
	for _, session := range sessions {
		if !summary.Filter.Includes(session.Time(), now) {
			continue
		}
		summary.Sessions = append(summary.Sessions, session)
		summary.TotalSeconds += session.Duration

		i, seen := index[session.Category]
		if !seen {
			i = len(summary.Totals)
			index[session.Category] = i
			summary.Totals = append(summary.Totals, domain.CategoryTotal{
				Color: categoryColor(categories, session.Category),
				Name:  session.Category,
			})
		}
		summary.Totals[i].Seconds += session.Duration
	}

	logging.Logger.Debug("Built stats summary",
		"user", params.UserID,
		"filter", summary.Filter,
		"sessions", len(summary.Sessions),
		"total_seconds", summary.TotalSeconds)

	return summary, nil
}

func categoryColor(categories []domain.Category, name string) string {
	if c, ok := domain.FindCategory(categories, name); ok && c.Color != "" {
		return c.Color
	}
	return domain.DefaultCategoryColor
}
