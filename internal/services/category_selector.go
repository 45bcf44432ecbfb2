package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/renato0307/flowpomo/internal/domain"
	"github.com/renato0307/flowpomo/internal/logging"
	"github.com/renato0307/flowpomo/internal/ports"
)

// CategorySelector tracks which category the current interval is attributed to.
// The list itself belongs to the category source and is only mirrored here.
type CategorySelector struct {
	mu           sync.RWMutex
	categories   []domain.Category
	pushed       bool // A list arrived from the subscription
	selected     *domain.CategoryRef
	subscription ports.Subscription
}

// NewCategorySelector loads the current list and follows updates from source.
// A nil source yields a selector with an empty list.
func NewCategorySelector(ctx context.Context, source ports.CategorySource) (*CategorySelector, error) {
	s := &CategorySelector{}
	if source == nil {
		return s, nil
	}

	// Subscribe before loading so a write landing in between is not lost
	s.subscription = source.Subscribe(s.replace)

	categories, err := source.CurrentCategories(ctx)
	if err != nil {
		s.subscription.Unsubscribe()
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	s.mu.Lock()
	if !s.pushed {
		s.categories = categories
	}
	s.mu.Unlock()

	return s, nil
}

// Select toggles the selection: picking the selected category clears it
func (s *CategorySelector) Select(category domain.Category) *domain.CategoryRef {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected.Is(category.Name) {
		logging.Logger.Debug("Category deselected", "category", category.Name)
		s.selected = nil
		return nil
	}

	ref := category.Ref()
	s.selected = &ref
	logging.Logger.Debug("Category selected", "category", category.Name)
	return s.selected.Clone()
}

// SelectByName resolves name against the current list and toggles it
func (s *CategorySelector) SelectByName(name string) (*domain.CategoryRef, error) {
	s.mu.RLock()
	category, ok := domain.FindCategory(s.categories, name)
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, name)
	}
	return s.Select(category), nil
}

// Clear drops the current selection
func (s *CategorySelector) Clear() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

// Selected returns a copy of the current selection or nil
func (s *CategorySelector) Selected() *domain.CategoryRef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected.Clone()
}

// Categories returns a copy of the mirrored list
func (s *CategorySelector) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Close stops following list updates
func (s *CategorySelector) Close() {
	if s.subscription != nil {
		s.subscription.Unsubscribe()
	}
}

// replace swaps in a new list; the selection is kept even if its name disappears
func (s *CategorySelector) replace(categories []domain.Category) {
	next := make([]domain.Category, len(categories))
	copy(next, categories)

	s.mu.Lock()
	s.categories = next
	s.pushed = true
	s.mu.Unlock()

	logging.Logger.Debug("Category list replaced", "count", len(next))
}
