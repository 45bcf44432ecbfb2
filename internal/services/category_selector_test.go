package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/flowpomo/internal/domain"
	"github.com/renato0307/flowpomo/internal/ports"
)

// stubCategorySource hands out a fixed list and lets tests push updates
type stubCategorySource struct {
	mu           sync.Mutex
	categories   []domain.Category
	err          error
	listener     func([]domain.Category)
	onLoad       func()
	unsubscribed bool
}

func (s *stubCategorySource) CurrentCategories(ctx context.Context) ([]domain.Category, error) {
	if s.onLoad != nil {
		s.onLoad()
	}
	return s.categories, s.err
}

func (s *stubCategorySource) Subscribe(fn func([]domain.Category)) ports.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = fn
	return subscriptionFunc(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listener = nil
		s.unsubscribed = true
	})
}

func (s *stubCategorySource) push(categories []domain.Category) {
	s.mu.Lock()
	fn := s.listener
	s.mu.Unlock()
	if fn != nil {
		fn(categories)
	}
}

var (
	catReading = domain.Category{Name: "Reading", Color: "#48BB78"}
	catWriting = domain.Category{Name: "Writing", Color: "#4299E1"}
)

func TestCategorySelector_SelectTogglesOff(t *testing.T) {
	selector, err := NewCategorySelector(context.Background(), nil)
	require.NoError(t, err)

	ref := selector.Select(catReading)
	require.NotNil(t, ref)
	assert.Equal(t, "Reading", ref.Name)

	ref = selector.Select(catReading)
	assert.Nil(t, ref)
	assert.Nil(t, selector.Selected())
}

func TestCategorySelector_SelectReplaces(t *testing.T) {
	selector, err := NewCategorySelector(context.Background(), nil)
	require.NoError(t, err)

	selector.Select(catReading)
	selector.Select(catWriting)

	selected := selector.Selected()
	require.NotNil(t, selected)
	assert.Equal(t, "Writing", selected.Name)
	assert.Equal(t, "#4299E1", selected.Color)
}

func TestCategorySelector_SelectByName(t *testing.T) {
	source := &stubCategorySource{categories: []domain.Category{catReading, catWriting}}
	selector, err := NewCategorySelector(context.Background(), source)
	require.NoError(t, err)

	ref, err := selector.SelectByName("Writing")
	require.NoError(t, err)
	assert.Equal(t, "Writing", ref.Name)

	_, err = selector.SelectByName("Cooking")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Equal(t, "Writing", selector.Selected().Name, "failed lookup keeps selection")
}

func TestCategorySelector_FollowsListUpdates(t *testing.T) {
	source := &stubCategorySource{categories: []domain.Category{catReading}}
	selector, err := NewCategorySelector(context.Background(), source)
	require.NoError(t, err)
	selector.Select(catReading)

	source.push([]domain.Category{catWriting})

	assert.Equal(t, []domain.Category{catWriting}, selector.Categories())
	assert.Equal(t, "Reading", selector.Selected().Name, "selection survives list replacement")
}

func TestCategorySelector_CloseUnsubscribes(t *testing.T) {
	source := &stubCategorySource{}
	selector, err := NewCategorySelector(context.Background(), source)
	require.NoError(t, err)

	selector.Close()

	assert.True(t, source.unsubscribed)
}

func TestCategorySelector_LoadError(t *testing.T) {
	source := &stubCategorySource{err: errors.New("db down")}

	_, err := NewCategorySelector(context.Background(), source)

	assert.ErrorContains(t, err, "db down")
	assert.True(t, source.unsubscribed)
}

func TestCategorySelector_UpdateDuringLoadWins(t *testing.T) {
	source := &stubCategorySource{categories: []domain.Category{catReading}}
	source.onLoad = func() { source.push([]domain.Category{catReading, catWriting}) }

	selector, err := NewCategorySelector(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, []domain.Category{catReading, catWriting}, selector.Categories(),
		"the stale loaded list must not overwrite the pushed one")
}

func TestCategorySelector_SelectedIsCopy(t *testing.T) {
	selector, err := NewCategorySelector(context.Background(), nil)
	require.NoError(t, err)
	selector.Select(catReading)

	selector.Selected().Name = "mutated"

	assert.Equal(t, "Reading", selector.Selected().Name)
}
