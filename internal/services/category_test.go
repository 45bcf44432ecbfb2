package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/flowpomo/internal/domain"
	portsmocks "github.com/renato0307/flowpomo/internal/ports/mocks"
)

func TestCategoryService_Add(t *testing.T) {
	ctx := context.Background()
	repo := portsmocks.NewMockCategoryRepository(t)
	repo.EXPECT().ListCategories(ctx, "u1").Return([]domain.Category{catReading}, nil)
	repo.EXPECT().ReplaceCategories(ctx, "u1", []domain.Category{
		catReading,
		{Name: "Writing", Color: "#4299E1"},
	}).Return(nil)

	service := NewCategoryService(repo)
	category, err := service.Add(ctx, "u1", "  Writing ", "#4299E1")

	require.NoError(t, err)
	assert.Equal(t, domain.Category{Name: "Writing", Color: "#4299E1"}, category)
}

func TestCategoryService_AddDefaultsColor(t *testing.T) {
	ctx := context.Background()
	repo := portsmocks.NewMockCategoryRepository(t)
	repo.EXPECT().ListCategories(ctx, "u1").Return(nil, nil)
	repo.EXPECT().ReplaceCategories(ctx, "u1", mock.Anything).Return(nil)

	service := NewCategoryService(repo)
	category, err := service.Add(ctx, "u1", "Chores", "")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategoryColor, category.Color)
}

func TestCategoryService_AddRejects(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		catName string
		color   string
		wantErr error
	}{
		{"no user", "", "Reading", "#fff", domain.ErrNoIdentity},
		{"empty name", "u1", "  ", "#fff", domain.ErrInvalidCategoryName},
		{"reserved name", "u1", "uncategorized", "#fff", domain.ErrInvalidCategoryName},
		{"bad color", "u1", "Reading", "green", domain.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := portsmocks.NewMockCategoryRepository(t)
			service := NewCategoryService(repo)

			_, err := service.Add(context.Background(), tt.userID, tt.catName, tt.color)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCategoryService_AddDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := portsmocks.NewMockCategoryRepository(t)
	repo.EXPECT().ListCategories(ctx, "u1").Return([]domain.Category{catReading}, nil)

	service := NewCategoryService(repo)
	_, err := service.Add(ctx, "u1", "Reading", "#000")

	assert.ErrorIs(t, err, domain.ErrCategoryExists)
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := portsmocks.NewMockCategoryRepository(t)
	repo.EXPECT().ListCategories(ctx, "u1").Return([]domain.Category{catReading, catWriting}, nil)
	repo.EXPECT().ReplaceCategories(ctx, "u1", []domain.Category{catWriting}).Return(nil)

	service := NewCategoryService(repo)

	require.NoError(t, service.Delete(ctx, "u1", "Reading"))
}

func TestCategoryService_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	repo := portsmocks.NewMockCategoryRepository(t)
	repo.EXPECT().ListCategories(ctx, "u1").Return([]domain.Category{catWriting}, nil)

	service := NewCategoryService(repo)

	assert.ErrorIs(t, service.Delete(ctx, "u1", "Reading"), domain.ErrCategoryNotFound)
}

func TestCategoryService_ListWithoutUser(t *testing.T) {
	repo := portsmocks.NewMockCategoryRepository(t)
	service := NewCategoryService(repo)

	categories, err := service.List(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCategoryService_WriteErrorIsWrapped(t *testing.T) {
	ctx := context.Background()
	repo := portsmocks.NewMockCategoryRepository(t)
	repo.EXPECT().ListCategories(ctx, "u1").Return(nil, nil)
	repo.EXPECT().ReplaceCategories(ctx, "u1", mock.Anything).Return(errors.New("locked"))

	service := NewCategoryService(repo)
	_, err := service.Add(ctx, "u1", "Reading", "#fff")

	assert.ErrorContains(t, err, "failed to save categories")
}

func TestCategoryService_SourcePublishesToSameUserOnly(t *testing.T) {
	ctx := context.Background()
	repo := portsmocks.NewMockCategoryRepository(t)
	repo.EXPECT().ListCategories(ctx, "u1").Return([]domain.Category{catReading}, nil)
	repo.EXPECT().ReplaceCategories(ctx, "u1", mock.Anything).Return(nil)

	service := NewCategoryService(repo)

	var u1Updates, u2Updates [][]domain.Category
	sub1 := service.Source("u1").Subscribe(func(c []domain.Category) { u1Updates = append(u1Updates, c) })
	sub2 := service.Source("u2").Subscribe(func(c []domain.Category) { u2Updates = append(u2Updates, c) })
	defer sub2.Unsubscribe()

	_, err := service.Add(ctx, "u1", "Writing", "#4299E1")
	require.NoError(t, err)

	require.Len(t, u1Updates, 1)
	assert.Equal(t, []domain.Category{catReading, {Name: "Writing", Color: "#4299E1"}}, u1Updates[0])
	assert.Empty(t, u2Updates)

	sub1.Unsubscribe()
	service.publish("u1", nil)
	assert.Len(t, u1Updates, 1, "no updates after unsubscribe")
}

func TestCategoryService_SelectorFollowsService(t *testing.T) {
	ctx := context.Background()
	repo := portsmocks.NewMockCategoryRepository(t)
	repo.EXPECT().ListCategories(ctx, "u1").Return([]domain.Category{catReading}, nil)
	repo.EXPECT().ReplaceCategories(ctx, "u1", mock.Anything).Return(nil)

	service := NewCategoryService(repo)
	selector, err := NewCategorySelector(ctx, service.Source("u1"))
	require.NoError(t, err)
	defer selector.Close()

	require.NoError(t, service.Delete(ctx, "u1", "Reading"))

	assert.Empty(t, selector.Categories())
}

func TestCategoryService_SelectorSeesAddDuringLoad(t *testing.T) {
	ctx := context.Background()
	repo := portsmocks.NewMockCategoryRepository(t)
	service := NewCategoryService(repo)

	// The selector's load reads an empty list while another writer adds a category
	repo.EXPECT().ListCategories(ctx, "u1").
		Run(func(context.Context, string) {
			_, err := service.Add(ctx, "u1", "Reading", "#48BB78")
			require.NoError(t, err)
		}).
		Return(nil, nil).Once()
	repo.EXPECT().ListCategories(ctx, "u1").Return(nil, nil).Once()
	repo.EXPECT().ReplaceCategories(ctx, "u1", []domain.Category{catReading}).Return(nil)

	selector, err := NewCategorySelector(ctx, service.Source("u1"))
	require.NoError(t, err)
	defer selector.Close()

	assert.Equal(t, []domain.Category{catReading}, selector.Categories())
}

func TestCategoryService_RefreshPublishesOnlyChanges(t *testing.T) {
	ctx := context.Background()
	repo := portsmocks.NewMockCategoryRepository(t)
	repo.EXPECT().ListCategories(ctx, "u1").Return([]domain.Category{catReading}, nil).Twice()
	repo.EXPECT().ListCategories(ctx, "u1").Return([]domain.Category{catReading, catWriting}, nil).Once()

	service := NewCategoryService(repo)
	var updates [][]domain.Category
	sub := service.Source("u1").Subscribe(func(c []domain.Category) { updates = append(updates, c) })
	defer sub.Unsubscribe()

	require.NoError(t, service.Refresh(ctx, "u1"))
	require.NoError(t, service.Refresh(ctx, "u1"))
	require.NoError(t, service.Refresh(ctx, "u1"))

	require.Len(t, updates, 2)
	assert.Equal(t, []domain.Category{catReading}, updates[0])
	assert.Equal(t, []domain.Category{catReading, catWriting}, updates[1])
}

func TestCategoryService_RefreshSkipsWhatWasWrittenHere(t *testing.T) {
	ctx := context.Background()
	repo := portsmocks.NewMockCategoryRepository(t)
	repo.EXPECT().ListCategories(ctx, "u1").Return(nil, nil).Once()
	repo.EXPECT().ReplaceCategories(ctx, "u1", []domain.Category{catReading}).Return(nil)
	repo.EXPECT().ListCategories(ctx, "u1").Return([]domain.Category{catReading}, nil).Once()

	service := NewCategoryService(repo)
	var updates [][]domain.Category
	sub := service.Source("u1").Subscribe(func(c []domain.Category) { updates = append(updates, c) })
	defer sub.Unsubscribe()

	_, err := service.Add(ctx, "u1", "Reading", "#48BB78")
	require.NoError(t, err)
	require.NoError(t, service.Refresh(ctx, "u1"))

	assert.Len(t, updates, 1, "the store holds what was already published")
}

// storeCategories is a category repository written to by another "process"
type storeCategories struct {
	mu         sync.Mutex
	categories []domain.Category
}

func (s *storeCategories) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Category(nil), s.categories...), nil
}

func (s *storeCategories) ReplaceCategories(ctx context.Context, userID string, categories []domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]domain.Category(nil), categories...)
	return nil
}

func TestCategoryService_PollingPicksUpOtherWriters(t *testing.T) {
	ctx := context.Background()
	store := &storeCategories{categories: []domain.Category{catReading}}

	service := NewCategoryService(store)
	service.SetPollInterval(5 * time.Millisecond)

	selector, err := NewCategorySelector(ctx, service.Source("u1"))
	require.NoError(t, err)
	defer selector.Close()
	require.Equal(t, []domain.Category{catReading}, selector.Categories())

	// A second service stands in for "flowpomo categories add" in another process
	_, err = NewCategoryService(store).Add(ctx, "u1", "Writing", "#4299E1")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(selector.Categories()) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []domain.Category{catReading, catWriting}, selector.Categories())
}

func TestCategoryService_LastUnsubscribeStopsPolling(t *testing.T) {
	store := &storeCategories{}
	service := NewCategoryService(store)
	service.SetPollInterval(time.Hour)

	sub1 := service.Source("u1").Subscribe(func([]domain.Category) {})
	sub2 := service.Source("u1").Subscribe(func([]domain.Category) {})

	service.subMu.Lock()
	assert.Len(t, service.pollers, 1, "one poller per followed user")
	service.subMu.Unlock()

	sub1.Unsubscribe()
	sub2.Unsubscribe()

	service.subMu.Lock()
	defer service.subMu.Unlock()
	assert.Empty(t, service.pollers)
}
