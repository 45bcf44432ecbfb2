package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/renato0307/flowpomo/internal/domain"
	"github.com/renato0307/flowpomo/internal/logging"
	"github.com/renato0307/flowpomo/internal/ports"
)

// DefaultCategoryPollInterval is how often followed lists are re-read for writes
// made by other processes, such as "flowpomo categories add"
const DefaultCategoryPollInterval = 3 * time.Second

// CategoryService manages per-user category lists and fans out changes
// to every engine following that user's list
type CategoryService struct {
	mu           sync.Mutex // Serializes read-modify-write cycles and polls
	nextSubID    int
	pollers      map[string]context.CancelFunc
	pollInterval time.Duration
	published    map[string][]domain.Category
	repo         ports.CategoryRepository
	subMu        sync.Mutex
	subscribers  map[string]map[int]func([]domain.Category)
}

// NewCategoryService creates a new CategoryService.
// Only in-process writes are published until SetPollInterval is called.
func NewCategoryService(repo ports.CategoryRepository) *CategoryService {
	return &CategoryService{
		pollers:     make(map[string]context.CancelFunc),
		published:   make(map[string][]domain.Category),
		repo:        repo,
		subscribers: make(map[string]map[int]func([]domain.Category)),
	}
}

// SetPollInterval makes followed lists pick up writes from other processes.
// It applies to users whose first subscriber arrives afterwards; zero disables polling.
func (s *CategoryService) SetPollInterval(interval time.Duration) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.pollInterval = interval
}

// List returns the user's categories in insertion order.
// Without a user there is nothing to list.
func (s *CategoryService) List(ctx context.Context, userID string) ([]domain.Category, error) {
	if userID == "" {
		return []domain.Category{}, nil
	}
	categories, err := s.repo.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Add appends a category to the user's list
func (s *CategoryService) Add(ctx context.Context, userID, name, color string) (domain.Category, error) {
	if userID == "" {
		return domain.Category{}, domain.ErrNoIdentity
	}

	name, err := domain.NormalizeCategoryName(name)
	if err != nil {
		return domain.Category{}, err
	}
	if color == "" {
		color = domain.DefaultCategoryColor
	}
	if err := domain.ValidateColor(color); err != nil {
		return domain.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := s.List(ctx, userID)
	if err != nil {
		return domain.Category{}, err
	}
	if _, exists := domain.FindCategory(categories, name); exists {
		return domain.Category{}, fmt.Errorf("%w: %s", domain.ErrCategoryExists, name)
	}

	category := domain.Category{Color: color, Name: name}
	categories = append(categories, category)
	if err := s.write(ctx, userID, categories); err != nil {
		return domain.Category{}, err
	}

	logging.Logger.Info("Category added", "user", userID, "category", name, "color", color)
	return category, nil
}

// Delete removes a category from the user's list by filtering and writing the rest back
func (s *CategoryService) Delete(ctx context.Context, userID, name string) error {
	if userID == "" {
		return domain.ErrNoIdentity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := s.List(ctx, userID)
	if err != nil {
		return err
	}

	remaining := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		if c.Name != name {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(categories) {
		return fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, name)
	}

	if err := s.write(ctx, userID, remaining); err != nil {
		return err
	}

	logging.Logger.Info("Category deleted", "user", userID, "category", name)
	return nil
}

// Source returns a read-only view of one user's list for an engine
func (s *CategoryService) Source(userID string) ports.CategorySource {
	return &userCategorySource{service: s, userID: userID}
}

func (s *CategoryService) write(ctx context.Context, userID string, categories []domain.Category) error {
	if err := s.repo.ReplaceCategories(ctx, userID, categories); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	s.publish(userID, categories)
	return nil
}

func (s *CategoryService) publish(userID string, categories []domain.Category) {
	s.subMu.Lock()
	if _, followed := s.subscribers[userID]; followed {
		s.published[userID] = slices.Clone(categories)
	}
	fns := make([]func([]domain.Category), 0, len(s.subscribers[userID]))
	for _, fn := range s.subscribers[userID] {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		snapshot := make([]domain.Category, len(categories))
		copy(snapshot, categories)
		fn(snapshot)
	}
}

func (s *CategoryService) subscribe(userID string, fn func([]domain.Category)) ports.Subscription {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	if s.subscribers[userID] == nil {
		s.subscribers[userID] = make(map[int]func([]domain.Category))
		if s.pollInterval > 0 {
			ctx, cancel := context.WithCancel(context.Background())
			s.pollers[userID] = cancel
			go s.poll(ctx, userID, s.pollInterval)
		}
	}
	s.subscribers[userID][id] = fn

	return subscriptionFunc(func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers[userID], id)
		if len(s.subscribers[userID]) == 0 {
			delete(s.subscribers, userID)
			delete(s.published, userID)
			if cancel, ok := s.pollers[userID]; ok {
				cancel()
				delete(s.pollers, userID)
			}
		}
	})
}

// poll re-reads the user's list until ctx is cancelled
func (s *CategoryService) poll(ctx context.Context, userID string, interval time.Duration) {
	logging.Logger.Debug("Following category store", "user", userID, "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx, userID); err != nil {
				logging.Logger.Warn("Failed to refresh categories", "user", userID, "error", err)
			}
		}
	}
}

// Refresh re-reads the user's list and publishes it when it differs from the last
// published one. Writes from other processes reach running engines this way.
func (s *CategoryService) Refresh(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx.Err() != nil {
		return nil
	}

	categories, err := s.List(ctx, userID)
	if err != nil {
		return err
	}

	s.subMu.Lock()
	last, known := s.published[userID]
	s.subMu.Unlock()

	if known && slices.Equal(last, categories) {
		return nil
	}

	logging.Logger.Debug("Category list changed in store", "user", userID, "count", len(categories))
	s.publish(userID, categories)
	return nil
}

type userCategorySource struct {
	service *CategoryService
	userID  string
}

func (u *userCategorySource) CurrentCategories(ctx context.Context) ([]domain.Category, error) {
	return u.service.List(ctx, u.userID)
}

func (u *userCategorySource) Subscribe(fn func([]domain.Category)) ports.Subscription {
	return u.service.subscribe(u.userID, fn)
}

type subscriptionFunc func()

func (f subscriptionFunc) Unsubscribe() { f() }
