package ports

import (
	"context"

	"github.com/renato0307/flowpomo/internal/domain"
)

// CategoryRepository stores each user's ordered category list.
// Writes replace the whole list.
type CategoryRepository interface {
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	ReplaceCategories(ctx context.Context, userID string, categories []domain.Category) error
}

// Subscription is a cancellable registration returned by Subscribe
type Subscription interface {
	Unsubscribe()
}

// CategorySource is a read-only view onto one user's categories
type CategorySource interface {
	// CurrentCategories returns the ordered category list
	CurrentCategories(ctx context.Context) ([]domain.Category, error)

	// Subscribe registers fn to receive the full list whenever it changes
	Subscribe(fn func([]domain.Category)) Subscription
}
