package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/renato0307/flowpomo/internal/domain"
	"github.com/renato0307/flowpomo/internal/logging"
	"github.com/renato0307/flowpomo/internal/ports"
)

const defaultRetries = 3

// SQLiteRepository implements ports.SessionRepository and ports.CategoryRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var (
	_ ports.CategoryRepository = (*SQLiteRepository)(nil)
	_ ports.SessionRepository  = (*SQLiteRepository)(nil)
)

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the SSH server and local CLI commands share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&SessionModel{}, &CategoryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Opened session database", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath creates a new SQLiteRepository for a specific FLOWPOMO_HOME path
func NewSQLiteRepositoryForPath(homePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(homePath, "state.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AppendSession implements SessionSink.AppendSession
func (r *SQLiteRepository) AppendSession(ctx context.Context, record domain.SessionRecord) error {
	if record.ID == "" || record.UserID == "" {
		return fmt.Errorf("session record needs an id and a user")
	}
	model := domainToSessionModel(record)
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to append session: %w", err)
		}
		return nil
	}, defaultRetries)
}

// ListSessions implements SessionReader.ListSessions, newest first.
// A limit <= 0 returns every session.
func (r *SQLiteRepository) ListSessions(ctx context.Context, userID string, limit int) ([]domain.SessionRecord, error) {
	var models []SessionModel
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("timestamp DESC").
			Order("id")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&models).Error
	}, defaultRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	result := make([]domain.SessionRecord, 0, len(models))
	for _, m := range models {
		result = append(result, sessionModelToDomain(m))
	}
	return result, nil
}

// ListCategories implements CategoryRepository.ListCategories
func (r *SQLiteRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	var models []CategoryModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("position").
			Find(&models).Error
	}, defaultRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]domain.Category, 0, len(models))
	for _, m := range models {
		result = append(result, categoryModelToDomain(m))
	}
	return result, nil
}

// ReplaceCategories implements CategoryRepository.ReplaceCategories.
// The whole list is rewritten in one transaction.
func (r *SQLiteRepository) ReplaceCategories(ctx context.Context, userID string, categories []domain.Category) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", userID).Delete(&CategoryModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear categories: %w", err)
			}
			if len(categories) == 0 {
				return nil
			}

			models := make([]CategoryModel, 0, len(categories))
			for i, c := range categories {
				models = append(models, domainToCategoryModel(userID, i, c))
			}
			if err := tx.Create(&models).Error; err != nil {
				return fmt.Errorf("failed to save categories: %w", err)
			}
			return nil
		})
	}, defaultRetries)
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			lastErr = err
			logging.Logger.Debug("Database busy, retrying", "attempt", i+1, "error", err)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, lastErr)
}
