package storage

import "time"

// SessionModel is the GORM model for the focus_sessions table
type SessionModel struct {
	Category  string `gorm:"not null;default:'Uncategorized'"`
	CreatedAt time.Time
	Duration  int    `gorm:"not null;check:duration > 0"`
	ID        string `gorm:"primaryKey"`
	Timestamp int64  `gorm:"not null;index:idx_user_timestamp,priority:2"`
	UserID    string `gorm:"not null;index:idx_user_timestamp,priority:1"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "focus_sessions" }

// CategoryModel is the GORM model for per-user categories
type CategoryModel struct {
	Color     string `gorm:"not null;default:'#A0AEC0'"`
	CreatedAt time.Time
	Name      string `gorm:"primaryKey"`
	Position  int    `gorm:"not null;default:0"`
	UpdatedAt time.Time
	UserID    string `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string { return "categories" }
