package storage

import (
	"github.com/renato0307/flowpomo/internal/domain"
)

// sessionModelToDomain converts a SessionModel (GORM) to domain.SessionRecord
func sessionModelToDomain(m SessionModel) domain.SessionRecord {
	return domain.SessionRecord{
		Category:  m.Category,
		Duration:  m.Duration,
		ID:        m.ID,
		Timestamp: m.Timestamp,
		UserID:    m.UserID,
	}
}

// domainToSessionModel converts a domain.SessionRecord to SessionModel (GORM)
func domainToSessionModel(r domain.SessionRecord) SessionModel {
	category := r.Category
	if category == "" {
		category = domain.UncategorizedName
	}
	return SessionModel{
		Category:  category,
		Duration:  r.Duration,
		ID:        r.ID,
		Timestamp: r.Timestamp,
		UserID:    r.UserID,
	}
}

// categoryModelToDomain converts a CategoryModel (GORM) to domain.Category
func categoryModelToDomain(m CategoryModel) domain.Category {
	return domain.Category{
		Color: m.Color,
		Name:  m.Name,
	}
}

// domainToCategoryModel converts a domain.Category at position to CategoryModel (GORM)
func domainToCategoryModel(userID string, position int, c domain.Category) CategoryModel {
	return CategoryModel{
		Color:    c.Color,
		Name:     c.Name,
		Position: position,
		UserID:   userID,
	}
}
