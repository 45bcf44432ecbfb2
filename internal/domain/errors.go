package domain

import "errors"

var (
	ErrCategoryExists      = errors.New("category already exists")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInstanceLocked      = errors.New("another timer is already running for this user")
	ErrInvalidCategoryName = errors.New("invalid category name")
	ErrInvalidColor        = errors.New("invalid color, expected #RGB or #RRGGBB")
	ErrInvalidMode         = errors.New("invalid timer mode")
	ErrNoIdentity          = errors.New("no user identity")
)
