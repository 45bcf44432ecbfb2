package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// UncategorizedName is recorded when no category is selected
const UncategorizedName = "Uncategorized"

// DefaultCategoryColor is used for sessions whose category is unknown
const DefaultCategoryColor = "#A0AEC0"

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Category is a user defined label for focus time
type Category struct {
	Color string
	Name  string
}

// Ref returns a reference to the category for attribution
func (c Category) Ref() CategoryRef {
	return CategoryRef{Color: c.Color, Name: c.Name}
}

// CategoryRef points at a category owned by the category store.
// Two refs are the same category when their names match.
type CategoryRef struct {
	Color string
	Name  string
}

// Is reports whether the ref points at the named category
func (r *CategoryRef) Is(name string) bool {
	return r != nil && r.Name == name
}

// Clone returns an independent copy, nil stays nil
func (r *CategoryRef) Clone() *CategoryRef {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// ValidateColor checks for a #RGB or #RRGGBB hex color
func ValidateColor(color string) error {
	if !hexColorPattern.MatchString(color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	return nil
}

// NormalizeCategoryName trims the name and rejects empty or reserved names
func NormalizeCategoryName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: name is empty", ErrInvalidCategoryName)
	}
	if strings.EqualFold(trimmed, UncategorizedName) {
		return "", fmt.Errorf("%w: %q is reserved", ErrInvalidCategoryName, trimmed)
	}
	return trimmed, nil
}

// FindCategory returns the category with the given name
func FindCategory(categories []Category, name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryPalette is offered when a user adds a category without a color
var CategoryPalette = []Category{
	{Name: "Blue", Color: "#4299E1"},
	{Name: "Green", Color: "#48BB78"},
	{Name: "Orange", Color: "#ED8936"},
	{Name: "Pink", Color: "#ED64A6"},
	{Name: "Purple", Color: "#9F7AEA"},
	{Name: "Red", Color: "#F56565"},
	{Name: "Teal", Color: "#38B2AC"},
	{Name: "Yellow", Color: "#ECC94B"},
}
