package domain

import "context"

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryByName(ctx context.Context, name string) (*Category, error)
	SeedCategories(ctx context.Context, names []string) error
}

// DefaultCategories are inserted on every startup; existing names are left untouched.
var DefaultCategories = []string{"Steel", "Sand", "Tapi", "Cement"}
