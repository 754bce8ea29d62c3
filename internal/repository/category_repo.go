package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type sqlCategoryRepository struct {
	db      *sql.DB
	dialect Dialect
	log     *logrus.Logger
}

func NewSQLCategoryRepository(db *sql.DB, dialect Dialect, logger *logrus.Logger) domain.CategoryRepository {
	return &sqlCategoryRepository{
		db:      db,
		dialect: dialect,
		log:     logger,
	}
}

func (r *sqlCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			r.log.Errorf("Failed to scan category row: %v", err)
			return nil, fmt.Errorf("could not scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during categories list iteration: %v", err)
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	r.log.Debugf("Retrieved %d categories", len(categories))
	return categories, nil
}

func (r *sqlCategoryRepository) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	query := r.dialect.Rebind(`SELECT id, name FROM categories WHERE name = ?`)
	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with name '%s' not found", name)
			return nil, fmt.Errorf("category '%s': %w", name, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get category by name '%s': %v", name, err)
		return nil, fmt.Errorf("could not get category by name: %w", err)
	}
	return category, nil
}

// SeedCategories inserts each name unless a category with that name exists.
func (r *sqlCategoryRepository) SeedCategories(ctx context.Context, names []string) error {
	query := r.dialect.Rebind(`INSERT INTO categories (name) VALUES (?) ON CONFLICT (name) DO NOTHING`)
	for _, name := range names {
		if _, err := r.db.ExecContext(ctx, query, name); err != nil {
			r.log.Errorf("Failed to seed category '%s': %v", name, err)
			return fmt.Errorf("could not seed category '%s': %w", name, err)
		}
	}
	r.log.Infof("Seeded %d default categories", len(names))
	return nil
}
