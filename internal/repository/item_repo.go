package repository

import (
	"context"
	"database/sql"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type sqlItemRepository struct {
	db      *sql.DB
	dialect Dialect
	log     *logrus.Logger
}

func NewSQLItemRepository(db *sql.DB, dialect Dialect, logger *logrus.Logger) domain.ItemRepository {
	return &sqlItemRepository{
		db:      db,
		dialect: dialect,
		log:     logger,
	}
}

// ListItemsByCategoryName resolves the category inside the query, so an
// unknown name yields an empty slice rather than an error.
func (r *sqlItemRepository) ListItemsByCategoryName(ctx context.Context, categoryName string) ([]domain.Item, error) {
	query := r.dialect.Rebind(`
        SELECT id, category_id, description, price
        FROM items
        WHERE category_id = (SELECT id FROM categories WHERE name = ?)
        ORDER BY id ASC`)

	rows, err := r.db.QueryContext(ctx, query, categoryName)
	if err != nil {
		r.log.Errorf("Failed to list items for category '%s': %v", categoryName, err)
		return nil, fmt.Errorf("could not list items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.log.Errorf("Failed to scan item row: %v", err)
			return nil, fmt.Errorf("could not scan item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during items list iteration: %v", err)
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	r.log.Debugf("Retrieved %d items for category '%s'", len(items), categoryName)
	return items, nil
}

func (r *sqlItemRepository) CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	query := r.dialect.Rebind(`
        INSERT INTO items (category_id, description, price)
        VALUES (?, ?, ?)
        RETURNING id`)

	err := r.db.QueryRowContext(ctx, query, item.CategoryID, nullString(item.Description), nullFloat(item.Price)).Scan(&item.ID)
	if err != nil {
		r.log.Errorf("Failed to create item in category %d: %v", item.CategoryID, err)
		return nil, fmt.Errorf("could not create item: %w", err)
	}

	r.log.Infof("Item created successfully with ID: %d, CategoryID: %d", item.ID, item.CategoryID)
	return item, nil
}

// UpdateItem overwrites description and price. It returns domain.ErrNotAffected
// when no row has the given id.
func (r *sqlItemRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	query := r.dialect.Rebind(`UPDATE items SET description = ?, price = ? WHERE id = ?`)
	result, err := r.db.ExecContext(ctx, query, nullString(item.Description), nullFloat(item.Price), item.ID)
	if err != nil {
		r.log.Errorf("Failed to update item ID %d: %v", item.ID, err)
		return fmt.Errorf("could not update item: %w", err)
	}
	return r.checkAffected(result, "update", item.ID)
}

func (r *sqlItemRepository) DeleteItem(ctx context.Context, id int64) error {
	query := r.dialect.Rebind(`DELETE FROM items WHERE id = ?`)
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.log.Errorf("Failed to delete item ID %d: %v", id, err)
		return fmt.Errorf("could not delete item: %w", err)
	}
	return r.checkAffected(result, "delete", id)
}

func (r *sqlItemRepository) checkAffected(result sql.Result, op string, id int64) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after %s of item ID %d: %v", op, id, err)
		return fmt.Errorf("could not confirm item %s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("item %s for id %d: %w", op, id, domain.ErrNotAffected)
	}
	r.log.Infof("Item %s succeeded for ID: %d", op, id)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (domain.Item, error) {
	var (
		item        domain.Item
		categoryID  sql.NullInt64
		description sql.NullString
		price       sql.NullFloat64
	)
	if err := row.Scan(&item.ID, &categoryID, &description, &price); err != nil {
		return domain.Item{}, err
	}
	item.CategoryID = categoryID.Int64
	if description.Valid {
		item.Description = &description.String
	}
	if price.Valid {
		item.Price = &price.Float64
	}
	return item, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
