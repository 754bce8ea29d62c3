package domain

import "context"

type ItemRepository interface {
	ListItemsByCategoryName(ctx context.Context, categoryName string) ([]Item, error)
	CreateItem(ctx context.Context, item *Item) (*Item, error)
	UpdateItem(ctx context.Context, item *Item) error
	DeleteItem(ctx context.Context, id int64) error
}
