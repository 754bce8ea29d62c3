package usecase

import (
	"context"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ItemUseCase interface {
	ListItemsByCategory(ctx context.Context, categoryName string) ([]domain.Item, error)
	AddItem(ctx context.Context, categoryName string, description *string, price *float64) (*domain.Item, error)
	UpdateItem(ctx context.Context, id int64, description *string, price *float64) error
	DeleteItem(ctx context.Context, id int64) error
}

type itemUseCase struct {
	itemRepo     domain.ItemRepository
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewItemUseCase(iRepo domain.ItemRepository, cRepo domain.CategoryRepository, logger *logrus.Logger) ItemUseCase {
	return &itemUseCase{
		itemRepo:     iRepo,
		categoryRepo: cRepo,
		log:          logger,
	}
}

func (uc *itemUseCase) ListItemsByCategory(ctx context.Context, categoryName string) ([]domain.Item, error) {
	items, err := uc.itemRepo.ListItemsByCategoryName(ctx, categoryName)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list items for category '%s': %v", categoryName, err)
		return nil, fmt.Errorf("could not retrieve items for category '%s': %w", categoryName, err)
	}
	uc.log.Infof("Use Case: Retrieved %d items for category '%s'", len(items), categoryName)
	return items, nil
}

// AddItem resolves the category by name and then inserts the item. The two
// statements do not share a transaction.
func (uc *itemUseCase) AddItem(ctx context.Context, categoryName string, description *string, price *float64) (*domain.Item, error) {
	category, err := uc.categoryRepo.GetCategoryByName(ctx, categoryName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Warnf("Use Case: Category '%s' not found during item creation", categoryName)
		}
		return nil, err
	}

	item := &domain.Item{
		CategoryID:  category.ID,
		Description: description,
		Price:       price,
	}

	uc.log.Infof("Use Case: Attempting to create item in category '%s'", category.Name)
	created, err := uc.itemRepo.CreateItem(ctx, item)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create item in category '%s': %v", category.Name, err)
		return nil, err
	}
	return created, nil
}

// UpdateItem reports success even when id matches no row; the miss is only logged.
func (uc *itemUseCase) UpdateItem(ctx context.Context, id int64, description *string, price *float64) error {
	err := uc.itemRepo.UpdateItem(ctx, &domain.Item{ID: id, Description: description, Price: price})
	if errors.Is(err, domain.ErrNotAffected) {
		uc.log.Warnf("Use Case: Update matched no item with ID %d", id)
		return nil
	}
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update item ID %d: %v", id, err)
		return err
	}
	return nil
}

// DeleteItem reports success even when id matches no row; the miss is only logged.
func (uc *itemUseCase) DeleteItem(ctx context.Context, id int64) error {
	err := uc.itemRepo.DeleteItem(ctx, id)
	if errors.Is(err, domain.ErrNotAffected) {
		uc.log.Warnf("Use Case: Delete matched no item with ID %d", id)
		return nil
	}
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete item ID %d: %v", id, err)
		return err
	}
	return nil
}
