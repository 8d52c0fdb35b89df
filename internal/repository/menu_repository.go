package repository

import (
	"tableside-service/internal/domain"
)

// MenuItemFilter narrows menu listings server-side so clients never have
// to filter availability themselves.
type MenuItemFilter struct {
	AvailableOnly bool
	CategoryID    uint64
}

type MenuRepository interface {
	SaveItem(item *domain.MenuItem) error
	FindItemByID(id uint64) (*domain.MenuItem, error)
	FindItems(filter MenuItemFilter) ([]domain.MenuItem, error)
	UpdateItem(item *domain.MenuItem) error
	DeleteItem(id uint64) error

	SaveCategory(category *domain.Category) error
	FindCategoryByID(id uint64) (*domain.Category, error)
	FindCategoryByName(name string) (*domain.Category, error)
	FindCategories() ([]domain.Category, error)
	DeleteCategory(id uint64) error
	CountItemsByCategory(categoryID uint64) (int64, error)
}
