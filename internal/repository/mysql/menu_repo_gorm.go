package mysql

import (
	"errors"
	"log"

	"tableside-service/internal/domain"
	"tableside-service/internal/repository"

	"gorm.io/gorm"
)

type menuRepo struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) SaveItem(item *domain.MenuItem) error {
	if err := r.db.Create(item).Error; err != nil {
		log.Printf("menu item save error: %v", err)
		return err
	}
	return nil
}

func (r *menuRepo) FindItemByID(id uint64) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := r.db.Preload("Category").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("menu item FindItemByID error: %v", err)
		return nil, err
	}
	return &item, nil
}

func (r *menuRepo) FindItems(filter repository.MenuItemFilter) ([]domain.MenuItem, error) {
	q := r.db.Preload("Category")
	if filter.AvailableOnly {
		q = q.Where("available = ?", true)
	}
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	var out []domain.MenuItem
	if err := q.Find(&out).Error; err != nil {
		log.Printf("menu item FindItems error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *menuRepo) UpdateItem(item *domain.MenuItem) error {
	// Save with a full struct so flips back to available=false stick;
	// gorm's Updates skips zero-valued fields.
	if err := r.db.Save(item).Error; err != nil {
		log.Printf("menu item update error: %v", err)
		return err
	}
	return nil
}

func (r *menuRepo) DeleteItem(id uint64) error {
	result := r.db.Delete(&domain.MenuItem{}, id)
	if result.Error != nil {
		log.Printf("menu item delete error: %v", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *menuRepo) SaveCategory(category *domain.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		log.Printf("category save error: %v", err)
		return err
	}
	return nil
}

func (r *menuRepo) FindCategoryByID(id uint64) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("category FindCategoryByID error: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *menuRepo) FindCategoryByName(name string) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.Where("name = ?", name).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("category FindCategoryByName error: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *menuRepo) FindCategories() ([]domain.Category, error) {
	var out []domain.Category
	if err := r.db.Find(&out).Error; err != nil {
		log.Printf("category FindCategories error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *menuRepo) DeleteCategory(id uint64) error {
	result := r.db.Delete(&domain.Category{}, id)
	if result.Error != nil {
		log.Printf("category delete error: %v", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *menuRepo) CountItemsByCategory(categoryID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.MenuItem{}).Where("category_id = ?", categoryID).Count(&count).Error
	if err != nil {
		log.Printf("category CountItemsByCategory error: %v", err)
		return 0, err
	}
	return count, nil
}
