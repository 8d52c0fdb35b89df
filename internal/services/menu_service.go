package services

import (
	"context"
	"errors"
	"log"

	"tableside-service/internal/domain"
	"tableside-service/internal/repository"

	"github.com/go-redis/redis/v8"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryInUse    = errors.New("cannot delete category with associated menu items")
)

// MenuCacheKey holds the cached public menu listing (available items
// only). Every menu write invalidates it.
const MenuCacheKey = "menu:items:available"

type MenuService struct {
	repo        repository.MenuRepository
	redisClient *redis.Client
}

func NewMenuService(repo repository.MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *MenuService) ListCategories() ([]domain.Category, error) {
	return s.repo.FindCategories()
}

func (s *MenuService) CreateCategory(name string) (*domain.Category, error) {
	existing, err := s.repo.FindCategoryByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	category := &domain.Category{Name: name}
	if err := s.repo.SaveCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory refuses to remove a category while menu items still
// reference it.
func (s *MenuService) DeleteCategory(id uint64) error {
	category, err := s.repo.FindCategoryByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	count, err := s.repo.CountItemsByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.repo.DeleteCategory(id)
}

func (s *MenuService) ListItems(filter repository.MenuItemFilter) ([]domain.MenuItem, error) {
	return s.repo.FindItems(filter)
}

func (s *MenuService) GetItem(id uint64) (*domain.MenuItem, error) {
	item, err := s.repo.FindItemByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	return item, nil
}

func (s *MenuService) CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	category, err := s.repo.FindCategoryByID(item.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if err := s.repo.SaveItem(item); err != nil {
		return nil, err
	}

	s.invalidateMenuCache(ctx)
	return item, nil
}

// UpdateItem edits a menu item in place. Orders created before the edit
// keep their snapshotted name and price.
func (s *MenuService) UpdateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	existing, err := s.repo.FindItemByID(item.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrMenuItemNotFound
	}

	if item.CategoryID != existing.CategoryID {
		category, err := s.repo.FindCategoryByID(item.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}

	if err := s.repo.UpdateItem(item); err != nil {
		return nil, err
	}

	s.invalidateMenuCache(ctx)
	return item, nil
}

func (s *MenuService) DeleteItem(ctx context.Context, id uint64) error {
	item, err := s.repo.FindItemByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrMenuItemNotFound
	}

	if err := s.repo.DeleteItem(id); err != nil {
		return err
	}

	s.invalidateMenuCache(ctx)
	return nil
}

func (s *MenuService) invalidateMenuCache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, MenuCacheKey).Err(); err != nil {
		log.Printf("failed to invalidate menu cache: %v", err)
	}
}
