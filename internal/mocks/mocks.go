package mocks

import (
	"context"

	"tableside-service/internal/domain"
	"tableside-service/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id uint64) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll() ([]domain.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(status domain.OrderStatus) ([]domain.Order, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindActiveByTable(tableID uint64) ([]domain.Order, error) {
	args := m.Called(tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) CountActiveByTable(tableID uint64) (int64, error) {
	args := m.Called(tableID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id uint64, status domain.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) SaveItem(item *domain.MenuItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockMenuRepository) FindItemByID(id uint64) (*domain.MenuItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) FindItems(filter repository.MenuItemFilter) ([]domain.MenuItem, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) UpdateItem(item *domain.MenuItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockMenuRepository) DeleteItem(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMenuRepository) SaveCategory(category *domain.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockMenuRepository) FindCategoryByID(id uint64) (*domain.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockMenuRepository) FindCategoryByName(name string) (*domain.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockMenuRepository) FindCategories() ([]domain.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockMenuRepository) DeleteCategory(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMenuRepository) CountItemsByCategory(categoryID uint64) (int64, error) {
	args := m.Called(categoryID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) Save(table *domain.Table) error {
	args := m.Called(table)
	return args.Error(0)
}

func (m *MockTableRepository) FindByID(id uint64) (*domain.Table, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockTableRepository) FindByNumber(number int) (*domain.Table, error) {
	args := m.Called(number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockTableRepository) FindAll() ([]domain.Table, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Table), args.Error(1)
}

func (m *MockTableRepository) Update(table *domain.Table) error {
	args := m.Called(table)
	return args.Error(0)
}

func (m *MockTableRepository) UpdateStatus(id uint64, status domain.TableStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockTableRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

type MockQRClient struct {
	mock.Mock
}

func (m *MockQRClient) GenerateTableCode(ctx context.Context, tableNumber int) (string, error) {
	args := m.Called(ctx, tableNumber)
	return args.String(0), args.Error(1)
}
