package repository

import (
	"tableside-service/internal/domain"
)

type OrderRepository interface {
	Save(order *domain.Order) error
	FindByID(id uint64) (*domain.Order, error)
	FindAll() ([]domain.Order, error)
	FindByStatus(status domain.OrderStatus) ([]domain.Order, error)
	FindActiveByTable(tableID uint64) ([]domain.Order, error)
	CountActiveByTable(tableID uint64) (int64, error)
	UpdateStatus(id uint64, status domain.OrderStatus) error
}
