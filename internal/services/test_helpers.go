package services

import (
	"time"

	"tableside-service/internal/domain"
)

func CreateMockTable(id uint64, number, seats int, status domain.TableStatus) *domain.Table {
	return &domain.Table{
		ID:        id,
		Number:    number,
		Seats:     seats,
		Status:    status,
		CreatedAt: time.Now(),
	}
}

func CreateMockMenuItem(id uint64, name string, price float64, available bool) *domain.MenuItem {
	return &domain.MenuItem{
		ID:         id,
		Name:       name,
		Price:      price,
		CategoryID: 1,
		Available:  available,
		CreatedAt:  time.Now(),
	}
}

func CreateMockOrder(id, tableID uint64, tableNumber int, status domain.OrderStatus, total float64) *domain.Order {
	return &domain.Order{
		ID:          id,
		TableID:     tableID,
		TableNumber: tableNumber,
		Status:      status,
		Total:       total,
		CreatedAt:   time.Now(),
	}
}

const (
	TestTableID     = uint64(3)
	TestTableNumber = 3
	TestOrderID     = uint64(1)
)
