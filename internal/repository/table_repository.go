package repository

import (
	"tableside-service/internal/domain"
)

type TableRepository interface {
	Save(table *domain.Table) error
	FindByID(id uint64) (*domain.Table, error)
	FindByNumber(number int) (*domain.Table, error)
	FindAll() ([]domain.Table, error)
	Update(table *domain.Table) error
	UpdateStatus(id uint64, status domain.TableStatus) error
	Delete(id uint64) error
}
