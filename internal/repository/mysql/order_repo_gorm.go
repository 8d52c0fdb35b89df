package mysql

import (
	"errors"
	"log"

	"tableside-service/internal/domain"
	"tableside-service/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// Save persists the order together with its line items in a single
// transaction. Nothing is written if any part of the insert fails.
func (r *orderRepo) Save(order *domain.Order) error {
	result := r.db.Create(order)
	if result.Error != nil {
		log.Printf("order save error: %v", result.Error)
		return result.Error
	}
	if order.ID == 0 {
		return errors.New("failed to assign order ID")
	}
	return nil
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.Preload("Items").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("order FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindAll() ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Preload("Items").Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("order FindAll error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByStatus(status domain.OrderStatus) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Preload("Items").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("order FindByStatus error: %v", err)
		return nil, err
	}
	return out, nil
}

// FindActiveByTable returns the table's orders that still count toward
// occupancy, newest first. Delivered and canceled orders are excluded so
// customers only ever see their current orders.
func (r *orderRepo) FindActiveByTable(tableID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Preload("Items").
		Where("table_id = ? AND status NOT IN ?", tableID, []domain.OrderStatus{domain.StatusDelivered, domain.StatusCanceled}).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("order FindActiveByTable error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) CountActiveByTable(tableID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Order{}).
		Where("table_id = ? AND status NOT IN ?", tableID, []domain.OrderStatus{domain.StatusDelivered, domain.StatusCanceled}).
		Count(&count).Error
	if err != nil {
		log.Printf("order CountActiveByTable error: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *orderRepo) UpdateStatus(id uint64, status domain.OrderStatus) error {
	// RowsAffected is deliberately not checked: re-applying the current
	// status is a no-op update and must not look like a missing row.
	err := r.db.Model(&domain.Order{}).Where("id = ?", id).Update("status", status).Error
	if err != nil {
		log.Printf("order UpdateStatus error: %v", err)
	}
	return err
}
