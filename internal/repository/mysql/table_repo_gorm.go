package mysql

import (
	"errors"
	"log"

	"tableside-service/internal/domain"
	"tableside-service/internal/repository"

	"gorm.io/gorm"
)

type tableRepo struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) repository.TableRepository {
	return &tableRepo{db: db}
}

func (r *tableRepo) Save(table *domain.Table) error {
	if err := r.db.Create(table).Error; err != nil {
		log.Printf("table save error: %v", err)
		return err
	}
	return nil
}

func (r *tableRepo) FindByID(id uint64) (*domain.Table, error) {
	var t domain.Table
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("table FindByID error: %v", err)
		return nil, err
	}
	return &t, nil
}

func (r *tableRepo) FindByNumber(number int) (*domain.Table, error) {
	var t domain.Table
	if err := r.db.Where("number = ?", number).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("table FindByNumber error: %v", err)
		return nil, err
	}
	return &t, nil
}

func (r *tableRepo) FindAll() ([]domain.Table, error) {
	var out []domain.Table
	if err := r.db.Order("number ASC").Find(&out).Error; err != nil {
		log.Printf("table FindAll error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *tableRepo) Update(table *domain.Table) error {
	if err := r.db.Save(table).Error; err != nil {
		log.Printf("table update error: %v", err)
		return err
	}
	return nil
}

// UpdateStatus writes only the derived occupancy column. The occupancy
// synchronizer is the sole caller once a table exists.
func (r *tableRepo) UpdateStatus(id uint64, status domain.TableStatus) error {
	// No RowsAffected check: the synchronizer is idempotent and often
	// rewrites the status the table already has.
	err := r.db.Model(&domain.Table{}).Where("id = ?", id).Update("status", status).Error
	if err != nil {
		log.Printf("table UpdateStatus error: %v", err)
	}
	return err
}

func (r *tableRepo) Delete(id uint64) error {
	result := r.db.Delete(&domain.Table{}, id)
	if result.Error != nil {
		log.Printf("table delete error: %v", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
