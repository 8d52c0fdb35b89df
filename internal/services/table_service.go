package services

import (
	"context"
	"errors"
	"log"

	"tableside-service/internal/domain"
	"tableside-service/internal/infra"
	"tableside-service/internal/repository"
)

var (
	ErrTableNumberTaken   = errors.New("table number already exists")
	ErrInvalidTableNumber = errors.New("table number must be positive")
)

type TableService struct {
	repo repository.TableRepository
	qr   infra.QRClientInterface
}

func NewTableService(repo repository.TableRepository, qr infra.QRClientInterface) *TableService {
	return &TableService{repo: repo, qr: qr}
}

func (s *TableService) ListTables() ([]domain.Table, error) {
	return s.repo.FindAll()
}

func (s *TableService) GetTable(id uint64) (*domain.Table, error) {
	table, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrTableNotFound
	}
	return table, nil
}

// CreateTable registers a new table and requests its QR code from the
// encoding service. A QR failure is logged but does not block the table:
// the code can be regenerated later.
func (s *TableService) CreateTable(ctx context.Context, number, seats int) (*domain.Table, error) {
	if number < 1 {
		return nil, ErrInvalidTableNumber
	}

	existing, err := s.repo.FindByNumber(number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTableNumberTaken
	}

	table := &domain.Table{
		Number: number,
		Seats:  seats,
		Status: domain.TableAvailable,
	}

	code, err := s.qr.GenerateTableCode(ctx, number)
	if err != nil {
		log.Printf("qr generation failed for table %d: %v", number, err)
	} else {
		table.QRCode = code
	}

	if err := s.repo.Save(table); err != nil {
		return nil, err
	}
	return table, nil
}

// UpdateTable changes a table's number or seat count. Occupancy status is
// not editable here; it is derived from the table's active orders and
// written only by the order service.
func (s *TableService) UpdateTable(ctx context.Context, id uint64, number, seats int) (*domain.Table, error) {
	if number < 1 {
		return nil, ErrInvalidTableNumber
	}

	table, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrTableNotFound
	}

	if number != table.Number {
		existing, err := s.repo.FindByNumber(number)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrTableNumberTaken
		}

		code, err := s.qr.GenerateTableCode(ctx, number)
		if err != nil {
			log.Printf("qr regeneration failed for table %d: %v", number, err)
		} else {
			table.QRCode = code
		}
	}

	table.Number = number
	table.Seats = seats

	if err := s.repo.Update(table); err != nil {
		return nil, err
	}
	return table, nil
}

// RegenerateQRCode fetches a fresh code for an existing table. Unlike
// creation, a failure here is surfaced: regeneration is the whole point
// of the call.
func (s *TableService) RegenerateQRCode(ctx context.Context, id uint64) (*domain.Table, error) {
	table, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrTableNotFound
	}

	code, err := s.qr.GenerateTableCode(ctx, table.Number)
	if err != nil {
		return nil, err
	}

	table.QRCode = code
	if err := s.repo.Update(table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *TableService) DeleteTable(id uint64) error {
	table, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if table == nil {
		return ErrTableNotFound
	}
	return s.repo.Delete(id)
}
