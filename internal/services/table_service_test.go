package services

import (
	"context"
	"errors"
	"testing"

	"tableside-service/internal/domain"
	"tableside-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTableService_CreateTable(t *testing.T) {
	t.Run("creates with a QR code", func(t *testing.T) {
		repo := new(mocks.MockTableRepository)
		qr := new(mocks.MockQRClient)
		repo.On("FindByNumber", 3).Return(nil, nil)
		qr.On("GenerateTableCode", mock.Anything, 3).Return("https://qr.example/t3.png", nil)
		repo.On("Save", mock.AnythingOfType("*domain.Table")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Table).ID = 1
		})

		service := NewTableService(repo, qr)
		table, err := service.CreateTable(context.Background(), 3, 4)

		assert.NoError(t, err)
		assert.Equal(t, 3, table.Number)
		assert.Equal(t, domain.TableAvailable, table.Status)
		assert.Equal(t, "https://qr.example/t3.png", table.QRCode)
		repo.AssertExpectations(t)
	})

	t.Run("QR failure does not block creation", func(t *testing.T) {
		repo := new(mocks.MockTableRepository)
		qr := new(mocks.MockQRClient)
		repo.On("FindByNumber", 3).Return(nil, nil)
		qr.On("GenerateTableCode", mock.Anything, 3).Return("", errors.New("encoder down"))
		repo.On("Save", mock.AnythingOfType("*domain.Table")).Return(nil)

		service := NewTableService(repo, qr)
		table, err := service.CreateTable(context.Background(), 3, 4)

		assert.NoError(t, err)
		assert.Empty(t, table.QRCode)
	})

	t.Run("rejects a duplicate number", func(t *testing.T) {
		repo := new(mocks.MockTableRepository)
		qr := new(mocks.MockQRClient)
		repo.On("FindByNumber", 3).Return(CreateMockTable(1, 3, 4, domain.TableAvailable), nil)

		service := NewTableService(repo, qr)
		_, err := service.CreateTable(context.Background(), 3, 4)

		assert.ErrorIs(t, err, ErrTableNumberTaken)
		repo.AssertNotCalled(t, "Save", mock.Anything)
	})

	t.Run("rejects a non-positive number", func(t *testing.T) {
		service := NewTableService(new(mocks.MockTableRepository), new(mocks.MockQRClient))
		_, err := service.CreateTable(context.Background(), 0, 4)
		assert.ErrorIs(t, err, ErrInvalidTableNumber)
	})
}

func TestTableService_UpdateTable(t *testing.T) {
	t.Run("renumbering re-checks uniqueness and refreshes the code", func(t *testing.T) {
		repo := new(mocks.MockTableRepository)
		qr := new(mocks.MockQRClient)
		repo.On("FindByID", uint64(1)).Return(CreateMockTable(1, 3, 4, domain.TableOccupied), nil)
		repo.On("FindByNumber", 5).Return(nil, nil)
		qr.On("GenerateTableCode", mock.Anything, 5).Return("https://qr.example/t5.png", nil)
		repo.On("Update", mock.AnythingOfType("*domain.Table")).Return(nil)

		service := NewTableService(repo, qr)
		table, err := service.UpdateTable(context.Background(), 1, 5, 6)

		assert.NoError(t, err)
		assert.Equal(t, 5, table.Number)
		assert.Equal(t, 6, table.Seats)
		// Occupancy is derived; an admin edit must not reset it.
		assert.Equal(t, domain.TableOccupied, table.Status)
	})

	t.Run("rejects a taken number", func(t *testing.T) {
		repo := new(mocks.MockTableRepository)
		qr := new(mocks.MockQRClient)
		repo.On("FindByID", uint64(1)).Return(CreateMockTable(1, 3, 4, domain.TableAvailable), nil)
		repo.On("FindByNumber", 5).Return(CreateMockTable(2, 5, 2, domain.TableAvailable), nil)

		service := NewTableService(repo, qr)
		_, err := service.UpdateTable(context.Background(), 1, 5, 4)

		assert.ErrorIs(t, err, ErrTableNumberTaken)
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestTableService_RegenerateQRCode(t *testing.T) {
	t.Run("stores the fresh code", func(t *testing.T) {
		repo := new(mocks.MockTableRepository)
		qr := new(mocks.MockQRClient)
		repo.On("FindByID", uint64(1)).Return(CreateMockTable(1, 3, 4, domain.TableAvailable), nil)
		qr.On("GenerateTableCode", mock.Anything, 3).Return("https://qr.example/t3-v2.png", nil)
		repo.On("Update", mock.AnythingOfType("*domain.Table")).Return(nil)

		service := NewTableService(repo, qr)
		table, err := service.RegenerateQRCode(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "https://qr.example/t3-v2.png", table.QRCode)
	})

	t.Run("surfaces encoder failure", func(t *testing.T) {
		repo := new(mocks.MockTableRepository)
		qr := new(mocks.MockQRClient)
		repo.On("FindByID", uint64(1)).Return(CreateMockTable(1, 3, 4, domain.TableAvailable), nil)
		qr.On("GenerateTableCode", mock.Anything, 3).Return("", errors.New("encoder down"))

		service := NewTableService(repo, qr)
		_, err := service.RegenerateQRCode(context.Background(), 1)

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestTableService_DeleteTable(t *testing.T) {
	repo := new(mocks.MockTableRepository)
	qr := new(mocks.MockQRClient)
	repo.On("FindByID", uint64(9)).Return(nil, nil)

	service := NewTableService(repo, qr)
	err := service.DeleteTable(9)

	assert.ErrorIs(t, err, ErrTableNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}
