package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCanceled  OrderStatus = "canceled"
)

// Valid reports whether s is one of the enumerated order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

// Terminal reports whether an order in status s is finished. Terminal
// orders no longer count toward table occupancy.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCanceled
}

// CanTransitionTo reports whether the forward kitchen pipeline allows
// moving from s to target: pending → confirmed → preparing → ready →
// delivered, with cancel allowed from any non-terminal state. Checked
// only when strict transitions are enabled on the order service.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if target == StatusCanceled {
		return true
	}
	next := map[OrderStatus]OrderStatus{
		StatusPending:   StatusConfirmed,
		StatusConfirmed: StatusPreparing,
		StatusPreparing: StatusReady,
		StatusReady:     StatusDelivered,
	}
	return next[s] == target
}

type Order struct {
	ID          uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	TableID     uint64      `json:"tableId" gorm:"not null;index"`
	TableNumber int         `json:"tableNumber" gorm:"not null"`
	Items       []OrderItem `json:"items"`
	Status      OrderStatus `json:"status" gorm:"type:enum('pending','confirmed','preparing','ready','delivered','canceled');default:'pending';index"`
	Total       float64     `json:"total" gorm:"not null"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"createdAt" gorm:"autoCreateTime"`
}

// OrderItem is the priced snapshot of one order line. Name and Price are
// copied from the menu item at creation time and never follow later menu
// edits.
type OrderItem struct {
	ID                  uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID             uint64  `json:"-" gorm:"not null;index"`
	MenuItemID          uint64  `json:"menuItemId" gorm:"not null"`
	Name                string  `json:"name" gorm:"not null"`
	Price               float64 `json:"price" gorm:"not null"`
	Quantity            int     `json:"quantity" gorm:"not null"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
}
