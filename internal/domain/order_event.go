package domain

import "time"

type OrderCreatedEvent struct {
	OrderID     uint64    `json:"orderId"`
	TableID     uint64    `json:"tableId"`
	TableNumber int       `json:"tableNumber"`
	Total       float64   `json:"total"`
	CreatedAt   time.Time `json:"createdAt"`
}

type OrderStatusChangedEvent struct {
	OrderID     uint64      `json:"orderId"`
	TableID     uint64      `json:"tableId"`
	TableNumber int         `json:"tableNumber"`
	Status      OrderStatus `json:"status"`
	ChangedAt   time.Time   `json:"changedAt"`
}
