package domain

import "time"

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
)

// Table is a physical seating unit. Status is derived from the table's
// active orders: once the table exists, only the order service writes it.
type Table struct {
	ID        uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Number    int         `json:"number" gorm:"not null;uniqueIndex"`
	Seats     int         `json:"seats" gorm:"not null"`
	QRCode    string      `json:"qrCode"`
	Status    TableStatus `json:"status" gorm:"type:enum('available','occupied');default:'available'"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`
}
