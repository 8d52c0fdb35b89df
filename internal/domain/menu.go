package domain

import "time"

type Category struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

type MenuItem struct {
	ID          uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	ImageURL    string    `json:"imageUrl"`
	CategoryID  uint64    `json:"categoryId" gorm:"not null;index"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Available   bool      `json:"available" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
