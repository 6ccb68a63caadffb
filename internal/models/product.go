package models

import "time"

type Product struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Price          float64   `json:"price" db:"price"`
	Stock          int       `json:"stock" db:"stock"`
	OrderItemCount int64     `json:"orderItemCount" db:"order_item_count"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
