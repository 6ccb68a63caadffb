package models

import "time"

// OrderStatusCompleted is the only status an order can currently reach:
// orders are created fully paid or not at all.
const OrderStatusCompleted = "COMPLETED"

type Order struct {
	ID          int64        `json:"id" db:"id"`
	UserID      int64        `json:"userId" db:"user_id"`
	Reference   string       `json:"reference" db:"reference"`
	OrderDate   time.Time    `json:"orderDate" db:"order_date"`
	Status      string       `json:"status" db:"status"`
	TotalAmount float64      `json:"totalAmount" db:"total_amount"`
	Items       []*OrderItem `json:"items,omitempty" db:"-"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`
}
