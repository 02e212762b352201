package models

import (
	"time"

	"mobile-order/types"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"

	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

type Order struct {
	ID            types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Reference     string            `json:"reference"`
	Status        string            `json:"status" gorm:"default:'pending'"`
	PaymentStatus string            `json:"paymentStatus" gorm:"default:'unpaid'"`
	Total         int               `json:"total"`
	TableNumber   int               `json:"tableNumber" gorm:"index"`
	Items         []OrderItem       `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time         `json:"timestamp"`
	UpdatedAt     time.Time         `json:"-"`
}

type OrderItem struct {
	ID         uint              `json:"-" gorm:"primaryKey"`
	OrderID    types.SnowflakeID `json:"-" gorm:"index"`
	MenuItemID uint              `json:"menuItemId"`
	Name       string            `json:"name"`
	Price      int               `json:"price"`
	Quantity   int               `json:"quantity"`
	Image      string            `json:"image"`
}
