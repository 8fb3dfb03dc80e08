package entity

import (
	"gorm.io/gorm"
)

const OrderStatusPending = "pending"

type Order struct {
	gorm.Model
	CustomerName string  `gorm:"size:100;not null" json:"customerName"`
	Phone        string  `gorm:"column:phone_number;size:20;not null;index" json:"phoneNumber"`
	Email        *string `gorm:"size:100" json:"email,omitempty"`
	Status       string  `gorm:"size:20;not null;default:pending" json:"status"`
	TotalAmount  int64   `gorm:"not null" json:"totalAmount"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
