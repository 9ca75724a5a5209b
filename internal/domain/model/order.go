package model

import "time"

type OrderStatus int

const (
	//注文受付（作成直後）
	OrderStatusPlaced OrderStatus = 0
)

type Order struct {
	ID              int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email           string      `gorm:"type:varchar(255);not null;index" json:"email"`
	Total           float64     `gorm:"type:numeric(10,2);not null" json:"total"`
	Subtotal        float64     `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	ShippingCost    float64     `gorm:"type:numeric(10,2);not null;default:0" json:"shipping_cost"`
	PaymentMethodID int64       `gorm:"not null;index" json:"payment_method_id"`
	Status          OrderStatus `gorm:"not null;default:0" json:"status"`
	Created         time.Time   `gorm:"column:created;not null;autoCreateTime" json:"created"`
	Timestamp       time.Time   `gorm:"column:timestamp;not null;autoUpdateTime" json:"timestamp"`

	PaymentMethod PaymentMethod `gorm:"foreignKey:PaymentMethodID;constraint:OnDelete:RESTRICT" json:"-"`
}

// order は予約語なので gorm がクォートする
func (Order) TableName() string { return "order" }
