package model

import "time"

// 注文明細
// OrderItemID は商品ID（item.id）。価格は注文時点のスナップショット。
type OrderItem struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID            int64     `gorm:"not null;index" json:"order_id"`
	OrderItemID        int64     `gorm:"column:order_item_id;not null;index" json:"order_item_id"`
	Size               int64     `gorm:"not null" json:"size"`
	Quantity           int64     `gorm:"not null" json:"quantity"`
	Price              float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	OriginalPrice      float64   `gorm:"type:numeric(10,2);not null" json:"original_price"`
	DiscountAmount     float64   `gorm:"type:numeric(10,2);not null;default:0" json:"discount_amount"`
	DiscountPercentage float64   `gorm:"type:numeric(5,2);not null;default:0" json:"discount_percentage"`
	Created            time.Time `gorm:"column:created;not null;autoCreateTime" json:"created"`
	Timestamp          time.Time `gorm:"column:timestamp;not null;autoUpdateTime" json:"timestamp"`

	Order Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}

func (OrderItem) TableName() string { return "order_item" }
