package model

import "time"

// 注文ごとの住所（請求先・配送先で同じ形）
type OrderAddress struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID           int64     `gorm:"not null;uniqueIndex" json:"order_id"`
	Salutation        string    `gorm:"type:varchar(20);not null;default:''" json:"salutation"`
	Name              string    `gorm:"type:varchar(255);not null" json:"name"`
	Address           string    `gorm:"type:varchar(255);not null" json:"address"`
	AdditionalAddress string    `gorm:"type:varchar(255);not null;default:''" json:"additional_address"`
	Postcode          string    `gorm:"type:varchar(20);not null" json:"postcode"`
	City              string    `gorm:"type:varchar(255);not null" json:"city"`
	PhoneNumber       string    `gorm:"type:varchar(30);not null;default:''" json:"phone_number"`
	Created           time.Time `gorm:"column:created;not null;autoCreateTime" json:"created"`
	Timestamp         time.Time `gorm:"column:timestamp;not null;autoUpdateTime" json:"timestamp"`
}

type OrderInvoiceAddress struct {
	OrderAddress `gorm:"embedded"`

	Order Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}

func (OrderInvoiceAddress) TableName() string { return "order_invoice_address" }

type OrderShippingAddress struct {
	OrderAddress `gorm:"embedded"`

	Order Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}

func (OrderShippingAddress) TableName() string { return "order_shipping_address" }
