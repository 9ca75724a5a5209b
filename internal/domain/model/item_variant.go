package model

import "time"

// 商品のサイズ違い（在庫・価格を持つ）
type ItemVariant struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"variant_id"`
	ItemID             int64     `gorm:"not null;uniqueIndex:idx_item_variant_item_size" json:"item_id"`
	Size               int64     `gorm:"not null;uniqueIndex:idx_item_variant_item_size" json:"size"`
	Stock              int64     `gorm:"not null;default:0" json:"stock"`
	Price              float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	OriginalPrice      float64   `gorm:"type:numeric(10,2);not null" json:"original_price"`
	DiscountAmount     float64   `gorm:"type:numeric(10,2);not null;default:0" json:"discount_amount"`
	DiscountPercentage float64   `gorm:"type:numeric(5,2);not null;default:0" json:"discount_percentage"`
	Created            time.Time `gorm:"column:created;not null;autoCreateTime" json:"created"`
	Timestamp          time.Time `gorm:"column:timestamp;not null;autoUpdateTime" json:"timestamp"`

	Item Item `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ItemVariant) TableName() string { return "item_variant" }
