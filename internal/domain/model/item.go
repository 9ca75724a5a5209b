package model

import "time"

type ItemBrand struct {
	BrandID   int64  `gorm:"column:brand_id;primaryKey;autoIncrement" json:"brand_id"`
	BrandName string `gorm:"column:brand_name;type:varchar(255);not null;uniqueIndex" json:"brand_name"`
}

func (ItemBrand) TableName() string { return "item_brand" }

type ItemType struct {
	TypeID   int64  `gorm:"column:type_id;primaryKey;autoIncrement" json:"type_id"`
	TypeName string `gorm:"column:type_name;type:varchar(255);not null" json:"type_name"`
}

func (ItemType) TableName() string { return "item_type" }

type ItemCategory struct {
	CategoryID   int64  `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	CategoryName string `gorm:"column:category_name;type:varchar(255);not null" json:"category_name"`
}

func (ItemCategory) TableName() string { return "item_category" }

// 商品（サイズ違いは ItemVariant）
type Item struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BrandID     int64     `gorm:"not null;index" json:"brand_id"`
	TypeID      int64     `gorm:"not null;index" json:"type_id"`
	CategoryID  int64     `gorm:"not null;index" json:"category_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Image       string    `gorm:"type:text" json:"image"`
	Description string    `gorm:"type:text" json:"description"`
	Instruction string    `gorm:"type:text" json:"instruction"`
	Created     time.Time `gorm:"column:created;not null;autoCreateTime" json:"created"`
	Timestamp   time.Time `gorm:"column:timestamp;not null;autoUpdateTime" json:"timestamp"`

	//ブランドが商品から参照されている間は削除できない
	Brand    ItemBrand    `gorm:"foreignKey:BrandID;references:BrandID;constraint:OnDelete:RESTRICT" json:"-"`
	Type     ItemType     `gorm:"foreignKey:TypeID;references:TypeID;constraint:OnDelete:RESTRICT" json:"-"`
	Category ItemCategory `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Item) TableName() string { return "item" }
