package model

type PaymentMethod struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"type:text" json:"image"`
}

func (PaymentMethod) TableName() string { return "payment_method" }
