package model

// All は AutoMigrate する順（参照される側が先）
func All() []any {
	return []any{
		&ItemBrand{},
		&ItemType{},
		&ItemCategory{},
		&Item{},
		&ItemVariant{},
		&PaymentMethod{},
		&Order{},
		&OrderItem{},
		&OrderInvoiceAddress{},
		&OrderShippingAddress{},
		&User{},
	}
}
