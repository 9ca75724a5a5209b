package repository

import (
	"context"
	"time"

	"advse-backend/internal/domain/aggregate"
	"advse-backend/internal/domain/model"
)

type OrderListFilter struct {
	Email *string
}

// 注文一覧の1行（明細・住所なし）
type OrderSummary struct {
	ID                int64             `gorm:"column:id"`
	Email             string            `gorm:"column:email"`
	Total             float64           `gorm:"column:total"`
	Subtotal          float64           `gorm:"column:subtotal"`
	ShippingCost      float64           `gorm:"column:shipping_cost"`
	PaymentMethodID   int64             `gorm:"column:payment_method_id"`
	PaymentMethodName string            `gorm:"column:payment_method_name"`
	Status            model.OrderStatus `gorm:"column:status"`
	Created           time.Time         `gorm:"column:created"`
	Timestamp         time.Time         `gorm:"column:timestamp"`
}

type OrderRepository interface {
	List(ctx context.Context, f OrderListFilter) ([]OrderSummary, error)

	//注文×明細×請求先×配送先の平たい行。存在しなければ空
	DetailRows(ctx context.Context, orderID int64) ([]aggregate.Row, error)

	Exists(ctx context.Context, orderID int64) (bool, error)
	Create(ctx context.Context, order model.Order) (int64, error)
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	//同じ商品が複数サイズあるときは最後の明細
	FindByOrderAndItem(ctx context.Context, orderID int64, itemID int64) (model.OrderItem, error)
}

// 請求先・配送先住所
type OrderAddressRepository interface {
	CreateInvoice(ctx context.Context, address model.OrderAddress) error
	CreateShipping(ctx context.Context, address model.OrderAddress) error
	FindInvoice(ctx context.Context, orderID int64) (model.OrderAddress, error)
	FindShipping(ctx context.Context, orderID int64) (model.OrderAddress, error)
}
