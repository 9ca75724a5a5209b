package repository

import (
	"context"

	"advse-backend/internal/domain/model"
	dbinfra "advse-backend/internal/infra/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderAddressGormRepository struct {
	db    *gorm.DB
	retry dbinfra.Retry
}

// DI
func NewOrderAddressGormRepository(db *gorm.DB, retry dbinfra.Retry) *OrderAddressGormRepository {
	return &OrderAddressGormRepository{db: db, retry: retry}
}

// 請求先を作成
func (r *OrderAddressGormRepository) CreateInvoice(ctx context.Context, address model.OrderAddress) error {
	rec := model.OrderInvoiceAddress{OrderAddress: address}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&rec).Error; err != nil {
		return translate(err)
	}
	return nil
}

// 配送先を作成
func (r *OrderAddressGormRepository) CreateShipping(ctx context.Context, address model.OrderAddress) error {
	rec := model.OrderShippingAddress{OrderAddress: address}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&rec).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *OrderAddressGormRepository) FindInvoice(ctx context.Context, orderID int64) (model.OrderAddress, error) {
	var rec model.OrderInvoiceAddress
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&rec).Error
	})
	if err != nil {
		return model.OrderAddress{}, translate(err)
	}
	return rec.OrderAddress, nil
}

func (r *OrderAddressGormRepository) FindShipping(ctx context.Context, orderID int64) (model.OrderAddress, error) {
	var rec model.OrderShippingAddress
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&rec).Error
	})
	if err != nil {
		return model.OrderAddress{}, translate(err)
	}
	return rec.OrderAddress, nil
}
