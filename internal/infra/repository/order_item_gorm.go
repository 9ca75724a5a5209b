package repository

import (
	"context"

	"advse-backend/internal/domain/model"
	dbinfra "advse-backend/internal/infra/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderItemGormRepository struct {
	db    *gorm.DB
	retry dbinfra.Retry
}

func NewOrderItemGormRepository(db *gorm.DB, retry dbinfra.Retry) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db, retry: retry}
}

func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&items).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		items = nil
		return r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id asc").Find(&items).Error
	})
	if err != nil {
		return []model.OrderItem{}, err
	}
	if items == nil {
		items = []model.OrderItem{}
	}
	return items, nil
}

// 同じ商品が複数行あれば最後に入った明細
func (r *OrderItemGormRepository) FindByOrderAndItem(ctx context.Context, orderID int64, itemID int64) (model.OrderItem, error) {
	var it model.OrderItem
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("order_id = ? AND order_item_id = ?", orderID, itemID).
			Order("id desc").
			First(&it).Error
	})
	if err != nil {
		return model.OrderItem{}, translate(err)
	}
	return it, nil
}
