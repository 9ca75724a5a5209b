package repository

import (
	"context"

	"advse-backend/internal/domain/aggregate"
	"advse-backend/internal/domain/model"
	dbinfra "advse-backend/internal/infra/db"
	repo "advse-backend/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const orderSummaryColumns = "o.id, o.email, o.total, o.subtotal, o.shipping_cost, o.payment_method_id, " +
	"pm.name AS payment_method_name, o.status, o.created, o.timestamp"

// 注文1件分の平たい行。同名カラムは別名で区別する。
const orderDetailColumns = "o.id, o.email, o.total, o.subtotal, o.shipping_cost, o.payment_method_id, " +
	"pm.name AS payment_method_name, o.status, o.created AS order_created, o.timestamp AS order_timestamp, " +
	"oi.id AS order_item_pk, oi.order_item_id, oi.size, oi.quantity, oi.price, oi.original_price, " +
	"oi.discount_amount, oi.discount_percentage, oi.created AS order_item_created, oi.timestamp AS order_item_timestamp, " +
	"oia.order_id AS invoice_order_id, oia.salutation AS invoice_salutation, oia.name AS invoice_name, " +
	"oia.address AS invoice_address_line, oia.additional_address AS invoice_additional_address, " +
	"oia.postcode AS invoice_postcode, oia.city AS invoice_city, oia.phone_number AS invoice_phone_number, " +
	"oia.created AS invoice_created, oia.timestamp AS invoice_timestamp, " +
	"osa.order_id AS shipping_order_id, osa.salutation AS shipping_salutation, osa.name AS shipping_name, " +
	"osa.address AS shipping_address_line, osa.additional_address AS shipping_additional_address, " +
	"osa.postcode AS shipping_postcode, osa.city AS shipping_city, osa.phone_number AS shipping_phone_number, " +
	"osa.created AS shipping_created, osa.timestamp AS shipping_timestamp"

type OrderGormRepository struct {
	db    *gorm.DB
	retry dbinfra.Retry
}

func NewOrderGormRepository(db *gorm.DB, retry dbinfra.Retry) *OrderGormRepository {
	return &OrderGormRepository{db: db, retry: retry}
}

func (r *OrderGormRepository) List(ctx context.Context, f repo.OrderListFilter) ([]repo.OrderSummary, error) {
	var items []repo.OrderSummary

	err := r.retry.Do(ctx, func(ctx context.Context) error {
		items = nil
		q := r.db.WithContext(ctx).
			Table(`"order" o`).
			Select(orderSummaryColumns).
			Joins("JOIN payment_method pm ON pm.id = o.payment_method_id")

		//email 絞り込み
		if f.Email != nil {
			q = q.Where("o.email = ?", *f.Email)
		}

		return q.Order("o.id asc").Scan(&items).Error
	})
	if err != nil {
		return []repo.OrderSummary{}, err
	}
	if items == nil {
		items = []repo.OrderSummary{}
	}
	return items, nil
}

func (r *OrderGormRepository) DetailRows(ctx context.Context, orderID int64) ([]aggregate.Row, error) {
	var maps []map[string]any

	err := r.retry.Do(ctx, func(ctx context.Context) error {
		maps = nil
		return r.db.WithContext(ctx).
			Table(`"order" o`).
			Select(orderDetailColumns).
			Joins("JOIN payment_method pm ON pm.id = o.payment_method_id").
			Joins("LEFT JOIN order_item oi ON oi.order_id = o.id").
			Joins("LEFT JOIN order_invoice_address oia ON oia.order_id = o.id").
			Joins("LEFT JOIN order_shipping_address osa ON osa.order_id = o.id").
			Where("o.id = ?", orderID).
			Order("oi.id asc").
			Find(&maps).Error
	})
	if err != nil {
		return nil, err
	}
	return toRows(maps), nil
}

func (r *OrderGormRepository) Exists(ctx context.Context, orderID int64) (bool, error) {
	var count int64
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", orderID).Count(&count).Error
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&order).Error; err != nil {
		return 0, translate(err)
	}
	return order.ID, nil
}
