package repository

import (
	"context"

	"advse-backend/internal/domain/model"
	dbinfra "advse-backend/internal/infra/db"

	"gorm.io/gorm"
)

type PaymentMethodGormRepository struct {
	db    *gorm.DB
	retry dbinfra.Retry
}

func NewPaymentMethodGormRepository(db *gorm.DB, retry dbinfra.Retry) *PaymentMethodGormRepository {
	return &PaymentMethodGormRepository{db: db, retry: retry}
}

func (r *PaymentMethodGormRepository) List(ctx context.Context) ([]model.PaymentMethod, error) {
	var list []model.PaymentMethod
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		list = nil
		return r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	})
	if err != nil {
		return []model.PaymentMethod{}, err
	}
	if list == nil {
		list = []model.PaymentMethod{}
	}
	return list, nil
}

func (r *PaymentMethodGormRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Model(&model.PaymentMethod{}).Where("id = ?", id).Count(&count).Error
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
