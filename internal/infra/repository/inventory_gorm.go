package repository

import (
	"context"

	"advse-backend/internal/domain/model"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 在庫が足りるときだけ減らす
func (r *InventoryGormRepository) DecreaseStockIfEnough(ctx context.Context, itemID int64, size int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.ItemVariant{}).
		Where("item_id = ? AND size = ? AND stock >= ?", itemID, size, qty).
		Update("stock", gorm.Expr("stock - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}
