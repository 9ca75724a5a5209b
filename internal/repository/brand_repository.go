package repository

import (
	"context"

	"advse-backend/internal/domain/model"
)

type BrandRepository interface {
	List(ctx context.Context) ([]model.ItemBrand, error)
	FindByID(ctx context.Context, brandID int64) (model.ItemBrand, error)
	Create(ctx context.Context, brand model.ItemBrand) (model.ItemBrand, error)

	//更新件数を返す（0件なら ErrNotFound）
	Update(ctx context.Context, brand model.ItemBrand) (int64, error)

	//削除件数を返す（0件なら ErrNotFound、商品から参照中なら ErrConflict）
	Delete(ctx context.Context, brandID int64) (int64, error)
}
