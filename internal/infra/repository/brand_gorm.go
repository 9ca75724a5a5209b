package repository

import (
	"context"

	"advse-backend/internal/domain/model"
	dbinfra "advse-backend/internal/infra/db"
	repo "advse-backend/internal/repository"

	"gorm.io/gorm"
)

type BrandGormRepository struct {
	db    *gorm.DB
	retry dbinfra.Retry
}

func NewBrandGormRepository(db *gorm.DB, retry dbinfra.Retry) *BrandGormRepository {
	return &BrandGormRepository{db: db, retry: retry}
}

func (r *BrandGormRepository) List(ctx context.Context) ([]model.ItemBrand, error) {
	var brands []model.ItemBrand
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		brands = nil
		return r.db.WithContext(ctx).Order("brand_id asc").Find(&brands).Error
	})
	if err != nil {
		return []model.ItemBrand{}, err
	}
	if brands == nil {
		brands = []model.ItemBrand{}
	}
	return brands, nil
}

func (r *BrandGormRepository) FindByID(ctx context.Context, brandID int64) (model.ItemBrand, error) {
	var b model.ItemBrand
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("brand_id = ?", brandID).First(&b).Error
	})
	if err != nil {
		return model.ItemBrand{}, translate(err)
	}
	return b, nil
}

// 同名ブランドは ErrConflict
func (r *BrandGormRepository) Create(ctx context.Context, brand model.ItemBrand) (model.ItemBrand, error) {
	brand.BrandID = 0
	if err := r.db.WithContext(ctx).Create(&brand).Error; err != nil {
		return model.ItemBrand{}, translate(err)
	}
	return brand, nil
}

func (r *BrandGormRepository) Update(ctx context.Context, brand model.ItemBrand) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.ItemBrand{}).
		Where("brand_id = ?", brand.BrandID).
		Update("brand_name", brand.BrandName)

	if res.Error != nil {
		return 0, translate(res.Error)
	}
	// 0件更新は「対象がない」
	if res.RowsAffected == 0 {
		return 0, repo.ErrNotFound
	}
	return res.RowsAffected, nil
}

// 商品から参照されているブランドは ErrConflict
func (r *BrandGormRepository) Delete(ctx context.Context, brandID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Delete(&model.ItemBrand{})

	if res.Error != nil {
		return 0, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, repo.ErrNotFound
	}
	return res.RowsAffected, nil
}
