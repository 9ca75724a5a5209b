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

const (
	itemColumns = "i.id, i.brand_id, ib.brand_name, i.type_id, it.type_name, i.category_id, i.name, i.image, " +
		"i.description, i.instruction, i.created, i.timestamp"

	variantColumns = "iv.id AS variant_id, iv.size, iv.stock, iv.price, iv.original_price, " +
		"iv.discount_amount, iv.discount_percentage"

	//商品ごとに id が最小のバリアント1件
	firstVariantJoin = "JOIN (SELECT DISTINCT ON (item_id) * FROM item_variant ORDER BY item_id, id) iv ON iv.item_id = i.id"

	allVariantsJoin = "LEFT JOIN item_variant iv ON iv.item_id = i.id"
)

type ItemGormRepository struct {
	db    *gorm.DB
	retry dbinfra.Retry
}

// DI
func NewItemGormRepository(db *gorm.DB, retry dbinfra.Retry) *ItemGormRepository {
	return &ItemGormRepository{db: db, retry: retry}
}

func (r *ItemGormRepository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("item i").
		Joins("JOIN item_type it ON it.type_id = i.type_id").
		Joins("JOIN item_brand ib ON ib.brand_id = i.brand_id").
		Joins("JOIN item_category ic ON ic.category_id = i.category_id")
}

// 一覧（IDの絞り込み・ソート付き）
func (r *ItemGormRepository) ListRows(ctx context.Context, q repo.ItemListQuery) ([]aggregate.Row, error) {
	var maps []map[string]any

	err := r.retry.Do(ctx, func(ctx context.Context) error {
		maps = nil
		tx := r.base(ctx).Select(itemColumns + ", " + variantColumns)

		if q.AllVariants {
			tx = tx.Joins(allVariantsJoin)
		} else {
			tx = tx.Joins(firstVariantJoin)
		}

		if len(q.IDs) > 0 {
			tx = tx.Where("i.id IN ?", q.IDs)
		}

		for _, col := range itemOrderBy(q.Sort) {
			tx = tx.Order(col)
		}

		return tx.Find(&maps).Error
	})
	if err != nil {
		return nil, err
	}
	return toRows(maps), nil
}

// 詳細（バリアントがなくても商品は返す）
func (r *ItemGormRepository) DetailRows(ctx context.Context, itemID int64) ([]aggregate.Row, error) {
	var maps []map[string]any

	err := r.retry.Do(ctx, func(ctx context.Context) error {
		maps = nil
		return r.base(ctx).
			Select(itemColumns+", "+variantColumns).
			Joins(allVariantsJoin).
			Where("i.id = ?", itemID).
			Order(rawColumn("iv.id", false)).
			Find(&maps).Error
	})
	if err != nil {
		return nil, err
	}
	return toRows(maps), nil
}

func (r *ItemGormRepository) Exists(ctx context.Context, itemID int64) (bool, error) {
	var count int64
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", itemID).Count(&count).Error
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ItemGormRepository) ListVariants(ctx context.Context, itemID int64) ([]model.ItemVariant, error) {
	var variants []model.ItemVariant
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		variants = nil
		return r.db.WithContext(ctx).Where("item_id = ?", itemID).Order("id asc").Find(&variants).Error
	})
	if err != nil {
		return []model.ItemVariant{}, err
	}
	return variants, nil
}

func (r *ItemGormRepository) FindVariant(ctx context.Context, itemID int64, size int64) (model.ItemVariant, error) {
	var v model.ItemVariant
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("item_id = ? AND size = ?", itemID, size).First(&v).Error
	})
	if err != nil {
		return model.ItemVariant{}, translate(err)
	}
	return v, nil
}

// sort の許可リスト → ORDER BY。ユーザー入力は SQL に入れない。
func itemOrderBy(s repo.ItemSort) []clause.OrderByColumn {
	switch s {
	case repo.ItemSortNameAsc:
		return []clause.OrderByColumn{rawColumn("i.name", false), rawColumn("i.id", false), rawColumn("iv.id", false)}
	case repo.ItemSortNameDesc:
		return []clause.OrderByColumn{rawColumn("i.name", true), rawColumn("i.id", false), rawColumn("iv.id", false)}
	case repo.ItemSortPriceAsc:
		return []clause.OrderByColumn{rawColumn("iv.price", false), rawColumn("i.id", false), rawColumn("iv.id", false)}
	case repo.ItemSortPriceDesc:
		return []clause.OrderByColumn{rawColumn("iv.price", true), rawColumn("i.id", false), rawColumn("iv.id", false)}
	default:
		return []clause.OrderByColumn{rawColumn("i.id", false), rawColumn("iv.id", false)}
	}
}

func rawColumn(name string, desc bool) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: name, Raw: true}, Desc: desc}
}
