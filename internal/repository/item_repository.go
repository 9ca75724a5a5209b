package repository

import (
	"context"
	"errors"

	"advse-backend/internal/domain/aggregate"
	"advse-backend/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")

	// 一意制約・外部キー制約に当たった
	ErrConflict = errors.New("conflict")
)

// 並び順（許可したものだけ SQL の ORDER BY に変換する）
type ItemSort string

const (
	ItemSortDefault   ItemSort = ""
	ItemSortNameAsc   ItemSort = "name asc"
	ItemSortNameDesc  ItemSort = "name desc"
	ItemSortPriceAsc  ItemSort = "price asc"
	ItemSortPriceDesc ItemSort = "price desc"
)

// ParseItemSort は知らない値を ItemSortDefault（id順）にする。
func ParseItemSort(s string) ItemSort {
	switch ItemSort(s) {
	case ItemSortNameAsc, ItemSortNameDesc, ItemSortPriceAsc, ItemSortPriceDesc:
		return ItemSort(s)
	default:
		return ItemSortDefault
	}
}

// 一覧検索
type ItemListQuery struct {
	IDs  []int64
	Sort ItemSort

	// false: 商品ごとに先頭のバリアント1件だけ JOIN する（プレビュー）
	AllVariants bool
}

// 商品の取得だけを約束（書き込みはブランドと在庫のみ）。
type ItemRepository interface {
	//一覧（商品×バリアントの平たい行）
	ListRows(ctx context.Context, q ItemListQuery) ([]aggregate.Row, error)

	//詳細（商品1件×全バリアントの平たい行）。存在しなければ空
	DetailRows(ctx context.Context, itemID int64) ([]aggregate.Row, error)

	Exists(ctx context.Context, itemID int64) (bool, error)

	ListVariants(ctx context.Context, itemID int64) ([]model.ItemVariant, error)
	FindVariant(ctx context.Context, itemID int64, size int64) (model.ItemVariant, error)
}

type InventoryRepository interface {
	// 在庫が足りるときだけ減算
	DecreaseStockIfEnough(ctx context.Context, itemID int64, size int64, qty int64) (bool, error)
}
