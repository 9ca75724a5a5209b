package usecase

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"advse-backend/internal/domain/aggregate"
	"advse-backend/internal/domain/model"
	"advse-backend/internal/domain/pricing"
	repo "advse-backend/internal/repository"
)

// 一覧の rating は固定値
const itemRating = 4.3

var itemColumns = aggregate.Fs(
	"id", "brand_id", "brand_name", "type_id", "type_name", "category_id",
	"name", "image", "description", "instruction", "created", "timestamp",
)

var variantColumns = aggregate.Fs(
	"variant_id", "size", "stock", "price", "original_price", "discount_amount", "discount_percentage",
)

// 商品＋バリアント配列
var itemShape = aggregate.Shape{
	Key:    "id",
	Fields: itemColumns,
	Many: []aggregate.Group{
		{Name: "variants", Identity: []string{"variant_id"}, Fields: variantColumns},
	},
}

type VariantDTO struct {
	VariantID          int64      `json:"variant_id"`
	ItemID             int64      `json:"item_id,omitempty"`
	Size               int64      `json:"size"`
	Stock              int64      `json:"stock"`
	Price              float64    `json:"price"`
	OriginalPrice      float64    `json:"original_price"`
	DiscountAmount     float64    `json:"discount_amount"`
	DiscountPercentage float64    `json:"discount_percentage"`
	BaseSize           int        `json:"base_size"`
	BasePrice          *float64   `json:"base_price"`
	Created            *time.Time `json:"created,omitempty"`
	Timestamp          *time.Time `json:"timestamp,omitempty"`
}

type ItemDTO struct {
	ID          int64        `json:"id"`
	BrandID     int64        `json:"brand_id"`
	BrandName   string       `json:"brand_name"`
	TypeID      int64        `json:"type_id"`
	TypeName    string       `json:"type_name"`
	CategoryID  int64        `json:"category_id"`
	Name        string       `json:"name"`
	Image       string       `json:"image"`
	Description string       `json:"description"`
	Instruction string       `json:"instruction"`
	Rating      float64      `json:"rating"`
	Created     time.Time    `json:"created"`
	Timestamp   time.Time    `json:"timestamp"`
	Variants    []VariantDTO `json:"variants"`
}

// プレビュー一覧の1件（商品＋先頭バリアントを平たく）
type ItemPreviewDTO struct {
	ID                 int64     `json:"id"`
	BrandID            int64     `json:"brand_id"`
	BrandName          string    `json:"brand_name"`
	TypeID             int64     `json:"type_id"`
	TypeName           string    `json:"type_name"`
	Name               string    `json:"name"`
	Image              string    `json:"image"`
	Rating             float64   `json:"rating"`
	Created            time.Time `json:"created"`
	Timestamp          time.Time `json:"timestamp"`
	Size               int64     `json:"size"`
	Price              float64   `json:"price"`
	OriginalPrice      float64   `json:"original_price"`
	DiscountPercentage float64   `json:"discount_percentage"`
	BaseSize           int       `json:"base_size"`
	BasePrice          *float64  `json:"base_price"`
}

// GET /itemsの入力DTO
type ListItemsInput struct {
	// カンマ区切りの id（空なら全件）
	IDs  string
	Sort string
}

type ItemUsecase struct {
	items       repo.ItemRepository
	allVariants bool
}

// DI
// allVariants=false なら一覧は商品ごとに先頭バリアント1件（プレビュー）
func NewItemUsecase(items repo.ItemRepository, allVariants bool) *ItemUsecase {
	return &ItemUsecase{items: items, allVariants: allVariants}
}

func (u *ItemUsecase) AllVariants() bool {
	return u.allVariants
}

func (u *ItemUsecase) ListPreview(ctx context.Context, in ListItemsInput) ([]ItemPreviewDTO, error) {
	docs, err := u.listDocuments(ctx, in, false)
	if err != nil {
		return nil, err
	}

	out := make([]ItemPreviewDTO, 0, len(docs))
	for _, d := range docs {
		variants := d.Many["variants"]
		if len(variants) == 0 {
			continue
		}
		v := variantFromRow(variants[0])
		f := d.Fields
		out = append(out, ItemPreviewDTO{
			ID:                 f.Int64("id"),
			BrandID:            f.Int64("brand_id"),
			BrandName:          f.String("brand_name"),
			TypeID:             f.Int64("type_id"),
			TypeName:           f.String("type_name"),
			Name:               f.String("name"),
			Image:              f.String("image"),
			Rating:             itemRating,
			Created:            f.Time("created"),
			Timestamp:          f.Time("timestamp"),
			Size:               v.Size,
			Price:              v.Price,
			OriginalPrice:      v.OriginalPrice,
			DiscountPercentage: v.DiscountPercentage,
			BaseSize:           v.BaseSize,
			BasePrice:          v.BasePrice,
		})
	}
	return out, nil
}

func (u *ItemUsecase) ListWithVariants(ctx context.Context, in ListItemsInput) ([]ItemDTO, error) {
	docs, err := u.listDocuments(ctx, in, true)
	if err != nil {
		return nil, err
	}

	out := make([]ItemDTO, 0, len(docs))
	for _, d := range docs {
		out = append(out, itemFromDocument(d))
	}
	return out, nil
}

func (u *ItemUsecase) listDocuments(ctx context.Context, in ListItemsInput, allVariants bool) ([]aggregate.Document, error) {
	ids, err := ParseIDList(in.IDs)
	if err != nil {
		return nil, err
	}

	rows, err := u.items.ListRows(ctx, repo.ItemListQuery{
		IDs:         ids,
		Sort:        repo.ParseItemSort(strings.TrimSpace(in.Sort)),
		AllVariants: allVariants,
	})
	if err != nil {
		return nil, internalError(err)
	}
	return itemShape.Group(rows), nil
}

func (u *ItemUsecase) GetItem(ctx context.Context, itemID int64) (ItemDTO, error) {
	if itemID <= 0 {
		return ItemDTO{}, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	rows, err := u.items.DetailRows(ctx, itemID)
	if err != nil {
		return ItemDTO{}, internalError(err)
	}

	doc, err := itemShape.Single(rows)
	if errors.Is(err, aggregate.ErrNotFound) {
		return ItemDTO{}, NewHTTPError(http.StatusNotFound, "item not found")
	}
	if err != nil {
		return ItemDTO{}, internalError(err)
	}
	return itemFromDocument(doc), nil
}

func (u *ItemUsecase) ListVariants(ctx context.Context, itemID int64) ([]VariantDTO, error) {
	if itemID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	ok, err := u.items.Exists(ctx, itemID)
	if err != nil {
		return nil, internalError(err)
	}
	if !ok {
		return nil, NewHTTPError(http.StatusNotFound, "item not found")
	}

	list, err := u.items.ListVariants(ctx, itemID)
	if err != nil {
		return nil, internalError(err)
	}

	out := make([]VariantDTO, 0, len(list))
	for i := range list {
		out = append(out, variantFromModel(list[i]))
	}
	return out, nil
}

func (u *ItemUsecase) GetVariant(ctx context.Context, itemID int64, size int64) (VariantDTO, error) {
	if itemID <= 0 {
		return VariantDTO{}, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	if size <= 0 {
		return VariantDTO{}, NewHTTPError(http.StatusBadRequest, "invalid size")
	}

	v, err := u.items.FindVariant(ctx, itemID, size)
	if errors.Is(err, repo.ErrNotFound) {
		return VariantDTO{}, NewHTTPError(http.StatusNotFound, "variant not found")
	}
	if err != nil {
		return VariantDTO{}, internalError(err)
	}
	return variantFromModel(v), nil
}

// ParseIDList は "1,2,3" を []int64 にする。空文字は nil（絞り込みなし）。
func ParseIDList(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || id <= 0 {
			return nil, NewHTTPError(http.StatusBadRequest, "invalid id")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func itemFromDocument(d aggregate.Document) ItemDTO {
	f := d.Fields
	rows := d.Many["variants"]

	variants := make([]VariantDTO, 0, len(rows))
	for _, r := range rows {
		variants = append(variants, variantFromRow(r))
	}

	return ItemDTO{
		ID:          f.Int64("id"),
		BrandID:     f.Int64("brand_id"),
		BrandName:   f.String("brand_name"),
		TypeID:      f.Int64("type_id"),
		TypeName:    f.String("type_name"),
		CategoryID:  f.Int64("category_id"),
		Name:        f.String("name"),
		Image:       f.String("image"),
		Description: f.String("description"),
		Instruction: f.String("instruction"),
		Rating:      itemRating,
		Created:     f.Time("created"),
		Timestamp:   f.Time("timestamp"),
		Variants:    variants,
	}
}

func variantFromRow(r aggregate.Row) VariantDTO {
	price := r.Float64("price")
	size := r.Int64("size")
	return VariantDTO{
		VariantID:          r.Int64("variant_id"),
		Size:               size,
		Stock:              r.Int64("stock"),
		Price:              pricing.Round2(price),
		OriginalPrice:      pricing.Round2(r.Float64("original_price")),
		DiscountAmount:     pricing.Round2(r.Float64("discount_amount")),
		DiscountPercentage: pricing.Round2(r.Float64("discount_percentage")),
		BaseSize:           pricing.BaseSize,
		BasePrice:          basePriceOf(price, size),
	}
}

func variantFromModel(v model.ItemVariant) VariantDTO {
	created, ts := v.Created, v.Timestamp
	return VariantDTO{
		VariantID:          v.ID,
		ItemID:             v.ItemID,
		Size:               v.Size,
		Stock:              v.Stock,
		Price:              pricing.Round2(v.Price),
		OriginalPrice:      pricing.Round2(v.OriginalPrice),
		DiscountAmount:     pricing.Round2(v.DiscountAmount),
		DiscountPercentage: pricing.Round2(v.DiscountPercentage),
		BaseSize:           pricing.BaseSize,
		BasePrice:          basePriceOf(v.Price, v.Size),
		Created:            &created,
		Timestamp:          &ts,
	}
}

// size が 0 のときは null
func basePriceOf(price float64, size int64) *float64 {
	bp, err := pricing.RoundedBasePrice(price, float64(size))
	if err != nil {
		return nil
	}
	return &bp
}
