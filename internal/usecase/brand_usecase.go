package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"advse-backend/internal/domain/model"
	repo "advse-backend/internal/repository"
)

type BrandDTO struct {
	BrandID   int64  `json:"brand_id"`
	BrandName string `json:"brand_name"`
}

type BrandUsecase struct {
	brands repo.BrandRepository
}

func NewBrandUsecase(brands repo.BrandRepository) *BrandUsecase {
	return &BrandUsecase{brands: brands}
}

func (u *BrandUsecase) List(ctx context.Context) ([]BrandDTO, error) {
	list, err := u.brands.List(ctx)
	if err != nil {
		return nil, internalError(err)
	}

	out := make([]BrandDTO, 0, len(list))
	for _, b := range list {
		out = append(out, toBrandDTO(b))
	}
	return out, nil
}

func (u *BrandUsecase) Get(ctx context.Context, brandID int64) (BrandDTO, error) {
	if brandID <= 0 {
		return BrandDTO{}, NewHTTPError(http.StatusBadRequest, "invalid brand id")
	}

	b, err := u.brands.FindByID(ctx, brandID)
	if errors.Is(err, repo.ErrNotFound) {
		return BrandDTO{}, NewHTTPError(http.StatusNotFound, "brand not found")
	}
	if err != nil {
		return BrandDTO{}, internalError(err)
	}
	return toBrandDTO(b), nil
}

// 作成したブランドIDを返す
func (u *BrandUsecase) Create(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "brand_name required")
	}

	b, err := u.brands.Create(ctx, model.ItemBrand{BrandName: name})
	if errors.Is(err, repo.ErrConflict) {
		return 0, WrapHTTPError(http.StatusConflict, "brand already exists", err)
	}
	if err != nil {
		return 0, internalError(err)
	}
	return b.BrandID, nil
}

// 更新件数を返す
func (u *BrandUsecase) Update(ctx context.Context, brandID int64, name string) (int64, error) {
	if brandID <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid brand id")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "brand_name required")
	}

	n, err := u.brands.Update(ctx, model.ItemBrand{BrandID: brandID, BrandName: name})
	if errors.Is(err, repo.ErrNotFound) {
		return 0, NewHTTPError(http.StatusNotFound, "brand not found")
	}
	if errors.Is(err, repo.ErrConflict) {
		return 0, WrapHTTPError(http.StatusConflict, "brand already exists", err)
	}
	if err != nil {
		return 0, internalError(err)
	}
	return n, nil
}

// 削除件数を返す
func (u *BrandUsecase) Delete(ctx context.Context, brandID int64) (int64, error) {
	if brandID <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid brand id")
	}

	n, err := u.brands.Delete(ctx, brandID)
	if errors.Is(err, repo.ErrNotFound) {
		return 0, NewHTTPError(http.StatusNotFound, "brand not found")
	}
	if errors.Is(err, repo.ErrConflict) {
		return 0, WrapHTTPError(http.StatusConflict, "brand is referenced by items", err)
	}
	if err != nil {
		return 0, internalError(err)
	}
	return n, nil
}

func toBrandDTO(b model.ItemBrand) BrandDTO {
	return BrandDTO{BrandID: b.BrandID, BrandName: b.BrandName}
}
