package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"advse-backend/internal/domain/model"
	repo "advse-backend/internal/repository"
	"advse-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBrandUsecase_Create(t *testing.T) {
	brands := new(BrandRepoMock)
	uc := usecase.NewBrandUsecase(brands)

	brands.On("Create", mock.Anything, model.ItemBrand{BrandName: "Balea"}).
		Return(model.ItemBrand{BrandID: 9, BrandName: "Balea"}, nil)

	id, err := uc.Create(context.Background(), "  Balea ")
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	brands.AssertExpectations(t)
}

func TestBrandUsecase_Create_EmptyName(t *testing.T) {
	brands := new(BrandRepoMock)
	uc := usecase.NewBrandUsecase(brands)

	_, err := uc.Create(context.Background(), "   ")
	requireStatus(t, err, http.StatusBadRequest)
	assertErrContains(t, err, "brand_name required")
	brands.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBrandUsecase_Create_Duplicate(t *testing.T) {
	brands := new(BrandRepoMock)
	uc := usecase.NewBrandUsecase(brands)

	brands.On("Create", mock.Anything, mock.Anything).Return(model.ItemBrand{}, repo.ErrConflict)

	_, err := uc.Create(context.Background(), "Balea")
	requireStatus(t, err, http.StatusConflict)
}

func TestBrandUsecase_Get(t *testing.T) {
	brands := new(BrandRepoMock)
	uc := usecase.NewBrandUsecase(brands)

	brands.On("FindByID", mock.Anything, int64(1)).Return(model.ItemBrand{BrandID: 1, BrandName: "Lancôme"}, nil)
	brands.On("FindByID", mock.Anything, int64(2)).Return(model.ItemBrand{}, repo.ErrNotFound)

	b, err := uc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, usecase.BrandDTO{BrandID: 1, BrandName: "Lancôme"}, b)

	_, err = uc.Get(context.Background(), 2)
	requireStatus(t, err, http.StatusNotFound)

	_, err = uc.Get(context.Background(), 0)
	requireStatus(t, err, http.StatusBadRequest)
}

func TestBrandUsecase_Update(t *testing.T) {
	brands := new(BrandRepoMock)
	uc := usecase.NewBrandUsecase(brands)

	brands.On("Update", mock.Anything, model.ItemBrand{BrandID: 1, BrandName: "Nivea"}).Return(int64(1), nil)
	brands.On("Update", mock.Anything, model.ItemBrand{BrandID: 2, BrandName: "Nivea"}).Return(int64(0), repo.ErrNotFound)

	n, err := uc.Update(context.Background(), 1, "Nivea")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = uc.Update(context.Background(), 2, "Nivea")
	requireStatus(t, err, http.StatusNotFound)
}

func TestBrandUsecase_Delete(t *testing.T) {
	brands := new(BrandRepoMock)
	uc := usecase.NewBrandUsecase(brands)

	brands.On("Delete", mock.Anything, int64(1)).Return(int64(0), repo.ErrConflict)
	brands.On("Delete", mock.Anything, int64(2)).Return(int64(1), nil)
	brands.On("Delete", mock.Anything, int64(3)).Return(int64(0), errors.New("boom"))

	_, err := uc.Delete(context.Background(), 1)
	requireStatus(t, err, http.StatusConflict)

	n, err := uc.Delete(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = uc.Delete(context.Background(), 3)
	he := requireStatus(t, err, http.StatusInternalServerError)
	assert.Equal(t, "Something went wrong.", he.Message)
}

func TestBrandUsecase_List(t *testing.T) {
	brands := new(BrandRepoMock)
	uc := usecase.NewBrandUsecase(brands)

	brands.On("List", mock.Anything).Return([]model.ItemBrand{{BrandID: 1, BrandName: "A"}, {BrandID: 2, BrandName: "B"}}, nil)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
