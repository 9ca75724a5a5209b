package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"advse-backend/internal/domain/model"
	repo "advse-backend/internal/repository"

	"github.com/google/uuid"
)

type UserInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// デモ用ユーザー（保存先は memory / db）
type UserUsecase struct {
	store repo.UserStore
	newID func() string
}

func NewUserUsecase(store repo.UserStore) *UserUsecase {
	return &UserUsecase{store: store, newID: uuid.NewString}
}

func (u *UserUsecase) List(ctx context.Context) ([]model.User, error) {
	list, err := u.store.List(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	return list, nil
}

func (u *UserUsecase) Get(ctx context.Context, userID string) (model.User, error) {
	user, err := u.store.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return model.User{}, internalError(err)
	}
	return user, nil
}

// userId はサーバーで採番
func (u *UserUsecase) Create(ctx context.Context, in UserInput) (model.User, error) {
	user := model.User{
		UserID:    u.newID(),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
	}
	if err := u.store.Create(ctx, user); err != nil {
		return model.User{}, internalError(err)
	}
	return user, nil
}

// 空でない項目だけ上書き
func (u *UserUsecase) Update(ctx context.Context, userID string, in UserInput) (model.User, error) {
	user, err := u.Get(ctx, userID)
	if err != nil {
		return model.User{}, err
	}

	if v := strings.TrimSpace(in.FirstName); v != "" {
		user.FirstName = v
	}
	if v := strings.TrimSpace(in.LastName); v != "" {
		user.LastName = v
	}

	err = u.store.Update(ctx, user)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return model.User{}, internalError(err)
	}
	return user, nil
}

// 削除後の一覧を返す
func (u *UserUsecase) Delete(ctx context.Context, userID string) ([]model.User, error) {
	err := u.store.Delete(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return nil, internalError(err)
	}
	return u.List(ctx)
}

func (u *UserUsecase) DeleteAll(ctx context.Context) ([]model.User, error) {
	if err := u.store.DeleteAll(ctx); err != nil {
		return nil, internalError(err)
	}
	return []model.User{}, nil
}

// 初期の4人に戻す
func (u *UserUsecase) Reset(ctx context.Context) ([]model.User, error) {
	if err := u.store.Reset(ctx, model.DefaultUsers()); err != nil {
		return nil, internalError(err)
	}
	return u.List(ctx)
}
