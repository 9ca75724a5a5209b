package repository

import (
	"context"

	"advse-backend/internal/domain/model"
)

// デモ用ユーザーの保存先（memory / db を差し替える）
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, userID string) (model.User, error)
	Create(ctx context.Context, user model.User) error

	//存在しなければ ErrNotFound
	Update(ctx context.Context, user model.User) error
	Delete(ctx context.Context, userID string) error

	DeleteAll(ctx context.Context) error

	//初期データに戻す
	Reset(ctx context.Context, users []model.User) error
}
