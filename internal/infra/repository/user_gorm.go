package repository

import (
	"context"

	"advse-backend/internal/domain/model"

	"gorm.io/gorm"
)

// USER_STORE=db のときのデモユーザー保存先
type UserGormStore struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewUserGormStore(db *gorm.DB) *UserGormStore {
	return &UserGormStore{db: db}
}

func (s *UserGormStore) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.db.WithContext(ctx).Order("first_name asc, last_name asc").Find(&users).Error; err != nil {
		return []model.User{}, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (s *UserGormStore) FindByID(ctx context.Context, userID string) (model.User, error) {
	var u model.User
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&u).Error; err != nil {
		return model.User{}, translate(err)
	}
	return u, nil
}

func (s *UserGormStore) Create(ctx context.Context, user model.User) error {
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return translate(err)
	}
	return nil
}

// 名前だけ更新
func (s *UserGormStore) Update(ctx context.Context, user model.User) error {
	res := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", user.UserID).
		Updates(map[string]any{"first_name": user.FirstName, "last_name": user.LastName})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (s *UserGormStore) Delete(ctx context.Context, userID string) error {
	res := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (s *UserGormStore) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.User{}).Error
}

// 全削除 → 初期データ投入を1つのTxで
func (s *UserGormStore) Reset(ctx context.Context, users []model.User) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.User{}).Error; err != nil {
			return err
		}
		if len(users) == 0 {
			return nil
		}
		return tx.Create(&users).Error
	})
}
