package memory

import (
	"context"
	"sync"

	"advse-backend/internal/domain/model"
	repo "advse-backend/internal/repository"
)

// UserStore はプロセス内だけのデモユーザー保存先（再起動で初期データに戻る）。
type UserStore struct {
	mu    sync.RWMutex
	users []model.User
}

func NewUserStore(initial []model.User) *UserStore {
	return &UserStore{users: append([]model.User(nil), initial...)}
}

func (s *UserStore) List(ctx context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *UserStore) FindByID(ctx context.Context, userID string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(userID); i >= 0 {
		return s.users[i], nil
	}
	return model.User{}, repo.ErrNotFound
}

func (s *UserStore) Create(ctx context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(user.UserID) >= 0 {
		return repo.ErrConflict
	}
	s.users = append(s.users, user)
	return nil
}

func (s *UserStore) Update(ctx context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(user.UserID)
	if i < 0 {
		return repo.ErrNotFound
	}
	s.users[i] = user
	return nil
}

func (s *UserStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(userID)
	if i < 0 {
		return repo.ErrNotFound
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	return nil
}

func (s *UserStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = nil
	return nil
}

func (s *UserStore) Reset(ctx context.Context, users []model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append([]model.User(nil), users...)
	return nil
}

// 呼び出し側でロックを持っていること
func (s *UserStore) indexOf(userID string) int {
	for i, u := range s.users {
		if u.UserID == userID {
			return i
		}
	}
	return -1
}

var _ repo.UserStore = (*UserStore)(nil)
