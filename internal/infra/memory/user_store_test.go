package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"advse-backend/internal/domain/model"
	repo "advse-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore(model.DefaultUsers())

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)

	u := model.User{UserID: "u-1", FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, s.Create(ctx, u))
	require.ErrorIs(t, s.Create(ctx, u), repo.ErrConflict)

	got, err := s.FindByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	u.LastName = "King"
	require.NoError(t, s.Update(ctx, u))
	got, _ = s.FindByID(ctx, "u-1")
	assert.Equal(t, "King", got.LastName)

	require.NoError(t, s.Delete(ctx, "u-1"))
	_, err = s.FindByID(ctx, "u-1")
	require.ErrorIs(t, err, repo.ErrNotFound)

	require.ErrorIs(t, s.Update(ctx, model.User{UserID: "missing"}), repo.ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, "missing"), repo.ErrNotFound)
}

func TestUserStore_ListReturnsCopy(t *testing.T) {
	s := NewUserStore(model.DefaultUsers())

	list, _ := s.List(context.Background())
	list[0].FirstName = "changed"

	again, _ := s.List(context.Background())
	assert.Equal(t, "Steven", again[0].FirstName)
}

func TestUserStore_DeleteAllAndReset(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore(model.DefaultUsers())

	require.NoError(t, s.DeleteAll(ctx))
	list, _ := s.List(ctx)
	assert.Empty(t, list)

	require.NoError(t, s.Reset(ctx, model.DefaultUsers()))
	list, _ = s.List(ctx)
	assert.Len(t, list, 4)
}

func TestUserStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = s.Create(ctx, model.User{UserID: fmt.Sprintf("u-%d", i)})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = s.List(ctx)
		}()
	}
	wg.Wait()

	list, _ := s.List(ctx)
	assert.Len(t, list, 50)
}
