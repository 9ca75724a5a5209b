package repository

import (
	"context"
	"testing"
	"time"

	dbinfra "advse-backend/internal/infra/db"
	repo "advse-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var itemRowColumns = []string{
	"id", "brand_id", "brand_name", "type_id", "type_name", "category_id", "name", "image",
	"description", "instruction", "created", "timestamp",
	"variant_id", "size", "stock", "price", "original_price", "discount_amount", "discount_percentage",
}

func TestItemGorm_ListRows_PreviewUsesFirstVariant(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewItemGormRepository(gdb, dbinfra.Retry{})
	now := time.Now()

	mock.ExpectQuery(`DISTINCT ON \(item_id\).*ORDER BY i\.name DESC,i\.id,iv\.id`).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).
			AddRow(2, 1, "Balea", 1, "Shampoo", 1, "Zitrus", "z.png", "d", "i", now, now, 5, 300, 10, 2.95, 2.95, 0, 0).
			AddRow(1, 1, "Balea", 1, "Shampoo", 1, "Aloe", "a.png", "d", "i", now, now, 1, 50, 3, 1.45, 1.95, 0.5, 25.64))

	rows, err := r.ListRows(context.Background(), repo.ItemListQuery{Sort: repo.ItemSortNameDesc})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, int64(2), rows[0].Int64("id"))
	require.Equal(t, "Aloe", rows[1].String("name"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemGorm_ListRows_AllVariantsWithIDs(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewItemGormRepository(gdb, dbinfra.Retry{})

	mock.ExpectQuery(`LEFT JOIN item_variant iv ON iv\.item_id = i\.id WHERE i\.id IN \(\$1,\$2\)`).
		WithArgs(int64(1), int64(4)).
		WillReturnRows(sqlmock.NewRows(itemRowColumns))

	rows, err := r.ListRows(context.Background(), repo.ItemListQuery{IDs: []int64{1, 4}, AllVariants: true})
	require.NoError(t, err)
	require.Empty(t, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemGorm_ListRows_PriceSort(t *testing.T) {
	cases := []struct {
		sort  repo.ItemSort
		order string
	}{
		{repo.ItemSortPriceAsc, `ORDER BY iv\.price,i\.id,iv\.id`},
		{repo.ItemSortPriceDesc, `ORDER BY iv\.price DESC,i\.id,iv\.id`},
		{repo.ItemSortNameAsc, `ORDER BY i\.name,i\.id,iv\.id`},
	}
	for _, tc := range cases {
		t.Run(string(tc.sort), func(t *testing.T) {
			gdb, mock := newMockDB(t)
			r := NewItemGormRepository(gdb, dbinfra.Retry{})

			mock.ExpectQuery(`LEFT JOIN item_variant iv ON iv\.item_id = i\.id ` + tc.order + `$`).
				WillReturnRows(sqlmock.NewRows(itemRowColumns))

			_, err := r.ListRows(context.Background(), repo.ItemListQuery{Sort: tc.sort, AllVariants: true})
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestItemOrderBy_UnknownFallsBackToID(t *testing.T) {
	cols := itemOrderBy(repo.ParseItemSort("price; DROP TABLE item"))
	require.Len(t, cols, 2)
	require.Equal(t, "i.id", cols[0].Column.Name)
	require.False(t, cols[0].Desc)
}

func TestItemGorm_FindVariant_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewItemGormRepository(gdb, dbinfra.Retry{})

	mock.ExpectQuery(`SELECT \* FROM "item_variant" WHERE item_id = \$1 AND size = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "size"}))

	_, err := r.FindVariant(context.Background(), 1, 75)
	require.ErrorIs(t, err, repo.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
