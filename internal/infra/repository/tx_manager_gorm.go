package repository

import (
	"context"

	dbinfra "advse-backend/internal/infra/db"
	repo "advse-backend/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders         repo.OrderRepository
	orderItems     repo.OrderItemRepository
	orderAddresses repo.OrderAddressRepository
	items          repo.ItemRepository
	inventory      repo.InventoryRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository                { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository        { return r.orderItems }
func (r *txReposGorm) OrderAddresses() repo.OrderAddressRepository { return r.orderAddresses }
func (r *txReposGorm) Items() repo.ItemRepository                  { return r.items }
func (r *txReposGorm) Inventory() repo.InventoryRepository         { return r.inventory }

type TxManagerGorm struct {
	db    *gorm.DB
	retry dbinfra.Retry
}

// retry はTx全体のやり直し（接続切れなど）にだけ使う
func NewTxManagerGorm(db *gorm.DB, retry dbinfra.Retry) *TxManagerGorm {
	return &TxManagerGorm{db: db, retry: retry}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.retry.Do(ctx, func(ctx context.Context) error {
		return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			//repoはtxを持ったDBで作り直す（Tx内では個別にリトライしない）
			none := dbinfra.Retry{}
			r := &txReposGorm{
				orders:         NewOrderGormRepository(tx, none),
				orderItems:     NewOrderItemGormRepository(tx, none),
				orderAddresses: NewOrderAddressGormRepository(tx, none),
				items:          NewItemGormRepository(tx, none),
				inventory:      NewInventoryGormRepository(tx),
			}
			return fn(r)
		})
	})
}

var (
	_ repo.ItemRepository          = (*ItemGormRepository)(nil)
	_ repo.InventoryRepository     = (*InventoryGormRepository)(nil)
	_ repo.BrandRepository         = (*BrandGormRepository)(nil)
	_ repo.OrderRepository         = (*OrderGormRepository)(nil)
	_ repo.OrderItemRepository     = (*OrderItemGormRepository)(nil)
	_ repo.OrderAddressRepository  = (*OrderAddressGormRepository)(nil)
	_ repo.PaymentMethodRepository = (*PaymentMethodGormRepository)(nil)
	_ repo.UserStore               = (*UserGormStore)(nil)
	_ repo.TransactionManager      = (*TxManagerGorm)(nil)
)
