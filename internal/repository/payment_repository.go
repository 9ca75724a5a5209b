package repository

import (
	"context"

	"advse-backend/internal/domain/model"
)

type PaymentMethodRepository interface {
	List(ctx context.Context) ([]model.PaymentMethod, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
