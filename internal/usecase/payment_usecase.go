package usecase

import (
	"context"

	"advse-backend/internal/domain/model"
	repo "advse-backend/internal/repository"
)

type PaymentUsecase struct {
	methods repo.PaymentMethodRepository
}

func NewPaymentUsecase(methods repo.PaymentMethodRepository) *PaymentUsecase {
	return &PaymentUsecase{methods: methods}
}

func (u *PaymentUsecase) ListMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	list, err := u.methods.List(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	if list == nil {
		list = []model.PaymentMethod{}
	}
	return list, nil
}
