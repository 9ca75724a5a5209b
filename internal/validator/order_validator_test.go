package validator

import (
	"context"
	"errors"
	"testing"

	"advse-backend/internal/domain/model"
	"advse-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) List(ctx context.Context) ([]model.PaymentMethod, error) {
	panic("not used in validator tests")
}

func (m *mockPaymentRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func validOrder() usecase.PlaceOrderInput {
	addr := usecase.AddressInput{
		Salutation: "mr", FirstName: "Max", LastName: "Muster",
		Street: "Hauptstr", HouseNumber: "1", Postcode: "14770", City: "Brandenburg",
	}
	return usecase.PlaceOrderInput{
		Email:         "max@example.de",
		PaymentMethod: 1,
		Order: usecase.OrderInput{
			Total: 77.9, Subtotal: 77.9,
			Items: []usecase.OrderItemInput{
				{ID: 1, Quantity: 2, Variant: usecase.VariantInput{Size: 30, Price: 38.95, OriginalPrice: 62.5}},
			},
		},
		InvoiceAddress:  addr,
		ShippingAddress: addr,
	}
}

func TestValidatePlaceOrder_OK(t *testing.T) {
	payments := new(mockPaymentRepo)
	payments.On("Exists", mock.Anything, int64(1)).Return(true, nil)

	v := NewOrderValidator(payments)
	require.NoError(t, v.ValidatePlaceOrder(context.Background(), validOrder()))
	payments.AssertExpectations(t)
}

func TestValidatePlaceOrder_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(in *usecase.PlaceOrderInput)
	}{
		{"email missing", func(in *usecase.PlaceOrderInput) { in.Email = " " }},
		{"email shape", func(in *usecase.PlaceOrderInput) { in.Email = "max@example" }},
		{"no items", func(in *usecase.PlaceOrderInput) { in.Order.Items = nil }},
		{"zero quantity", func(in *usecase.PlaceOrderInput) { in.Order.Items[0].Quantity = 0 }},
		{"zero size", func(in *usecase.PlaceOrderInput) { in.Order.Items[0].Variant.Size = 0 }},
		{"negative price", func(in *usecase.PlaceOrderInput) { in.Order.Items[0].Variant.Price = -1 }},
		{"negative total", func(in *usecase.PlaceOrderInput) { in.Order.Total = -1 }},
		{"invoice city", func(in *usecase.PlaceOrderInput) { in.InvoiceAddress.City = "" }},
		{"shipping name", func(in *usecase.PlaceOrderInput) {
			in.ShippingAddress.FirstName, in.ShippingAddress.LastName = "", ""
		}},
		{"payment zero", func(in *usecase.PlaceOrderInput) { in.PaymentMethod = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validOrder()
			in.Order.Items = append([]usecase.OrderItemInput(nil), in.Order.Items...)
			tc.mutate(&in)

			err := NewOrderValidator(new(mockPaymentRepo)).ValidatePlaceOrder(context.Background(), in)
			require.Error(t, err)
			assert.ErrorIs(t, err, usecase.ErrInvalidInput)
		})
	}
}

func TestValidatePlaceOrder_UnknownPaymentMethod(t *testing.T) {
	payments := new(mockPaymentRepo)
	payments.On("Exists", mock.Anything, int64(1)).Return(false, nil)

	err := NewOrderValidator(payments).ValidatePlaceOrder(context.Background(), validOrder())
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestValidatePlaceOrder_DBErrorIsNotInvalidInput(t *testing.T) {
	payments := new(mockPaymentRepo)
	payments.On("Exists", mock.Anything, int64(1)).Return(false, errors.New("db down"))

	err := NewOrderValidator(payments).ValidatePlaceOrder(context.Background(), validOrder())
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrInvalidInput)
}
