package validator

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"advse-backend/internal/repository"
	"advse-backend/internal/usecase"
)

// 簡易メール形式
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type orderValidator struct {
	payments repository.PaymentMethodRepository
}

// Usecaseは interface を依存注入
func NewOrderValidator(payments repository.PaymentMethodRepository) usecase.OrderValidator {
	return &orderValidator{payments: payments}
}

// 注文作成の入力を検証
func (v *orderValidator) ValidatePlaceOrder(ctx context.Context, in usecase.PlaceOrderInput) error {
	email := strings.TrimSpace(in.Email)

	// 必須チェック
	if email == "" {
		return invalid("email required")
	}

	// email形式
	if !isEmailLike(email) {
		return invalid("invalid email")
	}

	if in.Order.Total < 0 || in.Order.Subtotal < 0 || in.Order.ShippingCost < 0 {
		return invalid("order amounts must be >= 0")
	}

	if len(in.Order.Items) == 0 {
		return invalid("order items required")
	}
	for i, it := range in.Order.Items {
		if it.ID <= 0 {
			return invalid(fmt.Sprintf("items[%d].id must be > 0", i))
		}
		if it.Quantity <= 0 {
			return invalid(fmt.Sprintf("items[%d].quantity must be > 0", i))
		}
		if it.Variant.Size <= 0 {
			return invalid(fmt.Sprintf("items[%d].variant.size must be > 0", i))
		}
		if it.Variant.Price < 0 || it.Variant.OriginalPrice < 0 ||
			it.Variant.DiscountAmount < 0 || it.Variant.DiscountPercentage < 0 {
			return invalid(fmt.Sprintf("items[%d].variant prices must be >= 0", i))
		}
	}

	if err := validateAddress("invoiceAddress", in.InvoiceAddress); err != nil {
		return err
	}
	if err := validateAddress("shippingAddress", in.ShippingAddress); err != nil {
		return err
	}

	// 支払い方法の存在チェック（DBが必要）
	if in.PaymentMethod <= 0 {
		return invalid("invalid paymentMethod")
	}
	ok, err := v.payments.Exists(ctx, in.PaymentMethod)
	if err != nil {
		return err
	}
	if !ok {
		return invalid("unknown paymentMethod")
	}

	return nil
}

func validateAddress(field string, a usecase.AddressInput) error {
	if strings.TrimSpace(a.FirstName) == "" && strings.TrimSpace(a.LastName) == "" {
		return invalid(field + ".name required")
	}
	if strings.TrimSpace(a.Street) == "" {
		return invalid(field + ".street required")
	}
	if strings.TrimSpace(a.Postcode) == "" {
		return invalid(field + ".postcode required")
	}
	if strings.TrimSpace(a.City) == "" {
		return invalid(field + ".city required")
	}
	return nil
}

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, reason)
}

func isEmailLike(s string) bool {
	return emailRe.MatchString(s)
}
