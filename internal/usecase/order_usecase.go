package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"advse-backend/internal/domain/aggregate"
	"advse-backend/internal/domain/model"
	"advse-backend/internal/domain/pricing"
	"advse-backend/internal/infra/events"
	"advse-backend/internal/metrics"
	repo "advse-backend/internal/repository"

	"github.com/rs/zerolog"
)

// 注文＋明細配列＋請求先・配送先（明細の行数ぶん住所が重複しても1件にする）
var orderShape = aggregate.Shape{
	Key: "id",
	Fields: append(
		aggregate.Fs("id", "email", "total", "subtotal", "shipping_cost", "payment_method_id", "payment_method_name", "status"),
		aggregate.As("order_created", "created"),
		aggregate.As("order_timestamp", "timestamp"),
	),
	Many: []aggregate.Group{
		{
			Name:     "order_items",
			Identity: []string{"order_item_pk"},
			Fields: append(
				aggregate.Fs("order_item_id", "size", "quantity", "price", "original_price", "discount_amount", "discount_percentage"),
				aggregate.As("order_item_created", "created"),
				aggregate.As("order_item_timestamp", "timestamp"),
			),
		},
	},
	One: []aggregate.Group{
		{Name: "invoice_address", Identity: []string{"invoice_order_id"}, Fields: addressFields("invoice_")},
		{Name: "shipping_address", Identity: []string{"shipping_order_id"}, Fields: addressFields("shipping_")},
	},
}

func addressFields(prefix string) []aggregate.Field {
	return []aggregate.Field{
		aggregate.As(prefix+"salutation", "salutation"),
		aggregate.As(prefix+"name", "name"),
		aggregate.As(prefix+"address_line", "address"),
		aggregate.As(prefix+"additional_address", "additional_address"),
		aggregate.As(prefix+"postcode", "postcode"),
		aggregate.As(prefix+"city", "city"),
		aggregate.As(prefix+"phone_number", "phone_number"),
		aggregate.As(prefix+"created", "created"),
		aggregate.As(prefix+"timestamp", "timestamp"),
	}
}

type OrderSummaryDTO struct {
	ID                int64     `json:"id"`
	Email             string    `json:"email"`
	Total             float64   `json:"total"`
	Subtotal          float64   `json:"subtotal"`
	ShippingCost      float64   `json:"shipping_cost"`
	PaymentMethodID   int64     `json:"payment_method_id"`
	PaymentMethodName string    `json:"payment_method_name"`
	Status            int       `json:"status"`
	Created           time.Time `json:"created"`
	Timestamp         time.Time `json:"timestamp"`
}

type OrderItemDTO struct {
	OrderItemID        int64     `json:"order_item_id"`
	Size               int64     `json:"size"`
	Quantity           int64     `json:"quantity"`
	Price              float64   `json:"price"`
	OriginalPrice      float64   `json:"original_price"`
	DiscountAmount     float64   `json:"discount_amount"`
	DiscountPercentage float64   `json:"discount_percentage"`
	BaseSize           int       `json:"base_size"`
	BasePrice          *float64  `json:"base_price"`
	Created            time.Time `json:"created"`
	Timestamp          time.Time `json:"timestamp"`
}

type OrderAddressDTO struct {
	Salutation        string    `json:"salutation"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	AdditionalAddress string    `json:"additional_address"`
	Postcode          string    `json:"postcode"`
	City              string    `json:"city"`
	PhoneNumber       string    `json:"phone_number"`
	Created           time.Time `json:"created"`
	Timestamp         time.Time `json:"timestamp"`
}

type OrderDTO struct {
	OrderSummaryDTO
	OrderItems      []OrderItemDTO   `json:"order_items"`
	InvoiceAddress  *OrderAddressDTO `json:"invoice_address"`
	ShippingAddress *OrderAddressDTO `json:"shipping_address"`
}

// POST /orders のリクエスト（クライアントの既存フォーマットのまま）
type PlaceOrderInput struct {
	Email           string       `json:"email"`
	PaymentMethod   int64        `json:"paymentMethod"`
	Order           OrderInput   `json:"order"`
	InvoiceAddress  AddressInput `json:"invoiceAddress"`
	ShippingAddress AddressInput `json:"shippingAddress"`
}

type OrderInput struct {
	Total        float64          `json:"total"`
	Subtotal     float64          `json:"subtotal"`
	ShippingCost float64          `json:"shippingCost"`
	Items        []OrderItemInput `json:"items"`
}

type OrderItemInput struct {
	ID       int64        `json:"id"`
	Quantity int64        `json:"quantity"`
	Variant  VariantInput `json:"variant"`
}

type VariantInput struct {
	Size               int64   `json:"size"`
	Price              float64 `json:"price"`
	OriginalPrice      float64 `json:"original_price"`
	DiscountAmount     float64 `json:"discount_amount"`
	DiscountPercentage float64 `json:"discount_percentage"`
}

type AddressInput struct {
	Salutation        string `json:"salutation"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Street            string `json:"street"`
	HouseNumber       string `json:"houseNumber"`
	AdditionalAddress string `json:"additionalAddress"`
	Postcode          string `json:"postcode"`
	City              string `json:"city"`
	PhoneNumber       string `json:"phoneNumber"`
}

// 入力チェック（DB参照あり）。不正なら ErrInvalidInput をラップして返す。
type OrderValidator interface {
	ValidatePlaceOrder(ctx context.Context, in PlaceOrderInput) error
}

type OrderUsecase struct {
	tx        repo.TransactionManager
	orders    repo.OrderRepository
	items     repo.OrderItemRepository
	addresses repo.OrderAddressRepository
	validator OrderValidator
	events    events.Publisher
	log       zerolog.Logger
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	items repo.OrderItemRepository,
	addresses repo.OrderAddressRepository,
	validator OrderValidator,
	publisher events.Publisher,
	log zerolog.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		tx:        tx,
		orders:    orders,
		items:     items,
		addresses: addresses,
		validator: validator,
		events:    publisher,
		log:       log,
	}
}

// email が空なら全件
func (u *OrderUsecase) List(ctx context.Context, email string) ([]OrderSummaryDTO, error) {
	var f repo.OrderListFilter
	if e := strings.TrimSpace(email); e != "" {
		f.Email = &e
	}

	list, err := u.orders.List(ctx, f)
	if err != nil {
		return nil, internalError(err)
	}

	out := make([]OrderSummaryDTO, 0, len(list))
	for _, s := range list {
		out = append(out, OrderSummaryDTO{
			ID:                s.ID,
			Email:             s.Email,
			Total:             pricing.Round2(s.Total),
			Subtotal:          pricing.Round2(s.Subtotal),
			ShippingCost:      pricing.Round2(s.ShippingCost),
			PaymentMethodID:   s.PaymentMethodID,
			PaymentMethodName: s.PaymentMethodName,
			Status:            int(s.Status),
			Created:           s.Created,
			Timestamp:         s.Timestamp,
		})
	}
	return out, nil
}

func (u *OrderUsecase) Get(ctx context.Context, orderID int64) (OrderDTO, error) {
	if orderID <= 0 {
		return OrderDTO{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	rows, err := u.orders.DetailRows(ctx, orderID)
	if err != nil {
		return OrderDTO{}, internalError(err)
	}

	doc, err := orderShape.Single(rows)
	if errors.Is(err, aggregate.ErrNotFound) {
		return OrderDTO{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return OrderDTO{}, internalError(err)
	}
	return orderFromDocument(doc), nil
}

// 注文・明細・住所2件を1つのTxで作成し、注文IDを返す
func (u *OrderUsecase) Place(ctx context.Context, in PlaceOrderInput) (int64, error) {
	if err := u.validator.ValidatePlaceOrder(ctx, in); err != nil {
		metrics.RecordOrder("rejected")
		if errors.Is(err, ErrInvalidInput) {
			return 0, WrapHTTPError(http.StatusBadRequest, err.Error(), err)
		}
		return 0, internalError(err)
	}

	email := strings.TrimSpace(in.Email)
	var orderID int64

	//注文処理はトランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orderItems := make([]model.OrderItem, 0, len(in.Order.Items))

		for _, it := range in.Order.Items {
			//バリアントの存在確認
			if _, err := r.Items().FindVariant(ctx, it.ID, it.Variant.Size); err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return NewHTTPError(http.StatusBadRequest, "unknown item variant")
				}
				return internalError(err)
			}

			//在庫減算（足りないなら false）
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ID, it.Variant.Size, it.Quantity)
			if err != nil {
				return internalError(err)
			}
			if !ok {
				return NewHTTPError(http.StatusConflict, "out of stock")
			}

			//スナップショット
			orderItems = append(orderItems, model.OrderItem{
				OrderItemID:        it.ID,
				Size:               it.Variant.Size,
				Quantity:           it.Quantity,
				Price:              pricing.Round2(it.Variant.Price),
				OriginalPrice:      pricing.Round2(it.Variant.OriginalPrice),
				DiscountAmount:     pricing.Round2(it.Variant.DiscountAmount),
				DiscountPercentage: pricing.Round2(it.Variant.DiscountPercentage),
			})
		}

		id, err := r.Orders().Create(ctx, model.Order{
			Email:           email,
			Total:           pricing.Round2(in.Order.Total),
			Subtotal:        pricing.Round2(in.Order.Subtotal),
			ShippingCost:    pricing.Round2(in.Order.ShippingCost),
			PaymentMethodID: in.PaymentMethod,
			Status:          model.OrderStatusPlaced,
		})
		if errors.Is(err, repo.ErrConflict) {
			return WrapHTTPError(http.StatusBadRequest, "unknown payment method", err)
		}
		if err != nil {
			return internalError(err)
		}

		//注文明細一括作成
		if err := r.OrderItems().CreateBulk(ctx, id, orderItems); err != nil {
			return internalError(err)
		}

		if err := r.OrderAddresses().CreateInvoice(ctx, toOrderAddress(id, in.InvoiceAddress)); err != nil {
			return internalError(err)
		}
		if err := r.OrderAddresses().CreateShipping(ctx, toOrderAddress(id, in.ShippingAddress)); err != nil {
			return internalError(err)
		}

		orderID = id
		return nil
	})
	if err != nil {
		if he, ok := AsHTTPError(err); ok && he.Status < http.StatusInternalServerError {
			metrics.RecordOrder("rejected")
		} else {
			metrics.RecordOrder("failed")
		}
		return 0, err
	}
	metrics.RecordOrder("placed")

	//イベントは失敗しても注文は成立
	ev := events.OrderPlaced{
		OrderID:         orderID,
		Email:           email,
		Total:           pricing.Round2(in.Order.Total),
		PaymentMethodID: in.PaymentMethod,
		ItemCount:       len(in.Order.Items),
		PlacedAt:        time.Now().UTC(),
	}
	if err := u.events.PublishOrderPlaced(ctx, ev); err != nil {
		u.log.Warn().Err(err).Int64("order_id", orderID).Msg("publish order event")
	}

	return orderID, nil
}

func (u *OrderUsecase) ListItems(ctx context.Context, orderID int64) ([]OrderItemDTO, error) {
	if err := u.ensureOrder(ctx, orderID); err != nil {
		return nil, err
	}

	list, err := u.items.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, internalError(err)
	}

	out := make([]OrderItemDTO, 0, len(list))
	for _, it := range list {
		out = append(out, orderItemFromModel(it))
	}
	return out, nil
}

// itemID は商品ID（同じ商品が複数サイズあれば最後の明細）
func (u *OrderUsecase) GetItem(ctx context.Context, orderID int64, itemID int64) (OrderItemDTO, error) {
	if orderID <= 0 {
		return OrderItemDTO{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	if itemID <= 0 {
		return OrderItemDTO{}, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	it, err := u.items.FindByOrderAndItem(ctx, orderID, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderItemDTO{}, NewHTTPError(http.StatusNotFound, "order item not found")
	}
	if err != nil {
		return OrderItemDTO{}, internalError(err)
	}
	return orderItemFromModel(it), nil
}

func (u *OrderUsecase) InvoiceAddress(ctx context.Context, orderID int64) (OrderAddressDTO, error) {
	return u.address(ctx, orderID, u.addresses.FindInvoice)
}

func (u *OrderUsecase) ShippingAddress(ctx context.Context, orderID int64) (OrderAddressDTO, error) {
	return u.address(ctx, orderID, u.addresses.FindShipping)
}

func (u *OrderUsecase) address(
	ctx context.Context,
	orderID int64,
	find func(ctx context.Context, orderID int64) (model.OrderAddress, error),
) (OrderAddressDTO, error) {
	if orderID <= 0 {
		return OrderAddressDTO{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	a, err := find(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderAddressDTO{}, NewHTTPError(http.StatusNotFound, "address not found")
	}
	if err != nil {
		return OrderAddressDTO{}, internalError(err)
	}
	return OrderAddressDTO{
		Salutation:        a.Salutation,
		Name:              a.Name,
		Address:           a.Address,
		AdditionalAddress: a.AdditionalAddress,
		Postcode:          a.Postcode,
		City:              a.City,
		PhoneNumber:       a.PhoneNumber,
		Created:           a.Created,
		Timestamp:         a.Timestamp,
	}, nil
}

func (u *OrderUsecase) ensureOrder(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	ok, err := u.orders.Exists(ctx, orderID)
	if err != nil {
		return internalError(err)
	}
	if !ok {
		return NewHTTPError(http.StatusNotFound, "order not found")
	}
	return nil
}

// 名前は「名 姓」、住所は「通り 番地」
func toOrderAddress(orderID int64, in AddressInput) model.OrderAddress {
	return model.OrderAddress{
		OrderID:           orderID,
		Salutation:        strings.TrimSpace(in.Salutation),
		Name:              strings.TrimSpace(strings.TrimSpace(in.FirstName) + " " + strings.TrimSpace(in.LastName)),
		Address:           strings.TrimSpace(strings.TrimSpace(in.Street) + " " + strings.TrimSpace(in.HouseNumber)),
		AdditionalAddress: strings.TrimSpace(in.AdditionalAddress),
		Postcode:          strings.TrimSpace(in.Postcode),
		City:              strings.TrimSpace(in.City),
		PhoneNumber:       strings.TrimSpace(in.PhoneNumber),
	}
}

func orderFromDocument(d aggregate.Document) OrderDTO {
	f := d.Fields
	out := OrderDTO{
		OrderSummaryDTO: OrderSummaryDTO{
			ID:                f.Int64("id"),
			Email:             f.String("email"),
			Total:             pricing.Round2(f.Float64("total")),
			Subtotal:          pricing.Round2(f.Float64("subtotal")),
			ShippingCost:      pricing.Round2(f.Float64("shipping_cost")),
			PaymentMethodID:   f.Int64("payment_method_id"),
			PaymentMethodName: f.String("payment_method_name"),
			Status:            int(f.Int64("status")),
			Created:           f.Time("created"),
			Timestamp:         f.Time("timestamp"),
		},
	}

	rows := d.Many["order_items"]
	out.OrderItems = make([]OrderItemDTO, 0, len(rows))
	for _, r := range rows {
		price := r.Float64("price")
		size := r.Int64("size")
		out.OrderItems = append(out.OrderItems, OrderItemDTO{
			OrderItemID:        r.Int64("order_item_id"),
			Size:               size,
			Quantity:           r.Int64("quantity"),
			Price:              pricing.Round2(price),
			OriginalPrice:      pricing.Round2(r.Float64("original_price")),
			DiscountAmount:     pricing.Round2(r.Float64("discount_amount")),
			DiscountPercentage: pricing.Round2(r.Float64("discount_percentage")),
			BaseSize:           pricing.BaseSize,
			BasePrice:          basePriceOf(price, size),
			Created:            r.Time("created"),
			Timestamp:          r.Time("timestamp"),
		})
	}

	out.InvoiceAddress = addressFromRow(d.One["invoice_address"])
	out.ShippingAddress = addressFromRow(d.One["shipping_address"])
	return out
}

func addressFromRow(r aggregate.Row) *OrderAddressDTO {
	if r == nil {
		return nil
	}
	return &OrderAddressDTO{
		Salutation:        r.String("salutation"),
		Name:              r.String("name"),
		Address:           r.String("address"),
		AdditionalAddress: r.String("additional_address"),
		Postcode:          r.String("postcode"),
		City:              r.String("city"),
		PhoneNumber:       r.String("phone_number"),
		Created:           r.Time("created"),
		Timestamp:         r.Time("timestamp"),
	}
}

func orderItemFromModel(it model.OrderItem) OrderItemDTO {
	return OrderItemDTO{
		OrderItemID:        it.OrderItemID,
		Size:               it.Size,
		Quantity:           it.Quantity,
		Price:              pricing.Round2(it.Price),
		OriginalPrice:      pricing.Round2(it.OriginalPrice),
		DiscountAmount:     pricing.Round2(it.DiscountAmount),
		DiscountPercentage: pricing.Round2(it.DiscountPercentage),
		BaseSize:           pricing.BaseSize,
		BasePrice:          basePriceOf(it.Price, it.Size),
		Created:            it.Created,
		Timestamp:          it.Timestamp,
	}
}
