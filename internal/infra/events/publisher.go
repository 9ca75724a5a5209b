package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// 注文確定イベント
type OrderPlaced struct {
	OrderID         int64     `json:"order_id"`
	Email           string    `json:"email"`
	Total           float64   `json:"total"`
	PaymentMethodID int64     `json:"payment_method_id"`
	ItemCount       int       `json:"item_count"`
	PlacedAt        time.Time `json:"placed_at"`
}

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, ev OrderPlaced) error
	Close() error
}

// kafka へ書き込むだけの薄い層（テストでは MessageWriter を差し替える）
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	w MessageWriter
}

// ブローカーへの接続は最初の書き込み時に張られる
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.CRC32Balancer{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           5 * time.Second,
	}
}

func NewKafkaPublisher(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{w: w}
}

func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, ev OrderPlaced) error {
	msg, err := orderPlacedMessage(ev)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

// key は注文ID（同じ注文は同じパーティション）
func orderPlacedMessage(ev OrderPlaced) (kafka.Message, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(ev.OrderID, 10)),
		Value: body,
		Time:  ev.PlacedAt,
	}, nil
}

// KAFKA_BROKERS 未設定のとき
type NoopPublisher struct {
	log zerolog.Logger
}

func NewNoopPublisher(log zerolog.Logger) *NoopPublisher {
	return &NoopPublisher{log: log}
}

func (p *NoopPublisher) PublishOrderPlaced(ctx context.Context, ev OrderPlaced) error {
	p.log.Debug().Int64("order_id", ev.OrderID).Msg("order event skipped (no brokers)")
	return nil
}

func (p *NoopPublisher) Close() error { return nil }

var (
	_ Publisher     = (*KafkaPublisher)(nil)
	_ Publisher     = (*NoopPublisher)(nil)
	_ MessageWriter = (*kafka.Writer)(nil)
)
