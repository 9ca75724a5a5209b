package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
)

// Retry は一時的な接続エラーだけを指数バックオフで再試行する。
// ゼロ値は再試行なし（トランザクション内のリポジトリ用）。
type Retry struct {
	Attempts uint64
	Initial  time.Duration
}

func (r Retry) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if r.Attempts == 0 {
		return fn(ctx)
	}

	b := backoff.NewExponentialBackOff()
	if r.Initial > 0 {
		b.InitialInterval = r.Initial
	}
	b.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(b, r.Attempts), ctx)

	return backoff.Retry(func() error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
}

// IsTransient は再試行してよい（SQLがサーバーに届いていない）エラーか。
// 送信後の接続切れ（COMMIT 中の reset など）は結果が分からないので再試行しない。
// タイムアウトやキャンセルも再試行しない。
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	return pgconn.SafeToRetry(err)
}
