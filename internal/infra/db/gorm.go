package db

import (
	"context"
	"fmt"
	"time"

	"advse-backend/internal/config"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
// 起動直後にDBがまだ立ち上がっていないことがあるので、接続確認はリトライする。
func Connect(ctx context.Context, cfg config.DBConfig, log zerolog.Logger) (*gorm.DB, error) {
	gormDB, err := Open(postgres.Open(cfg.DSN()), log)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	retry := Retry{Attempts: uint64(cfg.RetryAttempts), Initial: 500 * time.Millisecond}
	err = retry.Do(ctx, func(ctx context.Context) error {
		return sqlDB.PingContext(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return gormDB, nil
}

// Open は共通設定で gorm を開く（テストでは sqlmock の Dialector を渡す）。
func Open(dialector gorm.Dialector, log zerolog.Logger) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		//一意制約/外部キー違反を gorm.ErrDuplicatedKey などに変換
		TranslateError: true,

		//1文ごとの暗黙トランザクションは不要（注文作成は TxManager で囲む）
		SkipDefaultTransaction: true,

		Logger: gormlogger.New(&log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	})
}
