package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"advse-backend/internal/config"
	"advse-backend/internal/domain/model"
	"advse-backend/internal/handler"
	"advse-backend/internal/infra/db"
	"advse-backend/internal/infra/events"
	"advse-backend/internal/infra/memory"
	infraRepo "advse-backend/internal/infra/repository"
	"advse-backend/internal/logger"
	"advse-backend/internal/middleware"
	"advse-backend/internal/repository"
	"advse-backend/internal/server"
	"advse-backend/internal/usecase"
	"advse-backend/internal/validator"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	//.env はなくてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("prod", "info")
		boot.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.GoEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	//DB接続
	gormDB, err := db.Connect(ctx, cfg.DB, log)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.DB.AutoMigrate {
		if err := gormDB.AutoMigrate(model.All()...); err != nil {
			return err
		}
	}

	retry := db.Retry{Attempts: uint64(cfg.DB.RetryAttempts), Initial: 100 * time.Millisecond}

	//Repository（GORM実装）生成
	itemRepo := infraRepo.NewItemGormRepository(gormDB, retry)
	brandRepo := infraRepo.NewBrandGormRepository(gormDB, retry)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB, retry)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB, retry)
	addressRepo := infraRepo.NewOrderAddressGormRepository(gormDB, retry)
	paymentRepo := infraRepo.NewPaymentMethodGormRepository(gormDB, retry)
	txm := infraRepo.NewTxManagerGorm(gormDB, retry)

	var userStore repository.UserStore
	switch cfg.UserStore {
	case config.UserStoreDB:
		userStore = infraRepo.NewUserGormStore(gormDB)
	default:
		userStore = memory.NewUserStore(model.DefaultUsers())
	}

	//注文イベント（KAFKA_BROKERS がなければ送らない）
	var publisher events.Publisher = events.NewNoopPublisher(log)
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaOrderTopic))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warn().Err(err).Msg("close publisher")
		}
	}()

	//Usecase生成
	itemUC := usecase.NewItemUsecase(itemRepo, cfg.ItemListMode == config.ItemListModeAll)
	brandUC := usecase.NewBrandUsecase(brandRepo)
	orderUC := usecase.NewOrderUsecase(
		txm, orderRepo, orderItemRepo, addressRepo,
		validator.NewOrderValidator(paymentRepo),
		publisher, log,
	)
	paymentUC := usecase.NewPaymentUsecase(paymentRepo)
	userUC := usecase.NewUserUsecase(userStore)

	//Handler生成
	handlers := server.Handlers{
		Health:   handler.NewHealthHandler(sqlDB, log),
		Items:    handler.NewItemHandler(itemUC, log),
		Brands:   handler.NewBrandHandler(brandUC, log),
		Orders:   handler.NewOrderHandler(orderUC, log),
		Payments: handler.NewPaymentHandler(paymentUC, log),
		Users:    handler.NewUserHandler(userUC, log),
	}

	var rl *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		rl = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, log)
		rl.StartCleanup(ctx, time.Minute)
	}

	//Server起動
	e := server.New(cfg, log, handlers, rl)
	return server.Start(ctx, e, cfg.Addr(), log)
}
