package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ItemListModePreview = "preview"
	ItemListModeAll     = "all"

	UserStoreMemory = "memory"
	UserStoreDB     = "db"
)

// Configはアプリ全体の設定
type Config struct {
	Port     string // サーバーポート（5000）
	GoEnv    string // dev/prod
	LogLevel string

	DB DBConfig

	ItemListMode string // preview/all
	UserStore    string // memory/db

	AdminJWTSecret string // 空ならブランド更新系は認証なし

	CORSAllowOrigins []string
	RateLimitRPS     float64 // 0なら無効
	RateLimitBurst   int
	RequestTimeout   time.Duration

	KafkaBrokers    []string // 空ならイベント送信しない
	KafkaOrderTopic string
}

type DBConfig struct {
	URL string // DATABASE_URL があれば最優先

	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
	StatementTimeout time.Duration
	RetryAttempts    int
	AutoMigrate      bool
}

// Loadは環境変数
func Load() (Config, error) {
	var err error
	cfg := Config{
		Port:     getenv("PORT", "5000"),
		GoEnv:    getenv("GO_ENV", "dev"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		ItemListMode: getenv("ITEM_LIST_MODE", ItemListModePreview),
		UserStore:    getenv("USER_STORE", UserStoreMemory),

		AdminJWTSecret: os.Getenv("ADMIN_JWT_SECRET"),

		CORSAllowOrigins: splitList(getenv("CORS_ALLOW_ORIGINS", "*")),
		KafkaBrokers:     splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaOrderTopic:  getenv("KAFKA_ORDER_TOPIC", "order.placed"),
	}

	cfg.DB = DBConfig{
		URL:      os.Getenv("DATABASE_URL"),
		Host:     getenv("POSTGRES_HOST", "localhost"),
		User:     getenv("POSTGRES_USER", "postgres"),
		Password: getenv("POSTGRES_PASSWORD", "postgres"),
		Name:     getenv("POSTGRES_DB", "app"),
		SSLMode:  getenv("POSTGRES_SSLMODE", "disable"),
	}

	if cfg.DB.Port, err = atoiDefault("POSTGRES_PORT", 5432); err != nil {
		return Config{}, err
	}
	if cfg.DB.MaxOpenConns, err = atoiDefault("DB_MAX_OPEN_CONNS", 20); err != nil {
		return Config{}, err
	}
	if cfg.DB.MaxIdleConns, err = atoiDefault("DB_MAX_IDLE_CONNS", 5); err != nil {
		return Config{}, err
	}
	if cfg.DB.ConnMaxLifetime, err = durationDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.DB.StatementTimeout, err = durationDefault("DB_STATEMENT_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.DB.RetryAttempts, err = atoiDefault("DB_RETRY_ATTEMPTS", 3); err != nil {
		return Config{}, err
	}
	if cfg.DB.AutoMigrate, err = boolDefault("DB_AUTO_MIGRATE", false); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = durationDefault("REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = atoiDefault("RATE_LIMIT_BURST", 20); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("RATE_LIMIT_RPS must be number: %w", err)
		}
		cfg.RateLimitRPS = f
	}

	//値チェック
	switch cfg.ItemListMode {
	case ItemListModePreview, ItemListModeAll:
	default:
		return Config{}, fmt.Errorf("ITEM_LIST_MODE must be %q or %q", ItemListModePreview, ItemListModeAll)
	}
	switch cfg.UserStore {
	case UserStoreMemory, UserStoreDB:
	default:
		return Config{}, fmt.Errorf("USER_STORE must be %q or %q", UserStoreMemory, UserStoreDB)
	}
	if cfg.DB.RetryAttempts < 0 {
		return Config{}, fmt.Errorf("DB_RETRY_ATTEMPTS must be >= 0")
	}
	if cfg.RateLimitRPS < 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS must be >= 0")
	}
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaOrderTopic == "" {
		return Config{}, fmt.Errorf("KAFKA_ORDER_TOPIC is required")
	}

	return cfg, nil
}

// Addr は ":5000" 形式
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// DSN は接続文字列。statement_timeout をセッションパラメータとして付ける。
func (d DBConfig) DSN() string {
	timeoutMS := d.StatementTimeout.Milliseconds()

	if d.URL != "" {
		if timeoutMS <= 0 {
			return d.URL
		}
		u, err := url.Parse(d.URL)
		if err != nil {
			return d.URL
		}
		q := u.Query()
		if q.Get("statement_timeout") == "" {
			q.Set("statement_timeout", strconv.FormatInt(timeoutMS, 10))
		}
		u.RawQuery = q.Encode()
		return u.String()
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
	if timeoutMS > 0 {
		dsn += fmt.Sprintf(" statement_timeout=%d", timeoutMS)
	}
	return dsn
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func durationDefault(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}

func boolDefault(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be bool: %w", key, err)
	}
	return b, nil
}

func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
