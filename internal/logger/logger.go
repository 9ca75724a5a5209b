// Package logger は zerolog のロガーを作る。
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New は GO_ENV=dev ならコンソール出力、それ以外は JSON。
func New(goEnv string, level string) zerolog.Logger {
	return NewWithWriter(os.Stdout, goEnv, level)
}

func NewWithWriter(w io.Writer, goEnv string, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if goEnv == "dev" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Str("service", "advse-backend").Logger()
}
