package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64
	// MaxRetries 0 - ограничение только по MaxElapsedTime
	MaxRetries uint64

	// nil - ретраятся все ошибки, иначе только те, где функция вернула true
	ShouldRetry ShouldRetryFunc

	// OnRetry вызывается перед каждой паузой, nil - ничего не делать
	OnRetry func(err error, next time.Duration)
}

// StartupConfig параметры ожидания зависимостей (БД, брокер) при старте процесса.
func StartupConfig() Config {
	return Config{
		InitialInterval: time.Second,
		MaxInterval:     10 * time.Second,
		MaxElapsedTime:  time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}
