package rate_limiter

import "orders/pkg/logger"

// Limiter выдаёт токен на запрос, см. pkg/token_bucket.
type Limiter interface {
	Allow() bool
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
