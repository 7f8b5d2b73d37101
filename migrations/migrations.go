// Package migrations схема БД, применяется goose при старте сервиса.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
