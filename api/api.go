// Package api HTTP контракт сервиса. Из openapi.yaml генерируются dto и по нему
// же валидируются входящие запросы.
package api

import _ "embed"

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -config oapi-codegen.yaml openapi.yaml

//go:embed openapi.yaml
var OpenAPISpec []byte
