package openapi_validator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"orders/internal/generated/dto"
	"orders/pkg/logger"
)

// NewRouter загружает и проверяет OpenAPI документ.
func NewRouter(ctx context.Context, spec []byte) (routers.Router, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("load openapi spec: %w", err)
	}

	err = doc.Validate(ctx)
	if err != nil {
		return nil, fmt.Errorf("validate openapi spec: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi router: %w", err)
	}
	return router, nil
}

// Middleware отвечает 422 на запросы, не прошедшие схему. Маршруты вне документа
// (например /metrics) пропускаются без проверки.
func Middleware(log handlerLogger, router routers.Router) func(http.Handler) http.Handler {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			// тело читается и восстанавливается внутри ValidateRequest
			err = openapi3filter.ValidateRequest(r.Context(), &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("request rejected by schema")

				writeUnprocessable(w, log, detail(err))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// detail короткое сообщение для клиента, полная ошибка kin-openapi уходит только в лог.
func detail(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return "request does not match schema"
	}
	if reqErr.Parameter != nil {
		return fmt.Sprintf("invalid parameter %q", reqErr.Parameter.Name)
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr, &schemaErr) {
		return fmt.Sprintf("Error at %q: %s", "/"+strings.Join(schemaErr.JSONPointer(), "/"), schemaErr.Reason)
	}

	// без Content-Type или с чужим типом kin-openapi заполняет только Reason, Err пустой
	if reqErr.Err != nil {
		return "request body does not match schema: " + firstLine(reqErr.Err.Error())
	}
	if reqErr.Reason != "" {
		return reqErr.Reason
	}
	return "request does not match schema"
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func writeUnprocessable(w http.ResponseWriter, log handlerLogger, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	err := json.NewEncoder(w).Encode(dto.ErrorResponse{Detail: msg})
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
