package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	opsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trafficgen_operations_total",
		Help: "Количество запросов к orders-service",
	}, []string{"operation", "code"})

	opsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "trafficgen_operation_duration_seconds",
		Help:    "Длительность запроса в секундах",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation"})
)

var (
	products = []string{"latte", "cappuccino", "espresso", "flat white"}
	sizes    = []string{"small", "medium", "big"}
)

type orderItem struct {
	Product  string `json:"product"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

type orderRequest struct {
	Order []orderItem `json:"order"`
}

type order struct {
	ID string `json:"id"`
}

type client struct {
	base string
	http *http.Client
}

func (c *client) do(ctx context.Context, operation, method, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	opsDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		opsCounter.WithLabelValues(operation, "error").Inc()
		return err
	}
	defer resp.Body.Close()
	opsCounter.WithLabelValues(operation, fmt.Sprint(resp.StatusCode)).Inc()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s: status %d", operation, resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func randomItem() orderItem {
	return orderItem{
		Product:  products[rand.IntN(len(products))],
		Size:     sizes[rand.IntN(len(sizes))],
		Quantity: 1 + rand.IntN(3),
	}
}

// lifecycle полный путь заказа: создание, чтение, изменение, оплата, отмена, удаление.
func (c *client) lifecycle(ctx context.Context) error {
	var created order
	if err := c.do(ctx, "create", http.MethodPost, "/orders", orderRequest{Order: []orderItem{randomItem()}}, &created); err != nil {
		return err
	}
	path := "/orders/" + created.ID

	steps := []struct {
		operation string
		method    string
		path      string
		body      any
	}{
		{"get", http.MethodGet, path, nil},
		{"update", http.MethodPut, path, orderRequest{Order: []orderItem{randomItem()}}},
		{"pay", http.MethodPost, path + "/pay", nil},
		{"cancel", http.MethodPost, path + "/cancel", nil},
		{"list", http.MethodGet, "/orders", nil},
		{"delete", http.MethodDelete, path, nil},
	}
	var errs []error
	for _, s := range steps {
		errs = append(errs, c.do(ctx, s.operation, s.method, s.path, s.body, nil))
	}
	return errors.Join(errs...)
}

func main() {
	target := flag.String("target", "http://localhost:8080", "orders-service base url")
	interval := flag.Duration("interval", time.Second, "pause between lifecycles")
	metricsAddr := flag.String("metrics", ":2112", "metrics listen address")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		//nolint:gosec // вспомогательная утилита
		if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
			log.Printf("metrics server: %v", err)
		}
	}()

	c := &client{base: *target, http: &http.Client{Timeout: 5 * time.Second}}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.lifecycle(ctx); err != nil {
				log.Printf("lifecycle: %v", err)
			}
		}
	}
}
