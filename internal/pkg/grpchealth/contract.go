//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=grpchealth_test
package grpchealth

import "context"

type pinger interface {
	Ping(ctx context.Context) error
}
