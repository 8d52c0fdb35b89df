package infra

import "context"

type QRClientInterface interface {
	GenerateTableCode(ctx context.Context, tableNumber int) (string, error)
}

var _ QRClientInterface = (*QRClient)(nil)
