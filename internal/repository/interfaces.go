package repository

import (
	"context"

	"github.com/baharkarakas/txn-intake/internal/models"
)

// Transactions is an append-only document store.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=interfaces.go Transactions
type Transactions interface {
	// Create stores tx and returns the identifier generated by the store.
	Create(ctx context.Context, tx models.Transaction) (string, error)
}
