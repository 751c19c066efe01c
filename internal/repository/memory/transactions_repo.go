package memory

import (
	"context"
	"sync"

	"github.com/baharkarakas/txn-intake/internal/models"
	"github.com/google/uuid"
)

// Transactions keeps documents in process memory. Used for local runs and
// tests.
type Transactions struct {
	mu   sync.Mutex
	docs map[string]models.Transaction
}

func NewTransactions() *Transactions {
	return &Transactions{docs: map[string]models.Transaction{}}
}

func (r *Transactions) Create(_ context.Context, tx models.Transaction) (string, error) {
	id := uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[id] = tx
	return id, nil
}

// Get returns a stored document by the id Create returned.
func (r *Transactions) Get(id string) (models.Transaction, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.docs[id]
	return tx, ok
}

func (r *Transactions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.docs)
}
