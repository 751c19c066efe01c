package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/baharkarakas/txn-intake/internal/api/validate"
	"github.com/baharkarakas/txn-intake/internal/metrics"
	"github.com/baharkarakas/txn-intake/internal/models"
	repo "github.com/baharkarakas/txn-intake/internal/repository"
)

type TransactionService struct {
	trx repo.Transactions
	asm *Assembler
}

func NewTransactionService(t repo.Transactions, asm *Assembler) *TransactionService {
	if asm == nil {
		asm = NewAssembler(Options{})
	}
	return &TransactionService{trx: t, asm: asm}
}

// Save assembles a record from p and appends it to the store. Rejections are
// *validate.ErrField and never reach the store. The returned id is the one
// generated by the store.
func (s *TransactionService) Save(ctx context.Context, p Payload) (string, models.Transaction, error) {
	tx, err := s.asm.Assemble(p)
	if err != nil {
		var fe *validate.ErrField
		if errors.As(err, &fe) {
			metrics.TransactionsRejected.WithLabelValues(fe.Field).Inc()
		}
		return "", models.Transaction{}, err
	}

	id, err := s.trx.Create(ctx, tx)
	if err != nil {
		metrics.TransactionsFailed.Inc()
		return "", models.Transaction{}, fmt.Errorf("store transaction %s: %w", tx.ID, err)
	}
	metrics.TransactionsTotal.WithLabelValues(string(tx.Type)).Inc()
	slog.InfoContext(ctx, "transaction saved", "doc_id", id, "txn_id", tx.ID, "type", tx.Type)
	return id, tx, nil
}
