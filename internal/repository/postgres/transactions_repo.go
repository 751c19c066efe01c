package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/baharkarakas/txn-intake/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type transactionsRepo struct{ pool *pgxpool.Pool }

// Create appends tx as a jsonb document. The returned id is the document
// key, not tx.ID.
func (r *transactionsRepo) Create(ctx context.Context, tx models.Transaction) (string, error) {
	doc, err := json.Marshal(tx)
	if err != nil {
		return "", fmt.Errorf("encode transaction: %w", err)
	}
	const q = `
INSERT INTO transaction_documents (doc_id, txn_id, type, doc)
VALUES ($1, $2, $3, $4)
RETURNING doc_id;
`
	var id string
	err = r.pool.QueryRow(ctx, q, uuid.NewString(), tx.ID, string(tx.Type), doc).Scan(&id)
	return id, err
}
