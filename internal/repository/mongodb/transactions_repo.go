package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/baharkarakas/txn-intake/internal/models"
	"github.com/baharkarakas/txn-intake/internal/repository"
)

type transactionsRepo struct{ coll *mongo.Collection }

func NewTransactions(coll *mongo.Collection) repository.Transactions {
	return &transactionsRepo{coll: coll}
}

// Create inserts tx and returns the hex form of the generated ObjectID.
func (r *transactionsRepo) Create(ctx context.Context, tx models.Transaction) (string, error) {
	res, err := r.coll.InsertOne(ctx, tx)
	if err != nil {
		return "", err
	}
	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}
