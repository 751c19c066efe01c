package services

import "github.com/baharkarakas/txn-intake/internal/models"

// kind pairs the validator and the record builder of one transaction type.
// Every type accepted by kindOf has to provide both.
type kind interface {
	validate(p Payload) error
	build(p Payload) models.Detail
}

type cardKind struct{}
type depositsKind struct{}
type aleCreditsKind struct{}

func kindOf(t models.TransactionType) (kind, bool) {
	switch t {
	case models.TxnCard:
		return cardKind{}, true
	case models.TxnDeposits:
		return depositsKind{}, true
	case models.TxnAleCredits:
		return aleCreditsKind{}, true
	}
	return nil, false
}

// arrayFields lists the fields that may arrive as a single object.
var arrayFields = []string{"cards", "deposit", "alecredits"}

func normalize(p Payload) {
	for _, f := range arrayFields {
		EnsureArrayField(p, f)
	}
}
