package services

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/baharkarakas/txn-intake/internal/api/validate"
	"github.com/baharkarakas/txn-intake/internal/models"
)

// Options holds the nondeterministic sources used by the Assembler.
// Zero fields fall back to uuid v4, the wall clock and math/rand.
type Options struct {
	NewID func() string
	Now   func() time.Time
	IntN  func(n int) int
}

type Assembler struct {
	newID func() string
	now   func() time.Time
	intN  func(n int) int
}

func NewAssembler(o Options) *Assembler {
	a := &Assembler{newID: o.NewID, now: o.Now, intN: o.IntN}
	if a.newID == nil {
		a.newID = uuid.NewString
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.intN == nil {
		a.intN = rand.Intn
	}
	return a
}

// TypeOf returns the declared transaction type, CARD when none is given.
func TypeOf(p Payload) models.TransactionType {
	if v := p["type"]; truthy(v) {
		return models.TransactionType(stringOf(v))
	}
	return models.TxnCard
}

// Assemble validates p for its declared type and returns the record to store.
// p is normalized in place. No record is produced for an invalid payload.
func (a *Assembler) Assemble(p Payload) (models.Transaction, error) {
	t := TypeOf(p)
	k, ok := kindOf(t)
	if !ok {
		return models.Transaction{}, validate.Fail("type", "Unsupported type: "+string(t))
	}
	normalize(p)
	if err := k.validate(p); err != nil {
		return models.Transaction{}, err
	}

	tx := models.Transaction{
		ID:        a.newID(),
		UserName:  "user_" + strconv.Itoa(a.intN(1000)),
		Status:    models.StatusPending,
		CreatedAt: isoTime(a.now()),
		Type:      t,
		Amount:    amountOf(p["amount"]),
		Detail:    k.build(p),
	}
	if v := p["userName"]; truthy(v) {
		tx.UserName = stringOf(v)
	}
	if v := p["status"]; truthy(v) {
		tx.Status = stringOf(v)
	}
	return tx, nil
}

// amountOf drops the amount entirely when its value is not numeric.
func amountOf(v any) *models.Amount {
	m, isMap := v.(map[string]any)
	if !isMap {
		return nil
	}
	raw, present := m["amount"]
	if !present {
		return nil
	}
	n, ok := numberOf(raw)
	if !ok {
		return nil
	}
	cur := models.DefaultCurrency
	if c := m["currency"]; truthy(c) {
		cur = stringOf(c)
	}
	return &models.Amount{Amount: n, Currency: cur}
}
