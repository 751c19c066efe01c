package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/txn-intake/internal/models"
)

func fixedAssembler() *Assembler {
	return NewAssembler(Options{
		NewID: func() string { return "txn-1" },
		Now:   func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 6_000_000, time.UTC) },
		IntN:  func(int) int { return 42 },
	})
}

func TestAssemble_CardDefaults(t *testing.T) {
	p := Payload{"cards": []any{card("4111111111111111", "09", "2030", "123")}}

	tx, err := fixedAssembler().Assemble(p)
	require.NoError(t, err)

	assert.Equal(t, "txn-1", tx.ID)
	assert.Equal(t, "user_42", tx.UserName)
	assert.Equal(t, models.StatusPending, tx.Status)
	assert.Equal(t, "2025-01-02T03:04:05.006Z", tx.CreatedAt)
	assert.Equal(t, models.TxnCard, tx.Type)
	assert.Nil(t, tx.Amount)
	require.NotNil(t, tx.Card)
	assert.Equal(t, "**** **** **** 1111", tx.Card.NumberMasked)
}

func TestAssemble_KeepsUserAndStatus(t *testing.T) {
	p := Payload{
		"type":     "DEPOSITS",
		"userName": "maria",
		"status":   "APPROVED",
		"deposit":  map[string]any{"account": "123456789012", "type": "SAVINGS"},
	}

	tx, err := fixedAssembler().Assemble(p)
	require.NoError(t, err)
	assert.Equal(t, "maria", tx.UserName)
	assert.Equal(t, "APPROVED", tx.Status)
	require.Len(t, tx.Deposit, 1)
	assert.Equal(t, "****9012", tx.Deposit[0].AccountMasked)
}

func TestAssemble_IgnoresClientCreatedAt(t *testing.T) {
	p := Payload{
		"createdAt": "1999-01-01T00:00:00.000Z",
		"cards":     []any{card("4111111111111111", "09", "2030", "123")},
	}
	tx, err := fixedAssembler().Assemble(p)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02T03:04:05.006Z", tx.CreatedAt)
}

func TestAssemble_Amount(t *testing.T) {
	tests := []struct {
		name   string
		amount any
		want   *models.Amount
	}{
		{name: "numeric string", amount: map[string]any{"amount": "12.5"}, want: &models.Amount{Amount: 12.5, Currency: "COP"}},
		{name: "number with currency", amount: map[string]any{"amount": json.Number("100"), "currency": "USD"}, want: &models.Amount{Amount: 100, Currency: "USD"}},
		{name: "null amount is zero", amount: map[string]any{"amount": nil}, want: &models.Amount{Amount: 0, Currency: "COP"}},
		{name: "non numeric dropped", amount: map[string]any{"amount": "abc", "currency": "USD"}},
		{name: "missing amount dropped", amount: map[string]any{"currency": "USD"}},
		{name: "not an object", amount: "100"},
		{name: "array", amount: []any{json.Number("100")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Payload{
				"amount": tt.amount,
				"cards":  []any{card("4111111111111111", "09", "2030", "123")},
			}
			tx, err := fixedAssembler().Assemble(p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tx.Amount)
		})
	}
}

func TestAssemble_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		wantErr string
	}{
		{name: "unknown type", payload: Payload{"type": "WIRE"}, wantErr: "Unsupported type: WIRE"},
		{name: "lower case type", payload: Payload{"type": "card"}, wantErr: "Unsupported type: card"},
		{name: "numeric type", payload: Payload{"type": json.Number("7")}, wantErr: "Unsupported type: 7"},
		{name: "default type needs cards", payload: Payload{}, wantErr: "cards must be a non-empty array"},
		{name: "empty type means card", payload: Payload{"type": ""}, wantErr: "cards must be a non-empty array"},
		{name: "alecredits goal", payload: Payload{"type": "ALECREDITS", "alecredits": []any{map[string]any{"goal": "HOLD"}}}, wantErr: "alecredits[0].goal must be SELL or BUY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := fixedAssembler().Assemble(tt.payload)
			assertRejected(t, err, tt.wantErr)
			assert.Equal(t, models.Transaction{}, tx)
		})
	}
}

func TestAssemble_AleCreditsRecord(t *testing.T) {
	p := Payload{
		"type": "ALECREDITS",
		"alecredits": map[string]any{
			"goal":                  "SELL",
			"total_credit":          json.Number("3000000"),
			"date_solicitud":        "25/12/2024",
			"want_you_hire_please?": true,
		},
	}
	tx, err := fixedAssembler().Assemble(p)
	require.NoError(t, err)

	raw, err := json.Marshal(tx)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "ALECREDITS", doc["type"])
	assert.NotContains(t, doc, "card")
	assert.NotContains(t, doc, "deposit")
	ale := doc["alecredits"].([]any)[0].(map[string]any)
	assert.Equal(t, "SELL", ale["goal"])
	assert.Equal(t, float64(3000000), ale["total_credit"])
	assert.Equal(t, "2024-12-25T00:00:00.000Z", ale["date_solicitud"])
	assert.Equal(t, true, ale["want_you_hire_please"])
}
