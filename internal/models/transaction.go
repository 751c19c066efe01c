package models

type TransactionType string

const (
	TxnCard       TransactionType = "CARD"
	TxnDeposits   TransactionType = "DEPOSITS"
	TxnAleCredits TransactionType = "ALECREDITS"
)

const (
	StatusPending   = "PENDING"
	DefaultCurrency = "COP"
)

// Transaction is the sanitized document handed to the store. Exactly one of
// Card, Deposit or AleCredits is set and it matches Type.
type Transaction struct {
	ID        string          `json:"id" bson:"id"`
	UserName  string          `json:"userName" bson:"userName"`
	Status    string          `json:"status" bson:"status"`
	CreatedAt string          `json:"createdAt" bson:"createdAt"`
	Type      TransactionType `json:"type" bson:"type"`
	Amount    *Amount         `json:"amount,omitempty" bson:"amount,omitempty"`
	Detail    `bson:",inline"`
}

type Amount struct {
	Amount   float64 `json:"amount" bson:"amount"`
	Currency string  `json:"currency" bson:"currency"`
}

// Detail is the type-specific, already masked part of a Transaction.
type Detail struct {
	Card       *CardRecord       `json:"card,omitempty" bson:"card,omitempty"`
	Deposit    []DepositRecord   `json:"deposit,omitempty" bson:"deposit,omitempty"`
	AleCredits []AleCreditRecord `json:"alecredits,omitempty" bson:"alecredits,omitempty"`
}

type CardRecord struct {
	NumberMasked string `json:"numberMasked" bson:"numberMasked"`
	Month        string `json:"month" bson:"month"`
	Year         string `json:"year" bson:"year"`
}

type DepositRecord struct {
	AccountMasked string `json:"accountMasked" bson:"accountMasked"`
	Type          string `json:"type" bson:"type"`
}

type AleCreditRecord struct {
	TotalCredit       *float64 `json:"total_credit,omitempty" bson:"total_credit,omitempty"`
	Goal              *string  `json:"goal,omitempty" bson:"goal,omitempty"`
	DateSolicitud     any      `json:"date_solicitud,omitempty" bson:"date_solicitud,omitempty"`
	WantYouHirePlease bool     `json:"want_you_hire_please" bson:"want_you_hire_please"`
}
