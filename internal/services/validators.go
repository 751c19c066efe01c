package services

import (
	"regexp"

	"github.com/baharkarakas/txn-intake/internal/api/validate"
)

var (
	reMonth   = regexp.MustCompile(`^\d{2}$`)
	reYear    = regexp.MustCompile(`^\d{4}$`)
	reCCV     = regexp.MustCompile(`^\d{3,4}$`)
	reAccount = regexp.MustCompile(`^\d{6,20}$`)
	reDMY     = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// ValidateCard checks cards[0]. Later elements are accepted but not read.
func ValidateCard(p Payload) error {
	EnsureArrayField(p, "cards")
	c, ok := p.first("cards")
	if !ok {
		return validate.Fail("cards", "cards must be a non-empty array")
	}
	if !c.has("number", "month", "year", "ccv") {
		return validate.Fail("cards[0]", "cards[0] requires number, month, year, ccv")
	}
	month := stringOf(c["month"])
	if !reMonth.MatchString(month) || month < "01" || month > "12" {
		return validate.Fail("cards[0].month", "invalid month")
	}
	if !reYear.MatchString(stringOf(c["year"])) {
		return validate.Fail("cards[0].year", "invalid year")
	}
	if !reCCV.MatchString(stringOf(c["ccv"])) {
		return validate.Fail("cards[0].ccv", "invalid ccv")
	}
	return nil
}

// ValidateDeposits checks deposit[0].
func ValidateDeposits(p Payload) error {
	EnsureArrayField(p, "deposit")
	d, ok := p.first("deposit")
	if !ok {
		return validate.Fail("deposit", "deposit must be a non-empty array")
	}
	if !d.has("account", "type") {
		return validate.Fail("deposit[0]", "deposit[0] requires account and type")
	}
	if !reAccount.MatchString(stringOf(d["account"])) {
		return validate.Fail("deposit[0].account", "invalid account format")
	}
	return nil
}

// ValidateAleCredits checks alecredits[0]. Every field is optional.
func ValidateAleCredits(p Payload) error {
	EnsureArrayField(p, "alecredits")
	a, ok := p.first("alecredits")
	if !ok {
		return validate.Fail("alecredits", "alecredits must be a non-empty array")
	}
	if goal := a["goal"]; truthy(goal) && goal != "SELL" && goal != "BUY" {
		return validate.Fail("alecredits[0].goal", "alecredits[0].goal must be SELL or BUY")
	}
	if tc, present := a["total_credit"]; present && tc != nil {
		if _, ok := numberOf(tc); !ok {
			return validate.Fail("alecredits[0].total_credit", "total_credit must be numeric")
		}
	}
	if s, isStr := a["date_solicitud"].(string); isStr && reDMY.MatchString(s) {
		if _, ok := parseDMY(s); !ok {
			return validate.Fail("alecredits[0].date_solicitud", "invalid date_solicitud")
		}
	}
	return nil
}

func (cardKind) validate(p Payload) error       { return ValidateCard(p) }
func (depositsKind) validate(p Payload) error   { return ValidateDeposits(p) }
func (aleCreditsKind) validate(p Payload) error { return ValidateAleCredits(p) }
