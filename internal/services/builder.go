package services

import (
	"strconv"
	"time"

	"github.com/baharkarakas/txn-intake/internal/models"
)

// isoLayout matches JavaScript's Date.prototype.toISOString for UTC times.
const isoLayout = "2006-01-02T15:04:05.000Z"

func isoTime(t time.Time) string { return t.UTC().Format(isoLayout) }

// BuildByType produces the masked, type-specific part of a record from a
// payload that already passed the type's validator.
func BuildByType(t models.TransactionType, p Payload) models.Detail {
	k, ok := kindOf(t)
	if !ok {
		return models.Detail{}
	}
	return k.build(p)
}

// The CCV is never copied.
func (cardKind) build(p Payload) models.Detail {
	c, _ := p.first("cards")
	return models.Detail{Card: &models.CardRecord{
		NumberMasked: MaskCard(c["number"]),
		Month:        stringOf(c["month"]),
		Year:         stringOf(c["year"]),
	}}
}

func (depositsKind) build(p Payload) models.Detail {
	d, _ := p.first("deposit")
	return models.Detail{Deposit: []models.DepositRecord{{
		AccountMasked: MaskAccount(d["account"]),
		Type:          stringOf(d["type"]),
	}}}
}

func (aleCreditsKind) build(p Payload) models.Detail {
	a, _ := p.first("alecredits")
	rec := models.AleCreditRecord{
		DateSolicitud:     solicitudDate(a["date_solicitud"]),
		WantYouHirePlease: truthy(hireFlag(a)),
	}
	if tc, present := a["total_credit"]; present && tc != nil {
		if f, ok := numberOf(tc); ok {
			rec.TotalCredit = &f
		}
	}
	if g, isStr := a["goal"].(string); isStr {
		rec.Goal = &g
	}
	return models.Detail{AleCredits: []models.AleCreditRecord{rec}}
}

// solicitudDate turns DD/MM/YYYY into the ISO string of that day at UTC
// midnight. Any other value is returned unchanged.
func solicitudDate(v any) any {
	s, isStr := v.(string)
	if !isStr {
		return v
	}
	d, ok := parseDMY(s)
	if !ok {
		return v
	}
	return isoTime(d)
}

// parseDMY accepts any day 01-31 for months 01-12. Days past the end of the
// month roll into the next one, so 31/02/2024 is 2024-03-02.
func parseDMY(s string) (time.Time, bool) {
	if !reDMY.MatchString(s) {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(s[0:2])
	month, _ := strconv.Atoi(s[3:5])
	year, _ := strconv.Atoi(s[6:])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// Older senders use the key with a trailing question mark.
func hireFlag(a Payload) any {
	if v, ok := a["want_you_hire_please?"]; ok {
		return v
	}
	return a["want_you_hire_please"]
}
