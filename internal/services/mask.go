package services

import "strings"

const (
	cardMaskPrefix    = "**** **** **** "
	accountMaskPrefix = "****"
)

// MaskCard keeps the last four characters of a card number with all
// whitespace removed. Length is the validator's concern.
func MaskCard(number any) string {
	digits := strings.Join(strings.Fields(stringOf(number)), "")
	return cardMaskPrefix + lastN(digits, 4)
}

// MaskAccount keeps the last four characters of an account number.
func MaskAccount(account any) string {
	return accountMaskPrefix + lastN(stringOf(account), 4)
}

func lastN(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
