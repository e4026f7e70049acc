package utils

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrPhoneLength = errors.New("phone number must be exactly 10 digits long")
)

// NormalizePhone strips every non-digit character and requires exactly
// 10 digits. Returns the normalized digit string.
func NormalizePhone(phone string) (string, error) {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) != 10 {
		return "", ErrPhoneLength
	}
	return digits, nil
}
