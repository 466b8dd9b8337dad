package validator

import (
	"regexp"
	"strings"
	"time"
)

// Mauritanian numbers: optional +222 country code, then 8 digits with a
// mobile prefix (2 = Chinguitel, 3 = Mattel, 4 = Mauritel).
var phoneRegex = regexp.MustCompile(`^(\+?222)?[234]\d{7}$`)

// IsValidPhone checks a Mauritanian phone number, ignoring spaces and dashes.
func IsValidPhone(phone string) bool {
	phone = strings.NewReplacer(" ", "", "-", "").Replace(phone)
	if phone == "" {
		return false
	}
	return phoneRegex.MatchString(phone)
}

// IsNonEmpty reports whether the string has visible content.
func IsNonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidDateTime checks if the datetime string parses as RFC 3339.
func IsValidDateTime(datetime string) bool {
	_, err := time.Parse(time.RFC3339, datetime)
	return err == nil
}
