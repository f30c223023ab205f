package utils

import (
	"fmt"
	"regexp"
)

const PasswordMinLength = 12

var (
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9.+_-]+@[a-zA-Z0-9-]+\.[a-zA-Z]{2,}$`)
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	lowerPattern  = regexp.MustCompile(`[a-z]`)
	digitPattern  = regexp.MustCompile(`\d`)
	symbolPattern = regexp.MustCompile(`[!@#$%^&*()_+=-]`)
)

// ValidatePassword checks the registration password policy and returns one
// message per unmet rule. Every rule is evaluated so the caller can present
// the complete list, not just the first failure.
func ValidatePassword(password string) []string {
	var unmet []string

	if len(password) < PasswordMinLength {
		unmet = append(unmet, fmt.Sprintf("Minimum %d characters", PasswordMinLength))
	}
	if !upperPattern.MatchString(password) {
		unmet = append(unmet, "At least 1 uppercase letter")
	}
	if !lowerPattern.MatchString(password) {
		unmet = append(unmet, "At least 1 lowercase letter")
	}
	if !digitPattern.MatchString(password) {
		unmet = append(unmet, "At least 1 number")
	}
	if !symbolPattern.MatchString(password) {
		unmet = append(unmet, "At least 1 special character")
	}

	return unmet
}

// ValidEmail reports whether the address is local@domain.tld shaped.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
