package utils

import "regexp"

// Saudi mobile numbers: nine digits starting with 5, optionally
// prefixed with 0.
var phonePattern = regexp.MustCompile(`^0?5\d{8}$`)

// Passwords: 8-16 characters from the allowed alphabet.
var passwordPattern = regexp.MustCompile(`^[A-Za-z0-9@#$%^&+=]{8,16}$`)

// ValidPhone reports whether phone is an acceptable mobile number.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidPassword reports whether password satisfies the password policy.
func ValidPassword(password string) bool {
	return passwordPattern.MatchString(password)
}
