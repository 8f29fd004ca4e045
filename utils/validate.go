package utils

import (
	"errors"
	"regexp"
	"strings"
)

var (
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	adminIDRe    = regexp.MustCompile(`^ADB[0-9]{5}$`)
	rollNumberRe = regexp.MustCompile(`^[0-9]{13}$`)
)

func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidAdminID reports whether s is "ADB" followed by exactly five digits.
func IsValidAdminID(s string) bool {
	return adminIDRe.MatchString(s)
}

// IsValidRollNumber reports whether s is exactly 13 digits.
func IsValidRollNumber(s string) bool {
	return rollNumberRe.MatchString(s)
}

const signupSpecials = "!@#$%^&*"

// ValidateSignupPassword enforces the registration policy: at least 8
// characters with one digit and one special character.
func ValidateSignupPassword(password string) error {
	pw := strings.TrimSpace(password)
	if len(pw) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if !strings.ContainsAny(pw, "0123456789") {
		return errors.New("password must contain at least one number")
	}
	if !strings.ContainsAny(pw, signupSpecials) {
		return errors.New("password must contain at least one special character")
	}
	return nil
}

const resetSpecials = "@$!%*?&"

// ValidateResetPassword enforces the reset policy: at least 8 characters,
// one uppercase letter, one lowercase letter, one digit and one special
// character from resetSpecials, with no other characters allowed.
func ValidateResetPassword(password string) error {
	pw := strings.TrimSpace(password)
	if len(pw) < 8 {
		return errResetPolicy
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(resetSpecials, r):
			hasSpecial = true
		default:
			return errResetPolicy
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return errResetPolicy
	}
	return nil
}

var errResetPolicy = errors.New("password must be at least 8 characters long, include one uppercase letter, one lowercase letter, one digit, and one special character")
