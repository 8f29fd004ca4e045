package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@x.com", "first.last@club.example.org", "a+b@x.co"}
	for _, s := range valid {
		assert.True(t, IsValidEmail(s), s)
	}

	invalid := []string{"", "a", "a@x", "a @x.com", "@x.com", "a@.com "}
	for _, s := range invalid {
		assert.False(t, IsValidEmail(s), s)
	}
}

func TestIsValidAdminID(t *testing.T) {
	assert.True(t, IsValidAdminID("ADB12345"))

	invalid := []string{"", "ADB1234", "ADB123456", "adb12345", "XYZ12345", "ADB1234a"}
	for _, s := range invalid {
		assert.False(t, IsValidAdminID(s), s)
	}
}

func TestIsValidRollNumber(t *testing.T) {
	assert.True(t, IsValidRollNumber("1234567890123"))

	invalid := []string{"", "123456789012", "12345678901234", "123456789012a", "12345 7890123"}
	for _, s := range invalid {
		assert.False(t, IsValidRollNumber(s), s)
	}
}

func TestValidateSignupPassword(t *testing.T) {
	valid := []string{"Passw0rd!", "abcdefg1@", "12345678#"}
	for _, s := range valid {
		assert.NoError(t, ValidateSignupPassword(s), s)
	}

	cases := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1!"},
		{"no digit", "Password!"},
		{"no special", "Passw0rdd"},
		{"empty", ""},
		{"whitespace padding only", "   Ab1!   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, ValidateSignupPassword(tc.password))
		})
	}
}

func TestValidateResetPassword(t *testing.T) {
	valid := []string{"Passw0rd!", "Aa1@aaaa", "XyZ9$abc"}
	for _, s := range valid {
		assert.NoError(t, ValidateResetPassword(s), s)
	}

	cases := []struct {
		name     string
		password string
	}{
		{"too short", "short"},
		{"no uppercase", "passw0rd!"},
		{"no lowercase", "PASSW0RD!"},
		{"no digit", "Password!"},
		{"no special", "Passw0rdd"},
		{"special outside allowed set", "Passw0rd#"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, ValidateResetPassword(tc.password))
		})
	}
}
