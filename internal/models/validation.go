package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// SanitizeString trims surrounding whitespace.
func SanitizeString(s string) string {
	return strings.TrimSpace(s)
}

// SanitizeOptional trims s and maps blank values to nil.
func SanitizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ValidateRequired checks if a required string field is not blank
func ValidateRequired(value, fieldName, message string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: fieldName, Message: message, Value: value}
	}
	return nil
}

// ValidateMaxLength checks a string against a maximum rune count.
func ValidateMaxLength(value, fieldName, label string, maxLength int) *ValidationError {
	if utf8.RuneCountInString(value) > maxLength {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s cannot exceed %d characters", label, maxLength),
			Value:   value,
		}
	}
	return nil
}

// ValidateNonNegative checks that a decimal amount is zero or greater.
func ValidateNonNegative(value decimal.Decimal, fieldName, message string) *ValidationError {
	if value.IsNegative() {
		return &ValidationError{Field: fieldName, Message: message, Value: value.String()}
	}
	return nil
}

// ValidateMoneyRange checks that an amount fits decimal(10,2).
func ValidateMoneyRange(value decimal.Decimal, fieldName, label string) *ValidationError {
	if value.GreaterThan(MaxMoney) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s cannot exceed %s", label, MaxMoney.StringFixed(MoneyPlaces)),
			Value:   value.String(),
		}
	}
	return nil
}

// ValidateFraction checks that a rate lies in [0, 1].
func ValidateFraction(value decimal.Decimal, fieldName, message string) *ValidationError {
	if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(1)) {
		return &ValidationError{Field: fieldName, Message: message, Value: value.String()}
	}
	return nil
}
