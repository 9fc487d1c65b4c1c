package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money and rates travel as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Field limits shared by the models, the request DTOs and the schema.
const (
	MinPersonnelAge     = 19
	MaxPersonnelNameLen = 50
	MaxPhoneLen         = 20
	MaxBankFieldLen     = 20
	MoneyPlaces         = 2
	PercentagePlaces    = 6
)

// MaxMoney is the largest amount the store's decimal(10,2) columns accept.
var MaxMoney = decimal.RequireFromString("99999999.99")

// APIResponse is the envelope returned by every JSON endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// ValidationError represents a validation error with field-specific details
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	return ve.Message
}

// ValidationErrors collects every field failure found for one entity.
type ValidationErrors []*ValidationError

func (ve ValidationErrors) Error() string {
	return strings.Join(ve.Messages(), "; ")
}

// Messages returns the human-readable messages in the order they were found.
func (ve ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(ve))
	for _, e := range ve {
		messages = append(messages, e.Message)
	}
	return messages
}

// add appends err when it is non-nil.
func (ve *ValidationErrors) add(err *ValidationError) {
	if err != nil {
		*ve = append(*ve, err)
	}
}

// orNil returns nil for an empty collection so callers can use err != nil.
func (ve ValidationErrors) orNil() error {
	if len(ve) == 0 {
		return nil
	}
	return ve
}

// HealthCheck represents system health status
type HealthCheck struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}
