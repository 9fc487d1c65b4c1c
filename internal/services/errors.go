package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"commission-reporting-api/internal/models"
)

// ValidationError carries every field message found for one request.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// BusinessRuleError is a single rule violation that is reported verbatim.
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

func newBusinessRuleError(format string, args ...interface{}) *BusinessRuleError {
	return &BusinessRuleError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err carries request validation failures.
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsBusinessRuleError reports whether err is a business rule violation.
func IsBusinessRuleError(err error) bool {
	var target *BusinessRuleError
	return errors.As(err, &target)
}

// requestMessages maps "<Struct>.<jsonField>.<tag>" to the message shown to
// callers.
var requestMessages = map[string]string{
	"CommissionProfileRequest.profileName.required":          "Profile name is required",
	"CommissionProfileRequest.commissionFixed.required":      "Commission fixed amount is required",
	"CommissionProfileRequest.commissionPercentage.required": "Commission percentage is required",
	"PersonnelRequest.name.required":                         "Name is required",
	"PersonnelRequest.age.required":                          "Age is required",
	"PersonnelRequest.phone.required":                        "Phone is required",
	"SaleRequest.personnelId.required":                       "Personnel ID is required",
	"SaleRequest.reportDate.required":                        "Report date is required",
	"SaleRequest.salesAmount.required":                       "Sales amount is required",
}

// newValidator returns a validator that reports json field names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest runs the struct tags on req and converts failures into a
// ValidationError.
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := fe.Namespace() + "." + fe.Tag()
		if msg, ok := requestMessages[key]; ok {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, fmt.Sprintf("%s is invalid", fe.Field()))
	}
	return &ValidationError{Messages: messages}
}

// modelValidationError converts model field errors into a ValidationError,
// appending any extra messages. It returns nil when there is nothing to report.
func modelValidationError(err error, extra ...string) error {
	var messages []string
	if err != nil {
		var fieldErrs models.ValidationErrors
		if errors.As(err, &fieldErrs) {
			messages = fieldErrs.Messages()
		} else {
			messages = []string{err.Error()}
		}
	}
	messages = append(messages, extra...)
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
