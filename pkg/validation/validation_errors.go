package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Visitor-facing messages (German deployment)
const (
	MsgRequiredFields = "Bitte füllen Sie alle Pflichtfelder aus."
	MsgInvalidEmail   = "Bitte geben Sie eine gültige E-Mail-Adresse ein."
	MsgInvalidInput   = "Bitte überprüfen Sie Ihre Eingaben."
)

// FieldLabels maps struct field names to user-friendly German labels
var FieldLabels = map[string]string{
	"Name":    "Name",
	"Email":   "E-Mail",
	"Company": "Unternehmen",
	"Phone":   "Telefon",
	"Service": "Leistung",
	"Budget":  "Budget",
	"Message": "Nachricht",
}

// ContactMessage collapses validator errors into the single message shown
// to the visitor. Missing fields take precedence over format problems.
func ContactMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return MsgInvalidInput
	}

	msg := MsgInvalidInput
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			return MsgRequiredFields
		case "contact_email", "email":
			msg = MsgInvalidEmail
		}
	}
	return msg
}

// FormatValidationErrors converts validator.ValidationErrors to per-field messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: Pflichtfeld", label)
	case "contact_email", "email":
		return fmt.Sprintf("%s: Ungültiges Format", label)
	default:
		return fmt.Sprintf("%s: Validierung fehlgeschlagen (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
