package validation_test

import (
	"errors"
	"testing"

	"agency-contact-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

type emailForm struct {
	Name  string `validate:"required"`
	Email string `validate:"required,contact_email"`
}

func TestIsEmailShape(t *testing.T) {
	valid := []string{"max@example.com", "a.b+c@sub.domain.de", "x@y.z"}
	for _, s := range valid {
		assert.True(t, validation.IsEmailShape(s), s)
	}

	invalid := []string{"not-an-email", "max@example", "max.example.com", "max @example.com", "max@exa mple.com", "@example.com", "max@.", ""}
	for _, s := range invalid {
		assert.False(t, validation.IsEmailShape(s), s)
	}
}

func TestContactMessage(t *testing.T) {
	v := validation.New()

	t.Run("Should prefer required over format errors", func(t *testing.T) {
		err := v.Struct(emailForm{Name: "", Email: "broken"})
		assert.Equal(t, validation.MsgRequiredFields, validation.ContactMessage(err))
	})

	t.Run("Should report invalid email", func(t *testing.T) {
		err := v.Struct(emailForm{Name: "Max", Email: "broken"})
		assert.Equal(t, validation.MsgInvalidEmail, validation.ContactMessage(err))
		assert.Equal(t, []string{"E-Mail: Ungültiges Format"}, validation.FormatValidationErrors(err))
	})

	t.Run("Should pass well-formed input", func(t *testing.T) {
		assert.NoError(t, v.Struct(emailForm{Name: "Max", Email: "max@example.com"}))
	})

	t.Run("Should fall back for foreign errors", func(t *testing.T) {
		assert.Equal(t, validation.MsgInvalidInput, validation.ContactMessage(errors.New("boom")))
	})
}
