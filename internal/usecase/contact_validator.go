package usecase

import (
	"net/http"
	"strings"

	"agency-contact-backend/internal/domain"
	"agency-contact-backend/pkg/apperror"
	"agency-contact-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// contactFields are the required fields after trimming
type contactFields struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,contact_email"`
	Service string `validate:"required"`
	Message string `validate:"required"`
}

// ContactValidator turns a raw contact request into a Submission.
// It has no side effects.
type ContactValidator struct {
	validate *validator.Validate
}

// NewContactValidator expects a validator with the custom tags from pkg/validation registered
func NewContactValidator(validate *validator.Validate) *ContactValidator {
	return &ContactValidator{validate: validate}
}

// Validate returns the submission or an *apperror.AppError of kind validation
func (cv *ContactValidator) Validate(req *domain.ContactRequest) (*domain.Submission, error) {
	if req == nil {
		return nil, apperror.Validation(validation.MsgRequiredFields)
	}

	fields := contactFields{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Service: strings.TrimSpace(req.Service),
		Message: strings.TrimSpace(req.Message),
	}

	if err := cv.validate.Struct(fields); err != nil {
		return nil, apperror.New(http.StatusBadRequest, apperror.KindValidation, validation.ContactMessage(err), err)
	}

	return &domain.Submission{
		Name:    fields.Name,
		Email:   fields.Email,
		Company: optional(req.Company),
		Phone:   optional(req.Phone),
		Service: fields.Service,
		Budget:  optional(req.Budget),
		Message: fields.Message,
	}, nil
}

// optional keeps a present value unchanged and maps nil or blank to absent
func optional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
