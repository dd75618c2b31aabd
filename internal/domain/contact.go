package domain

import "context"

// Service codes offered in the contact form
const (
	ServiceWebsite = "website"
	ServiceWebApp  = "webapp"
	ServiceMobile  = "mobile"
	ServiceOther   = "other"
)

// Budget codes offered in the contact form
const (
	BudgetSmall      = "small"
	BudgetMedium     = "medium"
	BudgetLarge      = "large"
	BudgetEnterprise = "enterprise"
)

// ContactRequest is the raw contact form payload.
// Optional fields are pointers so an omitted field stays distinguishable.
type ContactRequest struct {
	Name    string  `json:"name" example:"Max Mustermann"`
	Email   string  `json:"email" example:"max@example.com"`
	Company *string `json:"company,omitempty" example:"Mustermann GmbH"`
	Phone   *string `json:"phone,omitempty" example:"+49 30 1234567"`
	Service string  `json:"service" example:"webapp" enums:"website,webapp,mobile,other"`
	Budget  *string `json:"budget,omitempty" example:"medium" enums:"small,medium,large,enterprise"`
	Message string  `json:"message" example:"Hallo, wir planen ein Kundenportal."`
}

// Submission is a contact request that passed validation.
// Only the contact validator constructs it; nil optional fields mean absent.
type Submission struct {
	ReferenceID string
	Name        string
	Email       string
	Company     *string
	Phone       *string
	Service     string
	Budget      *string
	Message     string
}

// DispatchStatus is the overall result reported to the HTTP boundary
type DispatchStatus string

const (
	DispatchStatusOK    DispatchStatus = "ok"
	DispatchStatusError DispatchStatus = "error"
)

// DispatchOutcome describes how a submission ended.
// Reason is empty when Status is ok.
type DispatchOutcome struct {
	Status DispatchStatus `json:"status"`
	Reason string         `json:"reason,omitempty"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Dispatch validates the request, renders both emails and sends them.
	// A non-nil error is always an *apperror.AppError.
	Dispatch(ctx context.Context, req *ContactRequest) (*DispatchOutcome, error)
}
