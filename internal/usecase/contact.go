package usecase

import (
	"context"
	"log/slog"
	"time"

	"agency-contact-backend/internal/domain"
	"agency-contact-backend/pkg/apperror"
	"agency-contact-backend/pkg/email"
	"agency-contact-backend/pkg/logger"

	"github.com/google/uuid"
)

// MsgDispatchFailed is shown to the visitor for any non-validation failure
const MsgDispatchFailed = "Beim Senden Ihrer Nachricht ist ein Fehler aufgetreten. Bitte versuchen Sie es später erneut."

// ContactRenderer renders both emails for a submission
type ContactRenderer interface {
	Render(data email.ContactData, now time.Time) (*email.RenderedPair, error)
}

// dispatchState names the steps of a single submission
type dispatchState string

const (
	stateReceived         dispatchState = "received"
	stateValidated        dispatchState = "validated"
	stateRendered         dispatchState = "rendered"
	stateNotificationSent dispatchState = "notification_sent"
	stateConfirmationSent dispatchState = "confirmation_sent"
	stateDone             dispatchState = "done"
	stateError            dispatchState = "error"
)

// ContactDeps are the collaborators of the contact usecase.
// Now, NewID and Logger default to time.Now, uuid.NewString and the component logger.
type ContactDeps struct {
	Validator *ContactValidator
	Renderer  ContactRenderer
	Sender    email.Sender
	Now       func() time.Time
	NewID     func() string
	Logger    *slog.Logger
}

type contactUsecase struct {
	validator *ContactValidator
	renderer  ContactRenderer
	sender    email.Sender
	now       func() time.Time
	newID     func() string
	log       *slog.Logger
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(deps ContactDeps) domain.ContactUsecase {
	uc := &contactUsecase{
		validator: deps.Validator,
		renderer:  deps.Renderer,
		sender:    deps.Sender,
		now:       deps.Now,
		newID:     deps.NewID,
		log:       deps.Logger,
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.newID == nil {
		uc.newID = uuid.NewString
	}
	if uc.log == nil {
		uc.log = logger.Component("contact")
	}
	return uc
}

// Dispatch runs validate, render, notify, confirm.
// The notification must be accepted before the confirmation is attempted;
// a failed confirmation is logged and does not change the outcome.
func (uc *contactUsecase) Dispatch(ctx context.Context, req *domain.ContactRequest) (*domain.DispatchOutcome, error) {
	log := uc.log
	uc.enter(log, stateReceived)

	sub, err := uc.validator.Validate(req)
	if err != nil {
		log.Info("contact submission rejected", "state", stateError, "error", err)
		return failed(apperror.KindValidation), err
	}
	sub.ReferenceID = uc.newID()
	log = log.With("reference_id", sub.ReferenceID)
	uc.enter(log, stateValidated)

	pair, err := uc.renderer.Render(toContactData(sub), uc.now())
	if err != nil {
		log.Error("failed to render contact emails", "state", stateError, "error", err)
		return failed(apperror.KindInternal), apperror.Internal(MsgDispatchFailed, err)
	}
	uc.enter(log, stateRendered)

	// Once started, a dispatch runs to completion even if the visitor disconnects.
	ctx = context.WithoutCancel(ctx)

	if err := uc.sender.Send(ctx, pair.Notification); err != nil {
		log.Error("failed to send contact notification", "state", stateError, "error", err)
		return failed(apperror.KindDispatch), apperror.Dispatch(MsgDispatchFailed, err)
	}
	uc.enter(log, stateNotificationSent)

	if err := uc.sender.Send(ctx, pair.Confirmation); err != nil {
		log.Warn("failed to send contact confirmation", "error", err)
	} else {
		uc.enter(log, stateConfirmationSent)
	}

	uc.enter(log, stateDone)
	log.Info("contact submission dispatched", "service", sub.Service)
	return &domain.DispatchOutcome{Status: domain.DispatchStatusOK}, nil
}

func (uc *contactUsecase) enter(log *slog.Logger, state dispatchState) {
	log.Debug("contact dispatch state", "state", state)
}

func failed(kind apperror.Kind) *domain.DispatchOutcome {
	return &domain.DispatchOutcome{Status: domain.DispatchStatusError, Reason: string(kind)}
}

func toContactData(sub *domain.Submission) email.ContactData {
	return email.ContactData{
		ReferenceID: sub.ReferenceID,
		Name:        sub.Name,
		Email:       sub.Email,
		Company:     sub.Company,
		Phone:       sub.Phone,
		Service:     sub.Service,
		Budget:      sub.Budget,
		Message:     sub.Message,
	}
}
