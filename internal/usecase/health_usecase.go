package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// MailStatus reports whether outbound mail can be attempted
type MailStatus interface {
	IsConfigured() bool
}

type healthUsecase struct {
	mail MailStatus
}

func NewHealthUsecase(mail MailStatus) HealthUsecase {
	return &healthUsecase{mail: mail}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	mail := "configured"
	if u.mail == nil || !u.mail.IsConfigured() {
		mail = "not_configured"
	}
	return map[string]string{
		"status": "ok",
		"mail":   mail,
	}
}
