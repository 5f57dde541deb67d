package mail

import (
	"context"
	"errors"
	"fmt"

	"kdexpertise/models"
	"kdexpertise/services/captcha"
	"kdexpertise/utils"
)

var (
	// ErrInvalidForm marks a contact form with missing or malformed fields.
	ErrInvalidForm = errors.New("champs manquants ou invalides")
	// ErrCaptchaRejected marks a refused human-verification token.
	ErrCaptchaRejected = errors.New("vérification anti-robot échouée")
)

// ContactService handles the public contact form: validate, verify the
// captcha token, send confirmation and admin emails. Nothing is persisted.
type ContactService interface {
	Send(ctx context.Context, form models.ContactForm) error
}

// DefaultContactService implements ContactService.
type DefaultContactService struct {
	Mailer     Mailer
	Captcha    captcha.Verifier
	AdminEmail string
}

func (s *DefaultContactService) Send(ctx context.Context, form models.ContactForm) error {
	if form.Name == "" || form.Message == "" || !utils.IsEmail(form.Email) {
		return ErrInvalidForm
	}

	ok, err := s.Captcha.Verify(ctx, form.Token)
	if err != nil {
		return fmt.Errorf("captcha verification failed: %w", err)
	}
	if !ok {
		return ErrCaptchaRejected
	}

	if err := s.Mailer.Send(ctx, ComposeContactAdminAlert(form, s.AdminEmail)); err != nil {
		return fmt.Errorf("failed to send admin alert: %w", err)
	}
	if err := s.Mailer.Send(ctx, ComposeContactConfirmation(form)); err != nil {
		return fmt.Errorf("failed to send confirmation: %w", err)
	}
	return nil
}
