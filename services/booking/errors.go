package booking

import "errors"

var (
	// ErrSessionNotFound marks an unknown or expired booking session.
	ErrSessionNotFound = errors.New("session de réservation introuvable ou expirée")
	// ErrInvalidStep marks an operation that does not apply to the
	// session's current step.
	ErrInvalidStep = errors.New("étape de réservation invalide")
	// ErrInvalidDateTime rejects malformed date or time strings.
	ErrInvalidDateTime = errors.New("date ou heure invalide")
	// ErrPastDate rejects dates in the past, or times already gone today.
	ErrPastDate = errors.New("date ou heure déjà passée")
	// ErrSlotUnavailable rejects a time that is not among the open slots.
	ErrSlotUnavailable = errors.New("ce créneau n'est plus disponible")
	// ErrMissingDetails rejects a confirmation without contact details.
	ErrMissingDetails = errors.New("coordonnées incomplètes")
	// ErrCaptchaFailed marks a missing or refused verification token.
	ErrCaptchaFailed = errors.New("la vérification reCAPTCHA a échoué, veuillez réessayer")
)
