package appointment

import "errors"

var (
	// ErrInvalidInput marks a request with missing or malformed fields.
	ErrInvalidInput = errors.New("champs manquants ou invalides")
	// ErrDuplicateSlot marks a (date, time, address) triple that already
	// has an appointment.
	ErrDuplicateSlot = errors.New("créneau déjà réservé pour cette adresse")
)
