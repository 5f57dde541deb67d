package appointment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"kdexpertise/models"
	"kdexpertise/services/mail"
	"kdexpertise/utils"
)

func (s *DefaultAppointmentService) Create(ctx context.Context, appt models.Appointment) (string, error) {
	logger := utils.GetLogger()

	if err := validate(appt); err != nil {
		return "", err
	}

	// Best-effort duplicate check: read then decide. Two concurrent
	// requests for the same triple can both pass; acceptable at the rate
	// humans book inspections.
	exists, err := s.Repo.ExistsForSlot(ctx, appt.Date, appt.Time, appt.Address)
	if err != nil {
		return "", fmt.Errorf("duplicate check failed: %w", err)
	}
	if exists {
		return "", ErrDuplicateSlot
	}

	appt.Status = models.AppointmentStatusPending
	appt.CreatedAt = time.Now().UTC()

	id, err := s.Repo.Create(ctx, appt)
	if err != nil {
		return "", fmt.Errorf("failed to persist appointment: %w", err)
	}
	appt.ID = id

	// The record is the durable artifact; everything below is best-effort.
	if s.Cache != nil {
		if err := s.Cache.Del(ctx, utils.AvailabilityCacheKey(appt.Date)).Err(); err != nil {
			logger.Warn("failed to invalidate availability cache",
				zap.String("date", appt.Date), zap.Error(err))
		}
	}

	if err := s.Mailer.Send(ctx, mail.ComposeClientConfirmation(appt)); err != nil {
		logger.Error("client confirmation email failed",
			zap.String("appointmentId", id), zap.Error(err))
	}
	if err := s.Mailer.Send(ctx, mail.ComposeAdminAlert(appt, s.AdminEmail)); err != nil {
		logger.Error("admin alert email failed",
			zap.String("appointmentId", id), zap.Error(err))
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(ctx, appt); err != nil {
			logger.Error("failed to schedule reminder",
				zap.String("appointmentId", id), zap.Error(err))
		}
	}

	logger.Info("appointment created",
		zap.String("appointmentId", id),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time))
	return id, nil
}

func validate(appt models.Appointment) error {
	if appt.Service == "" || appt.Date == "" || appt.Time == "" ||
		appt.FullName == "" || appt.Phone == "" || appt.Address == "" {
		return ErrInvalidInput
	}
	if !utils.IsEmail(appt.Email) {
		return ErrInvalidInput
	}
	if _, err := time.Parse(models.DateFormat, appt.Date); err != nil {
		return ErrInvalidInput
	}
	if _, err := time.Parse(models.TimeFormat, appt.Time); err != nil {
		return ErrInvalidInput
	}
	return nil
}
