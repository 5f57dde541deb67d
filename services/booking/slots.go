package booking

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"kdexpertise/utils"
)

// availabilityCacheTTL bounds how stale a cached availability list can get
// when an appointment is written through a path that skips invalidation.
const availabilityCacheTTL = 30 * time.Second

func (s *DefaultSlotService) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, utils.AvailabilityCacheKey(date)).Result(); err == nil {
			var cached []string
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
		// Cache miss or a broken entry: fall through to the stores.
	}

	day, err := s.Timeslots.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	taken := map[string]bool{}
	if day != nil {
		for _, t := range day.Booked {
			taken[t] = true
		}
	}

	apptTimes, err := s.Appointments.TimesByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	for _, t := range apptTimes {
		taken[t] = true
	}

	open := make([]string, 0)
	for _, t := range day.Template() {
		if !taken[t] {
			open = append(open, t)
		}
	}

	if s.Cache != nil {
		if data, err := json.Marshal(open); err == nil {
			if err := s.Cache.Set(ctx, utils.AvailabilityCacheKey(date), data, availabilityCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache availability", zap.String("date", date), zap.Error(err))
			}
		}
	}
	return open, nil
}

func (s *DefaultSlotService) Book(ctx context.Context, date, timeOfDay string) error {
	if err := s.Timeslots.BookSlot(ctx, date, timeOfDay); err != nil {
		return err
	}
	s.invalidate(ctx, date)
	return nil
}

func (s *DefaultSlotService) Cancel(ctx context.Context, date, timeOfDay string) error {
	if err := s.Timeslots.CancelSlot(ctx, date, timeOfDay); err != nil {
		return err
	}
	s.invalidate(ctx, date)
	return nil
}

func (s *DefaultSlotService) invalidate(ctx context.Context, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.AvailabilityCacheKey(date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("date", date), zap.Error(err))
	}
}
