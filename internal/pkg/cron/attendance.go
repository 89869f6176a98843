package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/karyahr/ess-backend-go/internal/domain/attendance"
	"github.com/karyahr/ess-backend-go/internal/domain/user"
	"github.com/karyahr/ess-backend-go/internal/pkg/clock"
)

// AttendanceJobs holds the scheduled maintenance work around attendance
// records.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	configRepo     attendance.ConfigRepository
	userRepo       user.UserRepository
	clock          clock.Clock
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	configRepo attendance.ConfigRepository,
	userRepo user.UserRepository,
	clk clock.Clock,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		configRepo:     configRepo,
		userRepo:       userRepo,
		clock:          clk,
	}
}

// MarkAbsentees creates an absent record for every active employee who has
// no attendance row on a working day that has already ended. Payroll reads
// these rows when it tallies the month, so the job has to run at least once
// after each working day closes.
func (j *AttendanceJobs) MarkAbsentees(ctx context.Context) error {
	now := j.clock.Now()

	users, err := j.userRepo.List(ctx, true)
	if err != nil {
		return fmt.Errorf("failed to list active users: %w", err)
	}

	marked := 0
	for _, u := range users {
		cfg, err := j.configRepo.GetEffective(ctx, u.Department)
		if errors.Is(err, attendance.ErrNoConfigFound) {
			continue
		}
		if err != nil {
			slog.Error("Failed to resolve attendance config", "user_id", u.ID, "error", err)
			continue
		}

		if !cfg.IsWorkingDay(now.Weekday()) {
			continue
		}
		workEnd, err := cfg.WorkEndOn(now)
		if err != nil {
			slog.Error("Invalid work end time in attendance config", "config_id", cfg.ID, "error", err)
			continue
		}
		if now.Before(workEnd) {
			continue
		}

		date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		_, err = j.attendanceRepo.GetByUserAndDate(ctx, u.ID, date)
		if err == nil {
			// Clocked in, on leave, or already marked.
			continue
		}
		if !errors.Is(err, attendance.ErrAttendanceNotFound) {
			slog.Error("Failed to look up attendance", "user_id", u.ID, "error", err)
			continue
		}

		_, err = j.attendanceRepo.Create(ctx, attendance.Attendance{
			UserID:  u.ID,
			Date:    date,
			Status:  attendance.StatusAbsent,
			IsValid: true,
		})
		if err != nil {
			// A concurrent clock-in between the lookup and the insert
			// loses to the unique (user, date) constraint. That is fine.
			if errors.Is(err, attendance.ErrAlreadyClockedIn) {
				continue
			}
			slog.Error("Failed to mark absence", "user_id", u.ID, "error", err)
			continue
		}
		marked++
	}

	if marked > 0 {
		slog.Info("Marked absentees", "count", marked, "date", now.Format("2006-01-02"))
	}
	return nil
}
