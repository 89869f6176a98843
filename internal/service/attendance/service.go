package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/karyahr/ess-backend-go/internal/domain/attendance"
	"github.com/karyahr/ess-backend-go/internal/domain/notification"
	"github.com/karyahr/ess-backend-go/internal/domain/user"
	"github.com/karyahr/ess-backend-go/internal/pkg/clock"
	"github.com/karyahr/ess-backend-go/internal/pkg/database"
	"github.com/karyahr/ess-backend-go/internal/pkg/utils"
	"github.com/karyahr/ess-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	configRepo     attendance.ConfigRepository
	userRepo       user.UserRepository
	emitter        notification.Emitter
	clock          clock.Clock
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	configRepo attendance.ConfigRepository,
	userRepo user.UserRepository,
	emitter notification.Emitter,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		configRepo:     configRepo,
		userRepo:       userRepo,
		emitter:        emitter,
		clock:          clk,
	}
}

func getUserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// dateOf truncates an instant to midnight in its own location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// checkGeofence enforces location and photo rules from the effective config.
func checkGeofence(cfg attendance.Config, lat, lon *float64, photo *string) error {
	if cfg.LocationRequired {
		if lat == nil || lon == nil {
			return attendance.ErrLocationRequired
		}

		inRange := false
		for _, office := range cfg.OfficeLocations {
			distance := utils.CalculateHaversineDistance(*lat, *lon, office.Latitude, office.Longitude)
			if distance <= cfg.MaxDistanceMeter {
				inRange = true
				break
			}
		}
		if !inRange {
			return attendance.ErrOutsideOfficeArea
		}
	}

	if cfg.PhotoRequired && (photo == nil || *photo == "") {
		return attendance.ErrPhotoRequired
	}

	return nil
}

func (s *AttendanceServiceImpl) effectiveConfig(ctx context.Context, userID string) (attendance.Config, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return attendance.Config{}, err
	}

	return s.configRepo.GetEffective(ctx, u.Department)
}

func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	cfg, err := s.effectiveConfig(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()
	today := dateOf(now)

	if !cfg.IsWorkingDay(now.Weekday()) {
		return attendance.AttendanceResponse{}, attendance.ErrNotWorkingDay
	}

	if err := checkGeofence(cfg, req.Latitude, req.Longitude, req.Photo); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	lateAfter, err := cfg.LateThresholdOn(today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	status := attendance.StatusPresent
	if now.After(lateAfter) {
		status = attendance.StatusLate
	}

	var record attendance.Attendance
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.attendanceRepo.GetByUserAndDate(txCtx, userID, today)
		if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
			return err
		}

		if err == nil {
			if existing.ClockInTime != nil {
				return attendance.ErrAlreadyClockedIn
			}
			// A row without a clock-in can exist, for example one created
			// for an approved leave day. Fill it in place.
			existing.ClockInTime = &now
			existing.ClockInLatitude = req.Latitude
			existing.ClockInLongitude = req.Longitude
			existing.ClockInPhoto = req.Photo
			existing.Status = status
			existing.IsValid = true
			if err := s.attendanceRepo.Update(txCtx, existing); err != nil {
				return err
			}
			record = existing
			return nil
		}

		record, err = s.attendanceRepo.Create(txCtx, attendance.Attendance{
			UserID:           userID,
			Date:             today,
			ClockInTime:      &now,
			ClockInLatitude:  req.Latitude,
			ClockInLongitude: req.Longitude,
			ClockInPhoto:     req.Photo,
			Status:           status,
			IsValid:          true,
		})
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if status == attendance.StatusLate {
		s.emitter.Emit(ctx, notification.EmitRequest{
			UserID:  userID,
			Type:    notification.TypeAttendanceLate,
			Title:   "Late clock-in",
			Message: fmt.Sprintf("You clocked in at %s, after the %s grace period.", now.Format("15:04"), cfg.WorkStartTime),
		})
	}

	return attendance.ToResponse(record), nil
}

func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	cfg, err := s.effectiveConfig(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := checkGeofence(cfg, req.Latitude, req.Longitude, req.Photo); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()
	today := dateOf(now)

	var record attendance.Attendance
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.attendanceRepo.GetByUserAndDate(txCtx, userID, today)
		if err != nil {
			if errors.Is(err, attendance.ErrAttendanceNotFound) {
				return attendance.ErrNotClockedIn
			}
			return err
		}

		if existing.ClockInTime == nil {
			return attendance.ErrNotClockedIn
		}
		if existing.ClockOutTime != nil {
			return attendance.ErrAlreadyClockedOut
		}

		existing.ClockOutTime = &now
		existing.ClockOutLatitude = req.Latitude
		existing.ClockOutLongitude = req.Longitude
		existing.ClockOutPhoto = req.Photo

		if err := s.attendanceRepo.Update(txCtx, existing); err != nil {
			return err
		}
		record = existing
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	workEnd, err := cfg.WorkEndOn(today)
	if err == nil && now.Before(workEnd) {
		s.emitter.Emit(ctx, notification.EmitRequest{
			UserID:  userID,
			Type:    notification.TypeAttendanceEarlyLeave,
			Title:   "Early clock-out",
			Message: fmt.Sprintf("You clocked out at %s, before the end of the working day (%s).", now.Format("15:04"), cfg.WorkEndTime),
		})
	}

	return attendance.ToResponse(record), nil
}

func (s *AttendanceServiceImpl) GetToday(ctx context.Context) (attendance.AttendanceResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, dateOf(s.clock.Now()))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

func (s *AttendanceServiceImpl) GetMy(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.attendanceRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return buildListResponse(records, total, filter), nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return buildListResponse(records, total, filter), nil
}

func buildListResponse(records []attendance.Attendance, total int64, filter attendance.AttendanceFilter) attendance.ListAttendanceResponse {
	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}
}
