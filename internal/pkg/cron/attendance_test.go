package cron

import (
	"context"
	"testing"
	"time"

	"github.com/karyahr/ess-backend-go/internal/domain/attendance"
	"github.com/karyahr/ess-backend-go/internal/domain/user"
	"github.com/karyahr/ess-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	return newUser, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, req user.UpdateUserRequest) error {
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, activeOnly bool) ([]user.User, error) {
	return f.users, nil
}

type fakeConfigRepo struct {
	cfg attendance.Config
	err error
}

func (f *fakeConfigRepo) Create(ctx context.Context, cfg attendance.Config) (attendance.Config, error) {
	return cfg, nil
}

func (f *fakeConfigRepo) GetByID(ctx context.Context, id string) (attendance.Config, error) {
	return f.cfg, f.err
}

func (f *fakeConfigRepo) GetEffective(ctx context.Context, departmentID *string) (attendance.Config, error) {
	return f.cfg, f.err
}

func (f *fakeConfigRepo) List(ctx context.Context) ([]attendance.Config, error) {
	return []attendance.Config{f.cfg}, f.err
}

func (f *fakeConfigRepo) Update(ctx context.Context, cfg attendance.Config) error {
	return nil
}

func (f *fakeConfigRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeAttendanceRepo struct {
	existing map[string]attendance.Attendance // keyed by userID
	created  []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.created = append(f.created, att)
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	if att, ok := f.existing[userID]; ok {
		return att, nil
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) ListByUser(ctx context.Context, userID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) CountByStatusInRange(ctx context.Context, userID string, from, to time.Time) (map[attendance.Status]int, error) {
	return nil, nil
}

func markAbsenteesFixture() (*fakeAttendanceRepo, *fakeConfigRepo, *fakeUserRepo) {
	attRepo := &fakeAttendanceRepo{existing: make(map[string]attendance.Attendance)}
	cfgRepo := &fakeConfigRepo{cfg: attendance.Config{
		ID:            "cfg-1",
		WorkStartTime: "08:00",
		WorkEndTime:   "17:00",
		WorkingDays:   []int{1, 2, 3, 4, 5},
		IsActive:      true,
	}}
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "u-1", Name: "Budi", IsActive: true},
		{ID: "u-2", Name: "Sari", IsActive: true},
	}}
	return attRepo, cfgRepo, userRepo
}

func TestMarkAbsentees_CreatesAbsentRows(t *testing.T) {
	t.Parallel()

	attRepo, cfgRepo, userRepo := markAbsenteesFixture()
	// u-1 already clocked in today.
	attRepo.existing["u-1"] = attendance.Attendance{ID: "a-1", UserID: "u-1", Status: attendance.StatusPresent}

	// Monday 18:00, after work end.
	clk := clock.FixedAt("2025-03-10T18:00:00Z")
	jobs := NewAttendanceJobs(attRepo, cfgRepo, userRepo, clk)

	err := jobs.MarkAbsentees(t.Context())
	require.NoError(t, err)

	require.Len(t, attRepo.created, 1)
	created := attRepo.created[0]
	assert.Equal(t, "u-2", created.UserID)
	assert.Equal(t, attendance.StatusAbsent, created.Status)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), created.Date)
	assert.True(t, created.IsValid)
}

func TestMarkAbsentees_BeforeWorkEnd(t *testing.T) {
	t.Parallel()

	attRepo, cfgRepo, userRepo := markAbsenteesFixture()
	clk := clock.FixedAt("2025-03-10T15:00:00Z")
	jobs := NewAttendanceJobs(attRepo, cfgRepo, userRepo, clk)

	require.NoError(t, jobs.MarkAbsentees(t.Context()))
	assert.Empty(t, attRepo.created)
}

func TestMarkAbsentees_NonWorkingDay(t *testing.T) {
	t.Parallel()

	attRepo, cfgRepo, userRepo := markAbsenteesFixture()
	// A Saturday.
	clk := clock.FixedAt("2025-03-08T18:00:00Z")
	jobs := NewAttendanceJobs(attRepo, cfgRepo, userRepo, clk)

	require.NoError(t, jobs.MarkAbsentees(t.Context()))
	assert.Empty(t, attRepo.created)
}

func TestMarkAbsentees_NoConfig(t *testing.T) {
	t.Parallel()

	attRepo, cfgRepo, userRepo := markAbsenteesFixture()
	cfgRepo.err = attendance.ErrNoConfigFound
	clk := clock.FixedAt("2025-03-10T18:00:00Z")
	jobs := NewAttendanceJobs(attRepo, cfgRepo, userRepo, clk)

	require.NoError(t, jobs.MarkAbsentees(t.Context()))
	assert.Empty(t, attRepo.created)
}
