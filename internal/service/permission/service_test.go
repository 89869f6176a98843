package permission

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karyahr/ess-backend-go/internal/domain/permission"
	"github.com/karyahr/ess-backend-go/internal/domain/user"
	"github.com/karyahr/ess-backend-go/internal/pkg/clock"
	"github.com/karyahr/ess-backend-go/internal/service/notification"
)

func TestMonthWindow(t *testing.T) {
	t.Parallel()

	from, to := monthWindow(time.Date(2025, 3, 17, 14, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), from)
	assert.True(t, to.Before(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, to.After(time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)))
}

func TestMonthWindow_December(t *testing.T) {
	t.Parallel()

	from, to := monthWindow(time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, 2025, to.Year())
	assert.Equal(t, time.December, to.Month())
}

func TestMonthWindow_PreservesLocation(t *testing.T) {
	t.Parallel()

	loc, _ := time.LoadLocation("Asia/Jakarta")
	from, to := monthWindow(time.Date(2025, 6, 5, 9, 0, 0, 0, loc))

	assert.Equal(t, loc, from.Location())
	assert.Equal(t, loc, to.Location())
}

type fakePermissionRepo struct {
	used      int
	countFrom time.Time
	countTo   time.Time
	created   []permission.Permission
}

func (f *fakePermissionRepo) Create(ctx context.Context, p permission.Permission) (permission.Permission, error) {
	p.ID = "perm-1"
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakePermissionRepo) GetByID(ctx context.Context, id string) (permission.Permission, error) {
	return permission.Permission{}, permission.ErrPermissionNotFound
}

func (f *fakePermissionRepo) Update(ctx context.Context, p permission.Permission) error { return nil }
func (f *fakePermissionRepo) Delete(ctx context.Context, id string) error               { return nil }

func (f *fakePermissionRepo) List(ctx context.Context, filter permission.PermissionFilter) ([]permission.Permission, int64, error) {
	return nil, 0, nil
}

func (f *fakePermissionRepo) ListByUser(ctx context.Context, userID string, filter permission.PermissionFilter) ([]permission.Permission, int64, error) {
	return nil, 0, nil
}

func (f *fakePermissionRepo) CountActiveInMonth(ctx context.Context, userID string, permissionType permission.Type, from, to time.Time) (int, error) {
	f.countFrom = from
	f.countTo = to
	return f.used, nil
}

type fakeConfigRepo struct {
	cfg permission.Config
}

func (f *fakeConfigRepo) Create(ctx context.Context, cfg permission.Config) (permission.Config, error) {
	return cfg, nil
}

func (f *fakeConfigRepo) GetByID(ctx context.Context, id string) (permission.Config, error) {
	return f.cfg, nil
}

func (f *fakeConfigRepo) GetActiveByType(ctx context.Context, permissionType permission.Type) (permission.Config, error) {
	return f.cfg, nil
}

func (f *fakeConfigRepo) HasActiveByType(ctx context.Context, permissionType permission.Type, excludeID *string) (bool, error) {
	return true, nil
}

func (f *fakeConfigRepo) List(ctx context.Context, activeOnly bool) ([]permission.Config, error) {
	return []permission.Config{f.cfg}, nil
}

func (f *fakeConfigRepo) Update(ctx context.Context, cfg permission.Config) error { return nil }
func (f *fakeConfigRepo) Delete(ctx context.Context, id string) error             { return nil }

type fakeUserRepo struct{}

func (fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	return newUser, nil
}

func (fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (fakeUserRepo) Update(ctx context.Context, req user.UpdateUserRequest) error { return nil }

func (fakeUserRepo) List(ctx context.Context, activeOnly bool) ([]user.User, error) {
	return nil, nil
}

func authedContext(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo *fakePermissionRepo, cfg permission.Config, clk clock.Clock) *PermissionServiceImpl {
	return &PermissionServiceImpl{
		transact: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return fn(ctx)
		},
		permissionRepo: repo,
		configRepo:     &fakeConfigRepo{cfg: cfg},
		userRepo:       fakeUserRepo{},
		emitter:        notification.NopEmitter{},
		clock:          clk,
	}
}

func TestCreate_QuotaWindowFollowsFilingMonth(t *testing.T) {
	t.Parallel()

	// Filed mid-March for a range in April. The quota check must run
	// against March, the month the request was filed.
	repo := &fakePermissionRepo{used: 2}
	svc := newTestService(repo, permission.Config{
		Type:            permission.TypeShortLeave,
		MaxPerMonth:     2,
		MaxDurationDays: 3,
	}, clock.FixedAt("2025-03-15T10:00:00Z"))

	_, err := svc.Create(authedContext(t, "u-1", user.RoleUser), permission.CreatePermissionRequest{
		Type:      "short_leave",
		StartDate: "2025-04-10",
		EndDate:   "2025-04-10",
		Reason:    "family matter",
	})

	var quotaErr *permission.QuotaExceededError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, 2, quotaErr.Limit)
	assert.Empty(t, repo.created)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), repo.countFrom)
	assert.Equal(t, time.March, repo.countTo.Month())
}

func TestCreate_AdmitsUnderQuota(t *testing.T) {
	t.Parallel()

	repo := &fakePermissionRepo{used: 1}
	svc := newTestService(repo, permission.Config{
		Type:            permission.TypeShortLeave,
		MaxPerMonth:     2,
		MaxDurationDays: 3,
	}, clock.FixedAt("2025-03-15T10:00:00Z"))

	resp, err := svc.Create(authedContext(t, "u-1", user.RoleUser), permission.CreatePermissionRequest{
		Type:      "short_leave",
		StartDate: "2025-03-20",
		EndDate:   "2025-03-21",
		Reason:    "errand",
	})

	require.NoError(t, err)
	assert.Equal(t, string(permission.StatusPending), resp.Status)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "u-1", repo.created[0].UserID)
}

func TestCreate_RejectsOverlongDuration(t *testing.T) {
	t.Parallel()

	repo := &fakePermissionRepo{}
	svc := newTestService(repo, permission.Config{
		Type:            permission.TypeCuti,
		MaxPerMonth:     1,
		MaxDurationDays: 12,
	}, clock.FixedAt("2025-03-15T10:00:00Z"))

	_, err := svc.Create(authedContext(t, "u-1", user.RoleUser), permission.CreatePermissionRequest{
		Type:      "cuti",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-14",
		Reason:    "annual leave",
	})

	var durErr *permission.DurationExceededError
	require.ErrorAs(t, err, &durErr)
	assert.Equal(t, 12, durErr.Limit)
	assert.Empty(t, repo.created)
}
