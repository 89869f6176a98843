package attendance

import (
	"testing"
	"time"

	"github.com/karyahr/ess-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrString(v string) *string  { return &v }

func geofenceConfig() attendance.Config {
	return attendance.Config{
		LocationRequired: true,
		PhotoRequired:    false,
		MaxDistanceMeter: 100,
		OfficeLocations: []attendance.OfficeLocation{
			{Name: "HQ", Latitude: -6.2088, Longitude: 106.8456},
		},
	}
}

func TestCheckGeofence(t *testing.T) {
	t.Parallel()

	cfg := geofenceConfig()

	t.Run("inside radius", func(t *testing.T) {
		err := checkGeofence(cfg, ptrFloat(-6.2088), ptrFloat(106.8456), nil)
		assert.NoError(t, err)
	})

	t.Run("outside radius", func(t *testing.T) {
		// Roughly 5 km north of the office.
		err := checkGeofence(cfg, ptrFloat(-6.1600), ptrFloat(106.8456), nil)
		assert.ErrorIs(t, err, attendance.ErrOutsideOfficeArea)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		err := checkGeofence(cfg, nil, nil, nil)
		assert.ErrorIs(t, err, attendance.ErrLocationRequired)

		err = checkGeofence(cfg, ptrFloat(-6.2088), nil, nil)
		assert.ErrorIs(t, err, attendance.ErrLocationRequired)
	})

	t.Run("location not required", func(t *testing.T) {
		relaxed := cfg
		relaxed.LocationRequired = false
		err := checkGeofence(relaxed, nil, nil, nil)
		assert.NoError(t, err)
	})

	t.Run("photo required", func(t *testing.T) {
		strict := cfg
		strict.PhotoRequired = true

		err := checkGeofence(strict, ptrFloat(-6.2088), ptrFloat(106.8456), nil)
		assert.ErrorIs(t, err, attendance.ErrPhotoRequired)

		err = checkGeofence(strict, ptrFloat(-6.2088), ptrFloat(106.8456), ptrString(""))
		assert.ErrorIs(t, err, attendance.ErrPhotoRequired)

		err = checkGeofence(strict, ptrFloat(-6.2088), ptrFloat(106.8456), ptrString("https://cdn.example.com/p.jpg"))
		assert.NoError(t, err)
	})

	t.Run("second office in range", func(t *testing.T) {
		multi := cfg
		multi.OfficeLocations = []attendance.OfficeLocation{
			{Name: "HQ", Latitude: -6.2088, Longitude: 106.8456},
			{Name: "Branch", Latitude: -6.1600, Longitude: 106.8456},
		}
		err := checkGeofence(multi, ptrFloat(-6.1600), ptrFloat(106.8456), nil)
		assert.NoError(t, err)
	})
}

func TestDateOf(t *testing.T) {
	t.Parallel()

	loc, _ := time.LoadLocation("Asia/Jakarta")
	in := time.Date(2025, 3, 10, 14, 35, 22, 123, loc)

	got := dateOf(in)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}
