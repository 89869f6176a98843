package permission

import (
	"testing"

	"github.com/karyahr/ess-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePermissionRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreatePermissionRequest{
		Type:      "cuti",
		StartDate: "2025-03-10",
		EndDate:   "2025-03-12",
		Reason:    "family matter",
	}
	assert.NoError(t, valid.Validate())

	t.Run("unknown type", func(t *testing.T) {
		req := valid
		req.Type = "holiday"
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "type", errs[0].Field)
	})

	t.Run("end before start", func(t *testing.T) {
		req := valid
		req.StartDate = "2025-03-12"
		req.EndDate = "2025-03-10"
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "end_date", errs[0].Field)
	})

	t.Run("malformed date", func(t *testing.T) {
		req := valid
		req.StartDate = "10-03-2025"
		assert.Error(t, req.Validate())
	})

	t.Run("missing reason", func(t *testing.T) {
		req := valid
		req.Reason = "   "
		assert.Error(t, req.Validate())
	})
}

func TestRejectRequest_Validate(t *testing.T) {
	t.Parallel()

	req := RejectRequest{ID: "x", RejectionReason: "overlaps with release week"}
	assert.NoError(t, req.Validate())

	req.RejectionReason = ""
	assert.ErrorIs(t, req.Validate(), ErrRejectionReasonRequired)

	req.RejectionReason = "  "
	assert.ErrorIs(t, req.Validate(), ErrRejectionReasonRequired)
}

func TestCancelRequest_Validate(t *testing.T) {
	t.Parallel()

	req := CancelRequest{ID: "x", CancelReason: "plans changed"}
	assert.NoError(t, req.Validate())

	req.CancelReason = ""
	assert.ErrorIs(t, req.Validate(), ErrCancelReasonRequired)
}

func TestCreateConfigRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateConfigRequest{
		Type:            "cuti",
		Label:           "Annual Leave",
		MaxPerMonth:     2,
		MaxDurationDays: 12,
	}
	assert.NoError(t, valid.Validate())

	t.Run("unknown type", func(t *testing.T) {
		req := valid
		req.Type = "unknown"
		assert.Error(t, req.Validate())
	})

	t.Run("non-positive limits", func(t *testing.T) {
		req := valid
		req.MaxPerMonth = 0
		assert.Error(t, req.Validate())

		req = valid
		req.MaxDurationDays = -1
		assert.Error(t, req.Validate())
	})
}
