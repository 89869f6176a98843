package permission

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/karyahr/ess-backend-go/internal/domain/notification"
	"github.com/karyahr/ess-backend-go/internal/domain/permission"
	"github.com/karyahr/ess-backend-go/internal/domain/user"
	"github.com/karyahr/ess-backend-go/internal/pkg/clock"
	"github.com/karyahr/ess-backend-go/internal/pkg/database"
	"github.com/karyahr/ess-backend-go/internal/repository/postgresql"
)

type PermissionServiceImpl struct {
	// transact wraps fn in a database transaction. Held as a field so
	// tests can substitute a pass-through.
	transact       func(ctx context.Context, fn func(txCtx context.Context) error) error
	permissionRepo permission.PermissionRepository
	configRepo     permission.ConfigRepository
	userRepo       user.UserRepository
	emitter        notification.Emitter
	clock          clock.Clock
}

func NewPermissionService(
	db *database.DB,
	permissionRepo permission.PermissionRepository,
	configRepo permission.ConfigRepository,
	userRepo user.UserRepository,
	emitter notification.Emitter,
	clk clock.Clock,
) permission.PermissionService {
	return &PermissionServiceImpl{
		transact: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		permissionRepo: permissionRepo,
		configRepo:     configRepo,
		userRepo:       userRepo,
		emitter:        emitter,
		clock:          clk,
	}
}

func getClaimsFromContext(ctx context.Context) (userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, _ := claims["role"].(string)

	return userID, user.Role(roleStr), nil
}

// monthWindow returns the first and last instant of t's calendar month.
func monthWindow(t time.Time) (from, to time.Time) {
	from = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	to = from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return from, to
}

func (s *PermissionServiceImpl) Create(ctx context.Context, req permission.CreatePermissionRequest) (permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.PermissionResponse{}, err
	}

	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	permissionType := permission.Type(req.Type)

	cfg, err := s.configRepo.GetActiveByType(ctx, permissionType)
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	duration := int(endDate.Sub(startDate).Hours()/24) + 1
	if duration > cfg.MaxDurationDays {
		return permission.PermissionResponse{}, &permission.DurationExceededError{
			Type:  permissionType,
			Limit: cfg.MaxDurationDays,
		}
	}

	var created permission.Permission
	err = s.transact(ctx, func(txCtx context.Context) error {
		// Quota is consumed in the month the request is filed, regardless
		// of when it starts. The count and the insert share this
		// transaction.
		from, to := monthWindow(s.clock.Now())
		used, err := s.permissionRepo.CountActiveInMonth(txCtx, userID, permissionType, from, to)
		if err != nil {
			return err
		}
		if used >= cfg.MaxPerMonth {
			return &permission.QuotaExceededError{
				Type:  permissionType,
				Limit: cfg.MaxPerMonth,
			}
		}

		created, err = s.permissionRepo.Create(txCtx, permission.Permission{
			UserID:    userID,
			Type:      permissionType,
			StartDate: startDate,
			EndDate:   endDate,
			Reason:    req.Reason,
			Status:    permission.StatusPending,
		})
		return err
	})
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	s.notifyApprovers(ctx, created)

	return permission.ToResponse(created), nil
}

// notifyApprovers tells every active first-stage reviewer about a new request.
func (s *PermissionServiceImpl) notifyApprovers(ctx context.Context, p permission.Permission) {
	approvers, err := s.userRepo.List(ctx, true)
	if err != nil {
		return
	}

	for _, u := range approvers {
		if u.Role != user.RoleApproval {
			continue
		}
		s.emitter.Emit(ctx, notification.EmitRequest{
			UserID:  u.ID,
			Type:    notification.TypePermissionCreated,
			Title:   "New permission request",
			Message: fmt.Sprintf("A new %s request (%s to %s) is awaiting your review.", p.Type, p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02")),
		})
	}
}

func (s *PermissionServiceImpl) notifyOwner(ctx context.Context, p permission.Permission, title, message string) {
	s.emitter.Emit(ctx, notification.EmitRequest{
		UserID:  p.UserID,
		Type:    notification.TypePermissionStatus,
		Title:   title,
		Message: message,
	})
}

func (s *PermissionServiceImpl) Get(ctx context.Context, id string) (permission.PermissionResponse, error) {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	p, err := s.permissionRepo.GetByID(ctx, id)
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	if p.UserID != userID && !user.HasPermission(role, user.PermissionRequestViewAll) {
		return permission.PermissionResponse{}, user.ErrForbidden
	}

	return permission.ToResponse(p), nil
}

func (s *PermissionServiceImpl) GetMy(ctx context.Context, filter permission.PermissionFilter) (permission.ListPermissionResponse, error) {
	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return permission.ListPermissionResponse{}, err
	}

	permissions, total, err := s.permissionRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		return permission.ListPermissionResponse{}, err
	}

	return buildListResponse(permissions, total, filter), nil
}

func (s *PermissionServiceImpl) List(ctx context.Context, filter permission.PermissionFilter) (permission.ListPermissionResponse, error) {
	permissions, total, err := s.permissionRepo.List(ctx, filter)
	if err != nil {
		return permission.ListPermissionResponse{}, err
	}

	return buildListResponse(permissions, total, filter), nil
}

func buildListResponse(permissions []permission.Permission, total int64, filter permission.PermissionFilter) permission.ListPermissionResponse {
	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	responses := make([]permission.PermissionResponse, 0, len(permissions))
	for _, p := range permissions {
		responses = append(responses, permission.ToResponse(p))
	}

	return permission.ListPermissionResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		Permissions: responses,
	}
}

func (s *PermissionServiceImpl) ApproveStage1(ctx context.Context, req permission.ApproveRequest) (permission.PermissionResponse, error) {
	approverID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	var updated permission.Permission
	err = s.transact(ctx, func(txCtx context.Context) error {
		p, err := s.permissionRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if err := p.CanApproveStage1(); err != nil {
			return err
		}

		now := s.clock.Now()
		p.Status = permission.StatusApprovedByApproval
		p.ApprovalID = &approverID
		p.ApprovalDate = &now
		p.ApprovalNote = req.Note

		if err := s.permissionRepo.Update(txCtx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	s.notifyOwner(ctx, updated, "Permission approved",
		fmt.Sprintf("Your %s request passed first-stage approval and is awaiting HRD.", updated.Type))

	return permission.ToResponse(updated), nil
}

func (s *PermissionServiceImpl) RejectStage1(ctx context.Context, req permission.RejectRequest) (permission.PermissionResponse, error) {
	return s.reject(ctx, req, false)
}

func (s *PermissionServiceImpl) ApproveStage2(ctx context.Context, req permission.ApproveRequest) (permission.PermissionResponse, error) {
	hrdID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	var updated permission.Permission
	err = s.transact(ctx, func(txCtx context.Context) error {
		p, err := s.permissionRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if err := p.CanApproveStage2(); err != nil {
			return err
		}

		now := s.clock.Now()
		p.Status = permission.StatusApproved
		p.HRDID = &hrdID
		p.HRDDate = &now
		p.HRDNote = req.Note

		if err := s.permissionRepo.Update(txCtx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	// No notification on final approval. The stage-one notification
	// already told the owner the request is moving forward, and the
	// status change itself is visible on the request.

	return permission.ToResponse(updated), nil
}

func (s *PermissionServiceImpl) RejectStage2(ctx context.Context, req permission.RejectRequest) (permission.PermissionResponse, error) {
	return s.reject(ctx, req, true)
}

func (s *PermissionServiceImpl) reject(ctx context.Context, req permission.RejectRequest, hrdStage bool) (permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.PermissionResponse{}, err
	}

	reviewerID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	var updated permission.Permission
	err = s.transact(ctx, func(txCtx context.Context) error {
		p, err := s.permissionRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		if hrdStage {
			if err := p.CanRejectStage2(); err != nil {
				return err
			}
			p.HRDID = &reviewerID
			p.HRDDate = &now
		} else {
			if err := p.CanRejectStage1(); err != nil {
				return err
			}
			p.ApprovalID = &reviewerID
			p.ApprovalDate = &now
		}
		p.Status = permission.StatusRejected
		p.RejectionReason = &req.RejectionReason

		if err := s.permissionRepo.Update(txCtx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	s.notifyOwner(ctx, updated, "Permission rejected",
		fmt.Sprintf("Your %s request was rejected: %s", updated.Type, req.RejectionReason))

	return permission.ToResponse(updated), nil
}

func (s *PermissionServiceImpl) Cancel(ctx context.Context, req permission.CancelRequest) (permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.PermissionResponse{}, err
	}

	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	var updated permission.Permission
	err = s.transact(ctx, func(txCtx context.Context) error {
		p, err := s.permissionRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if p.UserID != userID {
			return permission.ErrNotOwner
		}

		if err := p.CanCancel(); err != nil {
			return err
		}

		now := s.clock.Now()
		p.Status = permission.StatusCanceled
		p.CancelReason = &req.CancelReason
		p.CanceledAt = &now
		p.CanceledBy = &userID

		if err := s.permissionRepo.Update(txCtx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	s.notifyOwner(ctx, updated, "Permission canceled",
		fmt.Sprintf("Your %s request was canceled.", updated.Type))

	return permission.ToResponse(updated), nil
}

func (s *PermissionServiceImpl) Update(ctx context.Context, req permission.UpdatePermissionRequest) (permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.PermissionResponse{}, err
	}

	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	var updated permission.Permission
	err = s.transact(ctx, func(txCtx context.Context) error {
		p, err := s.permissionRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if p.UserID != userID {
			return permission.ErrNotOwner
		}

		if err := p.CanEdit(); err != nil {
			return err
		}

		if req.Type != nil {
			p.Type = permission.Type(*req.Type)
		}
		if req.StartDate != nil {
			p.StartDate, _ = time.Parse("2006-01-02", *req.StartDate)
		}
		if req.EndDate != nil {
			p.EndDate, _ = time.Parse("2006-01-02", *req.EndDate)
		}
		if req.Reason != nil {
			p.Reason = *req.Reason
		}

		if p.EndDate.Before(p.StartDate) {
			return permission.ErrInvalidDateRange
		}

		cfg, err := s.configRepo.GetActiveByType(txCtx, p.Type)
		if err != nil {
			return err
		}
		if p.DurationDays() > cfg.MaxDurationDays {
			return &permission.DurationExceededError{
				Type:  p.Type,
				Limit: cfg.MaxDurationDays,
			}
		}

		if err := s.permissionRepo.Update(txCtx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	return permission.ToResponse(updated), nil
}

func (s *PermissionServiceImpl) Delete(ctx context.Context, id string) error {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	p, err := s.permissionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Admins may delete any request; owners only while it is pending.
	if role != user.RoleAdmin {
		if p.UserID != userID {
			return permission.ErrNotOwner
		}
		if err := p.CanEdit(); err != nil {
			return err
		}
	}

	return s.permissionRepo.Delete(ctx, id)
}

func (s *PermissionServiceImpl) GetQuotas(ctx context.Context) ([]permission.QuotaResponse, error) {
	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	configs, err := s.configRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	from, to := monthWindow(s.clock.Now())

	quotas := make([]permission.QuotaResponse, 0, len(configs))
	for _, cfg := range configs {
		used, err := s.permissionRepo.CountActiveInMonth(ctx, userID, cfg.Type, from, to)
		if err != nil {
			return nil, err
		}

		quotas = append(quotas, permission.QuotaResponse{
			Type:            string(cfg.Type),
			Label:           cfg.Label,
			MaxPerMonth:     cfg.MaxPerMonth,
			Used:            used,
			Remaining:       cfg.MaxPerMonth - used,
			MaxDurationDays: cfg.MaxDurationDays,
		})
	}

	return quotas, nil
}
