package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/karyahr/ess-backend-go/internal/domain/attendance"
	"github.com/karyahr/ess-backend-go/internal/domain/notification"
	"github.com/karyahr/ess-backend-go/internal/domain/payroll"
	"github.com/karyahr/ess-backend-go/internal/domain/user"
	"github.com/karyahr/ess-backend-go/internal/pkg/clock"
	"github.com/karyahr/ess-backend-go/internal/pkg/database"
	"github.com/karyahr/ess-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	emitter        notification.Emitter
	clock          clock.Clock
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	emitter notification.Emitter,
	clk clock.Clock,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
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

func (s *PayrollServiceImpl) Calculate(ctx context.Context, req payroll.CalculateRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	basicSalary := u.BasicSalary
	if req.BasicSalary != nil {
		basicSalary = *req.BasicSalary
	}
	allowances := u.Allowances
	if req.Allowances != nil {
		allowances = *req.Allowances
	}

	var created payroll.Payroll
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		exists, err := s.payrollRepo.ExistsForPeriod(txCtx, req.UserID, req.Month, req.Year)
		if err != nil {
			return err
		}
		if exists {
			return payroll.ErrPayrollExists
		}

		from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, -1)
		counts, err := s.attendanceRepo.CountByStatusInRange(txCtx, req.UserID, from, to)
		if err != nil {
			return err
		}

		result := Calculate(basicSalary, allowances, counts)

		notes := fmt.Sprintf("late: %d, absent: %d, half day: %d",
			result.LateCount, result.AbsentCount, result.HalfDayCount)

		created, err = s.payrollRepo.Create(txCtx, payroll.Payroll{
			UserID:              req.UserID,
			Month:               req.Month,
			Year:                req.Year,
			BasicSalary:         result.BasicSalary,
			Allowances:          result.Allowances,
			Overtime:            result.Overtime,
			Deductions:          result.Deductions,
			BPJSKesehatan:       result.BPJSKesehatan,
			BPJSKetenagakerjaan: result.BPJSKetenagakerjaan,
			PPh21:               result.PPh21,
			TotalEarnings:       result.TotalEarnings,
			TotalDeductions:     result.TotalDeductions,
			NetSalary:           result.NetSalary,
			Status:              payroll.StatusDraft,
			Notes:               &notes,
		})
		return err
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.ToResponse(created), nil
}

func (s *PayrollServiceImpl) Process(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	var updated payroll.Payroll
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		p, err := s.payrollRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if err := p.CanProcess(); err != nil {
			return err
		}

		p.Status = payroll.StatusProcessed
		if err := s.payrollRepo.Update(txCtx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	s.emitter.Emit(ctx, notification.EmitRequest{
		UserID:  updated.UserID,
		Type:    notification.TypePayrollProcessed,
		Title:   "Payroll processed",
		Message: fmt.Sprintf("Your payroll for %d-%02d has been processed.", updated.Year, updated.Month),
	})

	return payroll.ToResponse(updated), nil
}

func (s *PayrollServiceImpl) MarkAsPaid(ctx context.Context, req payroll.MarkAsPaidRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	var updated payroll.Payroll
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		p, err := s.payrollRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if err := p.CanMarkAsPaid(); err != nil {
			return err
		}

		paymentDate := s.clock.Now()
		if req.PaymentDate != nil {
			paymentDate, _ = time.Parse("2006-01-02", *req.PaymentDate)
		}

		p.Status = payroll.StatusPaid
		p.PaymentDate = &paymentDate
		if err := s.payrollRepo.Update(txCtx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	s.emitter.Emit(ctx, notification.EmitRequest{
		UserID:  updated.UserID,
		Type:    notification.TypePayrollPaid,
		Title:   "Salary paid",
		Message: fmt.Sprintf("Your salary for %d-%02d (%s) has been paid.", updated.Year, updated.Month, updated.NetSalary.StringFixed(2)),
	})

	return payroll.ToResponse(updated), nil
}

func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	if p.UserID != userID && !user.HasPermission(role, user.PermissionPayrollManage) {
		return payroll.PayrollResponse{}, user.ErrForbidden
	}

	return payroll.ToResponse(p), nil
}

func (s *PayrollServiceImpl) GetMy(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	payrolls, total, err := s.payrollRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	return buildListResponse(payrolls, total, filter), nil
}

func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	payrolls, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	return buildListResponse(payrolls, total, filter), nil
}

func buildListResponse(payrolls []payroll.Payroll, total int64, filter payroll.PayrollFilter) payroll.ListPayrollResponse {
	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	responses := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		responses = append(responses, payroll.ToResponse(p))
	}

	return payroll.ListPayrollResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Payrolls:   responses,
	}
}

func (s *PayrollServiceImpl) GeneratePayslipPDF(ctx context.Context, id string) ([]byte, error) {
	userID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.UserID != userID && !user.HasPermission(role, user.PermissionPayrollManage) {
		return nil, user.ErrForbidden
	}

	if p.Status == payroll.StatusDraft {
		return nil, payroll.ErrPayslipNotReady
	}

	return renderPayslip(p)
}
