package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/karyahr/ess-backend-go/internal/domain/payroll"
	"github.com/karyahr/ess-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `pr.id, pr.user_id, pr.month, pr.year,
	pr.basic_salary, pr.allowances, pr.overtime,
	pr.deductions, pr.bpjs_kesehatan, pr.bpjs_ketenagakerjaan, pr.pph21,
	pr.total_earnings, pr.total_deductions, pr.net_salary,
	pr.status, pr.payment_date, pr.notes, pr.created_at, pr.updated_at`

func scanPayroll(row pgx.Row, withUserName bool) (payroll.Payroll, error) {
	var p payroll.Payroll
	dest := []interface{}{
		&p.ID, &p.UserID, &p.Month, &p.Year,
		&p.BasicSalary, &p.Allowances, &p.Overtime,
		&p.Deductions, &p.BPJSKesehatan, &p.BPJSKetenagakerjaan, &p.PPh21,
		&p.TotalEarnings, &p.TotalDeductions, &p.NetSalary,
		&p.Status, &p.PaymentDate, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	}
	if withUserName {
		dest = append(dest, &p.UserName)
	}
	err := row.Scan(dest...)
	return p, err
}

func (r *payrollRepositoryImpl) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO payrolls (
			id, user_id, month, year,
			basic_salary, allowances, overtime,
			deductions, bpjs_kesehatan, bpjs_ketenagakerjaan, pph21,
			total_earnings, total_deductions, net_salary,
			status, notes, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW()
		) RETURNING %s
	`, strings.ReplaceAll(payrollColumns, "pr.", ""))

	created, err := scanPayroll(q.QueryRow(ctx, query,
		p.UserID, p.Month, p.Year,
		p.BasicSalary, p.Allowances, p.Overtime,
		p.Deductions, p.BPJSKesehatan, p.BPJSKetenagakerjaan, p.PPh21,
		p.TotalEarnings, p.TotalDeductions, p.NetSalary,
		p.Status, p.Notes,
	), false)
	if err != nil {
		if strings.Contains(err.Error(), "payrolls_user_id_month_year_key") {
			return payroll.Payroll{}, payroll.ErrPayrollExists
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return created, nil
}

func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, u.name AS user_name
		FROM payrolls pr
		LEFT JOIN users u ON u.id = pr.user_id
		WHERE pr.id = $1
	`, payrollColumns)

	p, err := scanPayroll(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll by ID: %w", err)
	}

	return p, nil
}

func (r *payrollRepositoryImpl) ExistsForPeriod(ctx context.Context, userID string, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM payrolls WHERE user_id = $1 AND month = $2 AND year = $3)`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll existence: %w", err)
	}

	return exists, nil
}

func (r *payrollRepositoryImpl) Update(ctx context.Context, p payroll.Payroll) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls SET
			basic_salary = $1, allowances = $2, overtime = $3,
			deductions = $4, bpjs_kesehatan = $5, bpjs_ketenagakerjaan = $6, pph21 = $7,
			total_earnings = $8, total_deductions = $9, net_salary = $10,
			status = $11, payment_date = $12, notes = $13, updated_at = NOW()
		WHERE id = $14
	`

	commandTag, err := q.Exec(ctx, query,
		p.BasicSalary, p.Allowances, p.Overtime,
		p.Deductions, p.BPJSKesehatan, p.BPJSKetenagakerjaan, p.PPh21,
		p.TotalEarnings, p.TotalDeductions, p.NetSalary,
		p.Status, p.PaymentDate, p.Notes, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

func buildPayrollWhere(filter payroll.PayrollFilter) (string, []interface{}, int) {
	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		where += fmt.Sprintf(" AND pr.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Month != nil {
		where += fmt.Sprintf(" AND pr.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		where += fmt.Sprintf(" AND pr.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND pr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	return where, args, argIdx
}

func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args, argIdx := buildPayrollWhere(filter)

	countQuery := "SELECT COUNT(*) FROM payrolls pr WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payrolls: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT %s, u.name AS user_name
		FROM payrolls pr
		LEFT JOIN users u ON u.id = pr.user_id
		WHERE %s
		ORDER BY pr.year DESC, pr.month DESC, pr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, payrollColumns, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows, true)
		if err != nil {
			return nil, 0, err
		}
		payrolls = append(payrolls, p)
	}

	return payrolls, total, rows.Err()
}

func (r *payrollRepositoryImpl) ListByUser(ctx context.Context, userID string, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	filter.UserID = &userID
	return r.List(ctx, filter)
}
