package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/karyahr/ess-backend-go/internal/domain/payroll"
	"github.com/karyahr/ess-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	Process(w http.ResponseWriter, r *http.Request)
	MarkAsPaid(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

func payrollFilterFromQuery(r *http.Request) payroll.PayrollFilter {
	page, limit := pagination(r)
	return payroll.PayrollFilter{
		UserID: queryString(r, "user_id"),
		Month:  queryInt(r, "month"),
		Year:   queryInt(r, "year"),
		Status: queryString(r, "status"),
		Page:   page,
		Limit:  limit,
	}
}

// Calculate implements PayrollHandler.
func (h *PayrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var calcReq payroll.CalculateRequest

	if err := json.NewDecoder(r.Body).Decode(&calcReq); err != nil {
		slog.Error("CalculatePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.Calculate(r.Context(), calcReq)
	if err != nil {
		slog.Error("CalculatePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll calculated", "payroll_id", result.ID, "user_id", result.UserID)
	response.Created(w, "Payroll calculated", result)
}

// Process implements PayrollHandler.
func (h *PayrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.Process(r.Context(), id)
	if err != nil {
		slog.Error("ProcessPayroll service error", "error", err, "payroll_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll processed", result)
}

// MarkAsPaid implements PayrollHandler.
func (h *PayrollHandlerImpl) MarkAsPaid(w http.ResponseWriter, r *http.Request) {
	var paidReq payroll.MarkAsPaidRequest

	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&paidReq)
	}
	paidReq.ID = chi.URLParam(r, "id")

	result, err := h.payrollService.MarkAsPaid(r.Context(), paidReq)
	if err != nil {
		slog.Error("MarkPayrollAsPaid service error", "error", err, "payroll_id", paidReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll marked as paid", result)
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.Get(r.Context(), id)
	if err != nil {
		slog.Error("GetPayroll service error", "error", err, "payroll_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.List(r.Context(), payrollFilterFromQuery(r))
	if err != nil {
		slog.Error("ListPayrolls service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Payrolls, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// ListMy implements PayrollHandler.
func (h *PayrollHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetMy(r.Context(), payrollFilterFromQuery(r))
	if err != nil {
		slog.Error("ListMyPayrolls service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Payrolls, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// DownloadPayslip implements PayrollHandler.
func (h *PayrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pdfBytes, err := h.payrollService.GeneratePayslipPDF(r.Context(), id)
	if err != nil {
		slog.Error("DownloadPayslip service error", "error", err, "payroll_id", id)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
