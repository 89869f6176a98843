package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/karyahr/ess-backend-go/internal/domain/permission"
	"github.com/karyahr/ess-backend-go/internal/handler/http/response"
)

type PermissionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)

	ApproveStage1(w http.ResponseWriter, r *http.Request)
	RejectStage1(w http.ResponseWriter, r *http.Request)
	ApproveStage2(w http.ResponseWriter, r *http.Request)
	RejectStage2(w http.ResponseWriter, r *http.Request)

	GetQuotas(w http.ResponseWriter, r *http.Request)
}

type PermissionHandlerImpl struct {
	permissionService permission.PermissionService
}

func NewPermissionHandler(permissionService permission.PermissionService) PermissionHandler {
	return &PermissionHandlerImpl{permissionService: permissionService}
}

func permissionFilterFromQuery(r *http.Request) permission.PermissionFilter {
	page, limit := pagination(r)
	return permission.PermissionFilter{
		UserID: queryString(r, "user_id"),
		Status: queryString(r, "status"),
		Type:   queryString(r, "type"),
		Month:  queryInt(r, "month"),
		Year:   queryInt(r, "year"),
		Page:   page,
		Limit:  limit,
	}
}

// Create implements PermissionHandler.
func (h *PermissionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq permission.CreatePermissionRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreatePermission decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.permissionService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("CreatePermission service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Permission created", "permission_id", result.ID, "type", result.Type)
	response.Created(w, "Permission request submitted", result)
}

// List implements PermissionHandler.
func (h *PermissionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.permissionService.List(r.Context(), permissionFilterFromQuery(r))
	if err != nil {
		slog.Error("ListPermissions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Permissions, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// ListMy implements PermissionHandler.
func (h *PermissionHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	result, err := h.permissionService.GetMy(r.Context(), permissionFilterFromQuery(r))
	if err != nil {
		slog.Error("ListMyPermissions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Permissions, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Get implements PermissionHandler.
func (h *PermissionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.permissionService.Get(r.Context(), id)
	if err != nil {
		slog.Error("GetPermission service error", "error", err, "permission_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements PermissionHandler.
func (h *PermissionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq permission.UpdatePermissionRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdatePermission decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	result, err := h.permissionService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdatePermission service error", "error", err, "permission_id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission request updated", result)
}

// Delete implements PermissionHandler.
func (h *PermissionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.permissionService.Delete(r.Context(), id); err != nil {
		slog.Error("DeletePermission service error", "error", err, "permission_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission request deleted", nil)
}

// Cancel implements PermissionHandler.
func (h *PermissionHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	var cancelReq permission.CancelRequest

	if err := json.NewDecoder(r.Body).Decode(&cancelReq); err != nil {
		slog.Error("CancelPermission decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	cancelReq.ID = chi.URLParam(r, "id")

	result, err := h.permissionService.Cancel(r.Context(), cancelReq)
	if err != nil {
		slog.Error("CancelPermission service error", "error", err, "permission_id", cancelReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission request canceled", result)
}

// ApproveStage1 implements PermissionHandler.
func (h *PermissionHandlerImpl) ApproveStage1(w http.ResponseWriter, r *http.Request) {
	h.approve(w, r, h.permissionService.ApproveStage1)
}

// ApproveStage2 implements PermissionHandler.
func (h *PermissionHandlerImpl) ApproveStage2(w http.ResponseWriter, r *http.Request) {
	h.approve(w, r, h.permissionService.ApproveStage2)
}

func (h *PermissionHandlerImpl) approve(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, req permission.ApproveRequest) (permission.PermissionResponse, error),
) {
	var approveReq permission.ApproveRequest

	// A body is optional; an approval may carry a note.
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&approveReq)
	}
	approveReq.ID = chi.URLParam(r, "id")

	result, err := fn(r.Context(), approveReq)
	if err != nil {
		slog.Error("ApprovePermission service error", "error", err, "permission_id", approveReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission request approved", result)
}

// RejectStage1 implements PermissionHandler.
func (h *PermissionHandlerImpl) RejectStage1(w http.ResponseWriter, r *http.Request) {
	h.rejectWith(w, r, h.permissionService.RejectStage1)
}

// RejectStage2 implements PermissionHandler.
func (h *PermissionHandlerImpl) RejectStage2(w http.ResponseWriter, r *http.Request) {
	h.rejectWith(w, r, h.permissionService.RejectStage2)
}

func (h *PermissionHandlerImpl) rejectWith(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, req permission.RejectRequest) (permission.PermissionResponse, error),
) {
	var rejectReq permission.RejectRequest

	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		slog.Error("RejectPermission decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	rejectReq.ID = chi.URLParam(r, "id")

	result, err := fn(r.Context(), rejectReq)
	if err != nil {
		slog.Error("RejectPermission service error", "error", err, "permission_id", rejectReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission request rejected", result)
}

// GetQuotas implements PermissionHandler.
func (h *PermissionHandlerImpl) GetQuotas(w http.ResponseWriter, r *http.Request) {
	result, err := h.permissionService.GetQuotas(r.Context())
	if err != nil {
		slog.Error("GetQuotas service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
