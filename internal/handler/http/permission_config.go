package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/karyahr/ess-backend-go/internal/domain/permission"
	"github.com/karyahr/ess-backend-go/internal/handler/http/response"
)

type PermissionConfigHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PermissionConfigHandlerImpl struct {
	configService permission.ConfigService
}

func NewPermissionConfigHandler(configService permission.ConfigService) PermissionConfigHandler {
	return &PermissionConfigHandlerImpl{configService: configService}
}

// Create implements PermissionConfigHandler.
func (h *PermissionConfigHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq permission.CreateConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreatePermissionConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.configService.CreateConfig(r.Context(), createReq)
	if err != nil {
		slog.Error("CreatePermissionConfig service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Permission configuration created", result)
}

// List implements PermissionConfigHandler.
func (h *PermissionConfigHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.configService.ListConfigs(r.Context(), activeOnly)
	if err != nil {
		slog.Error("ListPermissionConfigs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements PermissionConfigHandler.
func (h *PermissionConfigHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.configService.GetConfig(r.Context(), id)
	if err != nil {
		slog.Error("GetPermissionConfig service error", "error", err, "config_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements PermissionConfigHandler.
func (h *PermissionConfigHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq permission.UpdateConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdatePermissionConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	result, err := h.configService.UpdateConfig(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdatePermissionConfig service error", "error", err, "config_id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission configuration updated", result)
}

// Delete implements PermissionConfigHandler.
func (h *PermissionConfigHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.configService.DeleteConfig(r.Context(), id); err != nil {
		slog.Error("DeletePermissionConfig service error", "error", err, "config_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission configuration deleted", nil)
}
