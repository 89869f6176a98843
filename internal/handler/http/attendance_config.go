package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/karyahr/ess-backend-go/internal/domain/attendance"
	"github.com/karyahr/ess-backend-go/internal/handler/http/response"
)

type AttendanceConfigHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceConfigHandlerImpl struct {
	configService attendance.ConfigService
}

func NewAttendanceConfigHandler(configService attendance.ConfigService) AttendanceConfigHandler {
	return &AttendanceConfigHandlerImpl{configService: configService}
}

// Create implements AttendanceConfigHandler.
func (h *AttendanceConfigHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq attendance.CreateConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateAttendanceConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.configService.CreateConfig(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateAttendanceConfig service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance configuration created", result)
}

// List implements AttendanceConfigHandler.
func (h *AttendanceConfigHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.configService.ListConfigs(r.Context())
	if err != nil {
		slog.Error("ListAttendanceConfigs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements AttendanceConfigHandler.
func (h *AttendanceConfigHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.configService.GetConfig(r.Context(), id)
	if err != nil {
		slog.Error("GetAttendanceConfig service error", "error", err, "config_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements AttendanceConfigHandler.
func (h *AttendanceConfigHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq attendance.UpdateConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateAttendanceConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	result, err := h.configService.UpdateConfig(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateAttendanceConfig service error", "error", err, "config_id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance configuration updated", result)
}

// Delete implements AttendanceConfigHandler.
func (h *AttendanceConfigHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.configService.DeleteConfig(r.Context(), id); err != nil {
		slog.Error("DeleteAttendanceConfig service error", "error", err, "config_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance configuration deleted", nil)
}
