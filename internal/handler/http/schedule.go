package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/kerjahub/hris-portal-go/internal/domain/schedule"
	"github.com/kerjahub/hris-portal-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByEmployee(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// Assign implements ScheduleHandler.
func (h *scheduleHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req schedule.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assign decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.Assign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule assigned successfully", result)
}

// List implements ScheduleHandler.
func (h *scheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := schedule.ListFilter{
		Search:    r.URL.Query().Get("search"),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil {
			filter.Page = pageNum
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil {
			filter.Limit = limitNum
		}
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.scheduleService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetByEmployee implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	result, err := h.scheduleService.GetByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMine implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		response.Unauthorized(w, "No employee profile linked to this account")
		return
	}

	result, err := h.scheduleService.GetByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements ScheduleHandler.
func (h *scheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	if err := h.scheduleService.Delete(r.Context(), employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule assignment deleted successfully", nil)
}
