package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kerjahub/hris-portal-go/internal/domain/checkclock"
	"github.com/kerjahub/hris-portal-go/internal/handler/http/response"
)

type CheckclockHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type checkclockHandlerImpl struct {
	checkclockService checkclock.Service
}

func NewCheckclockHandler(checkclockService checkclock.Service) CheckclockHandler {
	return &checkclockHandlerImpl{
		checkclockService: checkclockService,
	}
}

// Submit implements CheckclockHandler. The body is multipart: a 'data' JSON
// field plus an optional 'proof' photo.
func (h *checkclockHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req checkclock.SubmitRequest

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Proof photo is optional; leave entries often have none.
	file, fileHeader, err := r.FormFile("proof")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	if err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.checkclockService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded successfully", result)
}

// List implements CheckclockHandler.
func (h *checkclockHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := parseListFilter(r)

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.checkclockService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListMine implements CheckclockHandler.
func (h *checkclockHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	filter := parseListFilter(r)

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.checkclockService.ListMine(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Get implements CheckclockHandler.
func (h *checkclockHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.checkclockService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements CheckclockHandler.
func (h *checkclockHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req := checkclock.DecideRequest{ID: chi.URLParam(r, "id")}

	result, err := h.checkclockService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance approved successfully", result)
}

// Reject implements CheckclockHandler.
func (h *checkclockHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	req := checkclock.DecideRequest{ID: chi.URLParam(r, "id")}

	// A rejection reason is optional; an empty body is fine.
	if r.Body != nil {
		var body struct {
			Reason *string `json:"reason"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			req.Reason = body.Reason
		}
	}

	result, err := h.checkclockService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance rejected successfully", result)
}

func parseListFilter(r *http.Request) checkclock.ListFilter {
	filter := checkclock.ListFilter{
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

	return filter
}
