package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kerjahub/hris-portal-go/internal/domain/location"
	"github.com/kerjahub/hris-portal-go/internal/handler/http/response"
)

type LocationHandler interface {
	ListPresets(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type locationHandlerImpl struct {
	locationService location.Service
}

func NewLocationHandler(locationService location.Service) LocationHandler {
	return &locationHandlerImpl{
		locationService: locationService,
	}
}

// ListPresets implements LocationHandler.
func (h *locationHandlerImpl) ListPresets(w http.ResponseWriter, r *http.Request) {
	results, err := h.locationService.ListPresets(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Resolve implements LocationHandler. An unavailable device fix is not a
// failure: the prior resolution comes back unchanged so the client keeps
// rendering it.
func (h *locationHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	var req location.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Resolve decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.locationService.Resolve(r.Context(), req)
	if err != nil {
		if errors.Is(err, location.ErrLocationUnavailable) {
			response.SuccessWithMessage(w, "Location unavailable, previous location kept", result)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
