package interfaces

import (
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
)

type DashboardServiceInterface interface {
	GetDashboardStats(userID string) (*application.DashboardStats, error)
}

type DashboardHandler struct {
	service      DashboardServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewDashboardHandler(
	service DashboardServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *DashboardHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &DashboardHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *DashboardHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stats, err := h.service.GetDashboardStats(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve dashboard stats")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Dashboard stats retrieved successfully",
		"data":    stats,
	})
}
