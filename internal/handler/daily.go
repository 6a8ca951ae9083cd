package handler

import (
	"net/http"

	"github.com/owlpost/lumos/internal/service"
)

// DailyHandler serves the daily feature endpoint
type DailyHandler struct {
	daily *service.DailyService
}

// NewDailyHandler creates a new daily handler
func NewDailyHandler(daily *service.DailyService) *DailyHandler {
	return &DailyHandler{daily: daily}
}

// Feature handles GET /v1/daily
func (h *DailyHandler) Feature(w http.ResponseWriter, r *http.Request) {
	feature, err := h.daily.Feature(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, feature, nil)
}
