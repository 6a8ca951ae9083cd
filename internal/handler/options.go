package handler

import (
	"net/http"

	"github.com/owlpost/lumos/internal/service"
)

// OptionsHandler serves the profile-form options document
type OptionsHandler struct {
	options *service.OptionsService
}

// NewOptionsHandler creates a new options handler
func NewOptionsHandler(options *service.OptionsService) *OptionsHandler {
	return &OptionsHandler{options: options}
}

// Get handles GET /v1/options
func (h *OptionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	options, err := h.options.Get(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, options, nil)
}
