package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"arkadasai/internal/billing"
	"arkadasai/internal/core"
	"arkadasai/internal/types"
)

// PlansResponse is the response body for GET /plans.
type PlansResponse struct {
	OK    bool                   `json:"ok"`
	Plans []types.PlanDescriptor `json:"plans"`
}

// PlansHandler serves the public plan catalog.
type PlansHandler struct {
	catalog billing.PlanCatalog
}

// NewPlansHandler creates a new PlansHandler backed by the given catalog.
func NewPlansHandler(catalog billing.PlanCatalog) *PlansHandler {
	return &PlansHandler{catalog: catalog}
}

// RegisterRoutes mounts the plans route onto the provided router. No auth
// is required; the catalog is public and read-only.
func (h *PlansHandler) RegisterRoutes(r chi.Router) {
	r.Get("/plans", h.HandlePlans)
}

// HandlePlans processes GET /plans requests: it returns the fixed catalog
// entries in their defined order, regardless of call count or prior state.
func (h *PlansHandler) HandlePlans(w http.ResponseWriter, r *http.Request) {
	core.JSON(w, r, http.StatusOK, PlansResponse{
		OK:    true,
		Plans: h.catalog.List(),
	})
}
