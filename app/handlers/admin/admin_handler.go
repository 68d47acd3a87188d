package admin

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hrakoto/go-annuaire/app/helpers"
	"github.com/hrakoto/go-annuaire/app/services"
	"github.com/unrolled/render"
)

// AdminHandler exposes the moderation surface. Every route here sits behind
// the admin role gate.
type AdminHandler struct {
	render   *render.Render
	adminSvc services.AdminService
}

func NewAdminHandler(r *render.Render, adminSvc services.AdminService) *AdminHandler {
	return &AdminHandler{render: r, adminSvc: adminSvc}
}

type StatusPayload struct {
	Status string `json:"status"`
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminSvc.Stats(r.Context())
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) Listings(w http.ResponseWriter, r *http.Request) {
	rows, err := h.adminSvc.ListingsByStatus(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, rows)
}

func (h *AdminHandler) SetListingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.WriteError(h.render, w, helpers.ValidationError("invalid listing id"))
		return
	}

	var payload StatusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteError(h.render, w, helpers.ValidationError("invalid request body"))
		return
	}

	listing, err := h.adminSvc.SetListingStatus(r.Context(), uint(id), payload.Status)
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, listing)
}
