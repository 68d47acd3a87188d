package handlers

import (
	"net/http"

	"github.com/hrakoto/go-annuaire/app/helpers"
	"github.com/hrakoto/go-annuaire/app/repositories"
	"github.com/unrolled/render"
)

// ReferenceHandler serves the read-only taxonomy: categories, regions and
// cities seeded at bootstrap.
type ReferenceHandler struct {
	render       *render.Render
	categoryRepo repositories.CategoryRepositoryImpl
	locationRepo repositories.LocationRepositoryImpl
}

func NewReferenceHandler(r *render.Render, categoryRepo repositories.CategoryRepositoryImpl, locationRepo repositories.LocationRepositoryImpl) *ReferenceHandler {
	return &ReferenceHandler{
		render:       r,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

func (h *ReferenceHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categories)
}

func (h *ReferenceHandler) Regions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.locationRepo.GetRegions(r.Context())
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, regions)
}

func (h *ReferenceHandler) Cities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.locationRepo.GetCities(r.Context())
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, cities)
}
