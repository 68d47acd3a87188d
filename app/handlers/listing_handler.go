package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/hrakoto/go-annuaire/app/helpers"
	"github.com/hrakoto/go-annuaire/app/repositories"
	"github.com/hrakoto/go-annuaire/app/services"
	"github.com/unrolled/render"
)

type ListingHandler struct {
	render     *render.Render
	listingSvc services.ListingService
	validator  *validator.Validate
}

func NewListingHandler(r *render.Render, listingSvc services.ListingService, validator *validator.Validate) *ListingHandler {
	return &ListingHandler{
		render:     r,
		listingSvc: listingSvc,
		validator:  validator,
	}
}

type ListingPayload struct {
	Title       string            `json:"title" validate:"required,max=255"`
	CategoryID  uint              `json:"category_id" validate:"required"`
	CityID      uint              `json:"city_id" validate:"required"`
	Description string            `json:"description" validate:"required"`
	Address     string            `json:"address"`
	Phone       string            `json:"phone"`
	Whatsapp    string            `json:"whatsapp"`
	Email       string            `json:"email" validate:"omitempty,email"`
	Website     string            `json:"website" validate:"omitempty,url"`
	Logo        string            `json:"logo"`
	Images      []string          `json:"images"`
	Hours       map[string]string `json:"hours"`
}

type ReviewPayload struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := repositories.ListingFilters{
		CategorySlug: query.Get("category"),
		Search:       query.Get("search"),
		// Only the literal string "true" turns the filter on.
		Featured: query.Get("featured") == "true",
	}
	if city := query.Get("city"); city != "" {
		cityID, err := strconv.ParseUint(city, 10, 64)
		if err != nil {
			helpers.WriteError(h.render, w, helpers.ValidationError("city must be a numeric id"))
			return
		}
		filters.CityID = uint(cityID)
	}

	results, err := h.listingSvc.Search(r.Context(), filters)
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, results)
}

func (h *ListingHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	detail, err := h.listingSvc.Detail(r.Context(), slug)
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, detail)
}

func (h *ListingHandler) MyListings(w http.ResponseWriter, r *http.Request) {
	claims, ok := helpers.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteError(h.render, w, helpers.ErrUnauthorized)
		return
	}

	listings, err := h.listingSvc.MyListings(r.Context(), claims.ID)
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, listings)
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := helpers.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteError(h.render, w, helpers.ErrUnauthorized)
		return
	}

	var payload ListingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteError(h.render, w, helpers.ValidationError("invalid request body"))
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		helpers.WriteError(h.render, w, helpers.ValidationError(err.Error()))
		return
	}

	listing, err := h.listingSvc.Create(r.Context(), claims.ID, services.CreateListingInput{
		Title:       payload.Title,
		CategoryID:  payload.CategoryID,
		CityID:      payload.CityID,
		Description: payload.Description,
		Address:     payload.Address,
		Phone:       payload.Phone,
		Whatsapp:    payload.Whatsapp,
		Email:       payload.Email,
		Website:     payload.Website,
		Logo:        payload.Logo,
		Images:      payload.Images,
		Hours:       payload.Hours,
	})
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"id": listing.ID, "slug": listing.Slug})
}

func (h *ListingHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := helpers.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteError(h.render, w, helpers.ErrUnauthorized)
		return
	}

	var payload ReviewPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteError(h.render, w, helpers.ValidationError("invalid request body"))
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		helpers.WriteError(h.render, w, helpers.ValidationError(err.Error()))
		return
	}

	review, err := h.listingSvc.AddReview(r.Context(), claims.ID, mux.Vars(r)["slug"], services.CreateReviewInput{
		Rating:  payload.Rating,
		Comment: payload.Comment,
	})
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, review)
}
