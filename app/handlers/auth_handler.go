package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hrakoto/go-annuaire/app/helpers"
	"github.com/hrakoto/go-annuaire/app/middlewares"
	"github.com/hrakoto/go-annuaire/app/services"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render    *render.Render
	authSvc   services.AuthService
	validator *validator.Validate
}

func NewAuthHandler(r *render.Render, authSvc services.AuthService, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{
		render:    r,
		authSvc:   authSvc,
		validator: validator,
	}
}

type RegisterPayload struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user pro admin"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteError(h.render, w, helpers.ValidationError("invalid request body"))
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		helpers.WriteError(h.render, w, helpers.ValidationError(err.Error()))
		return
	}

	user, token, err := h.authSvc.Register(r.Context(), services.RegisterInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     payload.Role,
	})
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}

	setAuthCookie(w, token)
	_ = h.render.JSON(w, http.StatusOK, profileResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteError(h.render, w, helpers.ValidationError("invalid request body"))
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		helpers.WriteError(h.render, w, helpers.ValidationError(err.Error()))
		return
	}

	user, token, err := h.authSvc.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}

	setAuthCookie(w, token)
	_ = h.render.JSON(w, http.StatusOK, profileResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearAuthCookie(w)
	_ = h.render.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := helpers.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteError(h.render, w, helpers.ErrUnauthorized)
		return
	}

	// Re-query the store: the token is trusted for identity only.
	user, err := h.authSvc.Profile(r.Context(), claims.ID)
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, profileResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role})
}

// The cookie is cross-site-capable so the SPA can call the API from another
// origin; SameSite=None requires Secure.
func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
