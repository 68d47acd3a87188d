package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hrakoto/go-annuaire/app/helpers"
	"github.com/hrakoto/go-annuaire/app/repositories"
	"github.com/unrolled/render"
)

type BlogHandler struct {
	render   *render.Render
	blogRepo repositories.BlogRepositoryImpl
}

func NewBlogHandler(r *render.Render, blogRepo repositories.BlogRepositoryImpl) *BlogHandler {
	return &BlogHandler{render: r, blogRepo: blogRepo}
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogRepo.GetAll(r.Context())
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, posts)
}

func (h *BlogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogRepo.FindBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		helpers.WriteError(h.render, w, err)
		return
	}
	if post == nil {
		helpers.WriteError(h.render, w, helpers.ErrNotFound)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, post)
}
