package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Shoplinkado/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.Store.ListCategories(r.Context())
	if err != nil {
		s.logError("list categories failed", err)
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, cats)
}

func (s *Server) GetCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	c, ok, err := s.Store.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		s.logError("get category failed", err, zap.String("slug", slug))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "category not found", map[string]any{"slug": slug})
		return
	}
	kit.WriteJSON(w, http.StatusOK, c)
}

// ListCategoryProducts resolves the slug first so an unknown category is a
// 404 while a known category with no products is an empty list.
func (s *Server) ListCategoryProducts(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	c, ok, err := s.Store.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		s.logError("get category failed", err, zap.String("slug", slug))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "category not found", map[string]any{"slug": slug})
		return
	}

	products, err := s.Store.ListProductsByCategory(r.Context(), c.ID)
	if err != nil {
		s.logError("list products failed", err, zap.String("category_id", c.ID))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	filter := SortFilter(r.URL.Query().Get("sort"))
	kit.WriteJSON(w, http.StatusOK, SortProducts(products, filter))
}

func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.ListAllProducts(r.Context())
	if err != nil {
		s.logError("list all products failed", err)
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var in ProductInput
	if !decodeBody(w, r, &in) {
		return
	}

	if msg := validateProduct(in); msg != "" {
		kit.WriteError(w, r, http.StatusBadRequest, msg, nil)
		return
	}

	p, err := s.Store.CreateProduct(r.Context(), in)
	if errors.Is(err, ErrCategoryNotFound) {
		kit.WriteError(w, r, http.StatusBadRequest, "unknown category", map[string]any{"categoryId": in.CategoryID})
		return
	}
	if err != nil {
		s.logError("create product failed", err)
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, p)
}

func (s *Server) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in CategoryInput
	if !decodeBody(w, r, &in) {
		return
	}

	if msg := validateCategory(in); msg != "" {
		kit.WriteError(w, r, http.StatusBadRequest, msg, nil)
		return
	}

	c, err := s.Store.CreateCategory(r.Context(), in)
	if errors.Is(err, ErrSlugExists) {
		kit.WriteError(w, r, http.StatusConflict, "slug already exists", map[string]any{"slug": in.Slug})
		return
	}
	if err != nil {
		s.logError("create category failed", err)
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, c)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return false
	}
	return true
}

func validateProduct(in ProductInput) string {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return "name required"
	case strings.TrimSpace(in.Image) == "":
		return "image required"
	case strings.TrimSpace(in.Price) == "":
		return "price required"
	case strings.TrimSpace(in.CategoryID) == "":
		return "categoryId required"
	case strings.TrimSpace(in.ShopeeURL) == "":
		return "shopeeUrl required"
	case in.Rating < 0 || in.Rating > 5:
		return "rating must be between 0 and 5"
	}
	return ""
}

func validateCategory(in CategoryInput) string {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return "name required"
	case strings.TrimSpace(in.Slug) == "":
		return "slug required"
	}
	return ""
}

func (s *Server) logError(msg string, err error, fields ...zap.Field) {
	if s.Log == nil {
		return
	}
	s.Log.Error(msg, append([]zap.Field{zap.Error(err)}, fields...)...)
}
