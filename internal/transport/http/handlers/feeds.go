package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/aggregator-service/internal/transport/http/errors"
)

// Headlines — GET /news/headlines?country=
// Пустой country — страна по умолчанию из конфигурации.
func (h *Handlers) Headlines(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Service.TopHeadlines(r.Context(), r.URL.Query().Get("country"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newArticlesResponse(articles))
}

// NewsByCategory — GET /news/category/{category}
func (h *Handlers) NewsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	articles, err := h.Service.NewsByCategory(r.Context(), category)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newArticlesResponse(articles))
}

// NewsBySubCategory — GET /news/subcategory/{name}
// Неизвестная подкатегория — 400.
func (h *Handlers) NewsBySubCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	articles, err := h.Service.NewsBySubCategory(r.Context(), name)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newArticlesResponse(articles))
}

// Search — GET /news/search?q=
// Пустой q отсекается до сервисного слоя (симметрия с валидацией внутри).
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	articles, err := h.Service.Search(r.Context(), keyword)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newArticlesResponse(articles))
}
