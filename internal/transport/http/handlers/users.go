package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/aggregator-service/internal/transport/http/errors"
)

// FavoriteArticles — GET /users/{username}/favorites
func (h *Handlers) FavoriteArticles(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	articles, err := h.Service.FavoriteArticles(r.Context(), username)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newArticlesResponse(articles))
}

type favoritedResponse struct {
	Favorited bool `json:"favorited"`
}

// ToggleFavorite — POST /users/{username}/favorites/toggle?id=
// Возвращает новое состояние членства: {"favorited": bool}.
func (h *Handlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	id := r.URL.Query().Get("id")
	if username == "" || id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	favorited, err := h.Service.ToggleFavorite(r.Context(), username, id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, favoritedResponse{Favorited: favorited})
}

// IsFavorited — GET /users/{username}/favorites/contains?id=
func (h *Handlers) IsFavorited(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	id := r.URL.Query().Get("id")
	if username == "" || id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	favorited, err := h.Service.IsFavorited(r.Context(), username, id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, favoritedResponse{Favorited: favorited})
}

// ClearFavorites — DELETE /users/{username}/favorites -> 204.
func (h *Handlers) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Service.ClearFavorites(r.Context(), username); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecommendedNews — GET /users/{username}/recommendations
func (h *Handlers) RecommendedNews(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	articles, err := h.Service.RecommendedNews(r.Context(), username)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newArticlesResponse(articles))
}
