package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/aggregator-service/internal/transport/http/errors"
)

// NewsByID — GET /news/article?id=
// Идентификатор статьи — канонический URL, поэтому он передаётся
// query-параметром, а не сегментом пути.
func (h *Handlers) NewsByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	article, err := h.Service.NewsByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

// LikeArticle — POST /news/article/like?id=
// Возвращает обновлённый снимок статьи.
func (h *Handlers) LikeArticle(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	article, err := h.Service.LikeArticle(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

type commentRequest struct {
	Text string `json:"text"`
}

// CommentArticle — POST /news/article/comments?id=, тело {"text": ...}.
// Возвращает обновлённый снимок статьи.
func (h *Handlers) CommentArticle(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var req commentRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	article, err := h.Service.CommentArticle(r.Context(), id, req.Text)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}
