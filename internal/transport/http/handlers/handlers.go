package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pribylovaa/aggregator-service/internal/models"
	"github.com/pribylovaa/aggregator-service/internal/service"
)

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	Service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{Service: s}
}

// articlesResponse — единый конверт для списков статей.
type articlesResponse struct {
	Articles []models.Article `json:"articles"`
	Count    int              `json:"count"`
}

func newArticlesResponse(articles []models.Article) articlesResponse {
	if articles == nil {
		articles = []models.Article{}
	}
	return articlesResponse{Articles: articles, Count: len(articles)}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — вспомогалка: локальная ошибка парсинга -> 400.
func errInvalidArgument() error {
	return fmt.Errorf("handlers: %w", service.ErrInvalidArgument)
}
