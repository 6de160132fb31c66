package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/aggregator-service/internal/models"
	"github.com/pribylovaa/aggregator-service/internal/recommend"
	"github.com/pribylovaa/aggregator-service/pkg/log"
)

// FavoriteArticles возвращает избранные статьи пользователя.
//
// Идентификаторы избранного разрешаются через реестр; идентификаторы,
// отсутствующие в реестре (процесс перезапущен, реестр ещё не наполнен),
// молча пропускаются с записью в лог — это не ошибка.
func (s *Service) FavoriteArticles(ctx context.Context, username string) ([]models.Article, error) {
	const op = "service/personal/FavoriteArticles"

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%s: empty username: %w", op, ErrInvalidArgument)
	}

	lg := log.From(ctx).With("op", op, "username", username)

	ids := s.ledger.List(username)
	articles := make([]models.Article, 0, len(ids))
	for _, id := range ids {
		article, ok := s.registry.ByURL(id)
		if !ok {
			lg.Warn("favorite_not_in_registry_skipped", slog.String("id", id))
			continue
		}
		articles = append(articles, article)
	}

	lg.Info("favorites_resolved",
		slog.Int("ids", len(ids)),
		slog.Int("resolved", len(articles)),
	)
	return articles, nil
}

// ToggleFavorite переключает членство статьи в избранном пользователя.
// Возвращает новое состояние: true — статья теперь в избранном.
func (s *Service) ToggleFavorite(ctx context.Context, username, articleID string) (bool, error) {
	const op = "service/personal/ToggleFavorite"

	username = strings.TrimSpace(username)
	if username == "" || articleID == "" {
		return false, fmt.Errorf("%s: empty username or article id: %w", op, ErrInvalidArgument)
	}

	lg := log.From(ctx).With("op", op, "username", username, "id", articleID)

	if s.ledger.Contains(username, articleID) {
		if _, err := s.ledger.Remove(username, articleID); err != nil {
			lg.Error("ledger_persist_failed", slog.String("err", err.Error()))
		}
		lg.Info("favorite_removed")
		return false, nil
	}

	if _, err := s.ledger.Add(username, articleID); err != nil {
		lg.Error("ledger_persist_failed", slog.String("err", err.Error()))
	}
	lg.Info("favorite_added")
	return true, nil
}

// IsFavorited сообщает, находится ли статья в избранном пользователя.
func (s *Service) IsFavorited(ctx context.Context, username, articleID string) (bool, error) {
	const op = "service/personal/IsFavorited"

	username = strings.TrimSpace(username)
	if username == "" || articleID == "" {
		return false, fmt.Errorf("%s: empty username or article id: %w", op, ErrInvalidArgument)
	}

	return s.ledger.Contains(username, articleID), nil
}

// ClearFavorites опустошает избранное пользователя (персистится
// даже пустой набор).
func (s *Service) ClearFavorites(ctx context.Context, username string) error {
	const op = "service/personal/ClearFavorites"

	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("%s: empty username: %w", op, ErrInvalidArgument)
	}

	lg := log.From(ctx).With("op", op, "username", username)

	if err := s.ledger.Clear(username); err != nil {
		lg.Error("ledger_persist_failed", slog.String("err", err.Error()))
	}

	lg.Info("favorites_cleared")
	return nil
}

// RecommendedNews возвращает персональные рекомендации пользователя.
//
// Кандидаты выводятся движком из категорий избранного и полного снимка
// реестра; выдача недетерминирована и не кэшируется. Пустое избранное
// или пустая выдача движка — fallback на главные новости страны
// по умолчанию.
func (s *Service) RecommendedNews(ctx context.Context, username string) ([]models.Article, error) {
	const op = "service/personal/RecommendedNews"

	lg := log.From(ctx).With("op", op, "username", username)

	favoriteArticles, err := s.FavoriteArticles(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(favoriteArticles) == 0 {
		lg.Info("no_favorites_fallback_to_headlines")
		return s.TopHeadlines(ctx, s.cfg.NewsAPI.Country)
	}

	recommendations := recommend.Recommend(favoriteArticles, s.registry.All(), s.cfg.Recommend.Limit)
	if len(recommendations) == 0 {
		lg.Info("no_candidates_fallback_to_headlines")
		return s.TopHeadlines(ctx, s.cfg.NewsAPI.Country)
	}

	lg.Info("recommendations_ok", slog.Int("items", len(recommendations)))
	return recommendations, nil
}
