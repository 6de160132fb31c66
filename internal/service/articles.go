package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/aggregator-service/internal/models"
	"github.com/pribylovaa/aggregator-service/pkg/log"
)

// NewsByID возвращает статью по идентификатору (каноническому URL).
//
// Ошибки:
//   - ErrInvalidArgument — пустой идентификатор;
//   - ErrNotFound — статья отсутствует в реестре.
func (s *Service) NewsByID(ctx context.Context, id string) (*models.Article, error) {
	const op = "service/articles/NewsByID"

	if id == "" {
		return nil, fmt.Errorf("%s: empty id: %w", op, ErrInvalidArgument)
	}

	article, ok := s.registry.ByURL(id)
	if !ok {
		log.From(ctx).Warn("article_not_found",
			slog.String("op", op),
			slog.String("id", id),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return &article, nil
}

// LikeArticle атомарно увеличивает счётчик лайков статьи
// и возвращает обновлённый снимок.
//
// Ошибки:
//   - ErrInvalidArgument — пустой идентификатор;
//   - ErrNotFound — статья отсутствует в реестре.
func (s *Service) LikeArticle(ctx context.Context, id string) (*models.Article, error) {
	const op = "service/articles/LikeArticle"

	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		return nil, fmt.Errorf("%s: empty id: %w", op, ErrInvalidArgument)
	}

	article, ok := s.registry.IncrementLikes(id)
	if !ok {
		lg.Warn("article_not_found")

		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	lg.Info("article_liked", slog.Int64("likes", article.Likes))
	return &article, nil
}

// CommentArticle добавляет комментарий к статье и возвращает
// обновлённый снимок.
//
// Ошибки:
//   - ErrInvalidArgument — пустой идентификатор или пустой текст;
//   - ErrNotFound — статья отсутствует в реестре.
func (s *Service) CommentArticle(ctx context.Context, id, text string) (*models.Article, error) {
	const op = "service/articles/CommentArticle"

	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		return nil, fmt.Errorf("%s: empty id: %w", op, ErrInvalidArgument)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%s: empty comment: %w", op, ErrInvalidArgument)
	}

	article, ok := s.registry.AppendComment(id, text)
	if !ok {
		lg.Warn("article_not_found")

		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	lg.Info("comment_added", slog.Int("comments", len(article.Comments)))
	return &article, nil
}
