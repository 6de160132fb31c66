package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/aggregator-service/internal/models"
	"github.com/pribylovaa/aggregator-service/pkg/log"
)

// defaultCategory — метка лент без явной категории.
const defaultCategory = "general"

// TopHeadlines возвращает главные новости страны.
//
// Поток: кэш по ключу "headlines_<country>" -> при промахе запрос к
// провайдеру; результат кэшируется безусловно (в том числе пустой),
// статьи получают метку "general" и попадают в реестр.
// Сбой провайдера деградирует до пустой выдачи (лог, не ошибка).
func (s *Service) TopHeadlines(ctx context.Context, country string) ([]models.Article, error) {
	const op = "service/feeds/TopHeadlines"

	country = strings.ToLower(strings.TrimSpace(country))
	if country == "" {
		country = s.cfg.NewsAPI.Country
	}

	lg := log.From(ctx).With("op", op, "country", country)

	cacheKey := "headlines_" + country
	if cached, ok := s.cache.Lookup(cacheKey); ok {
		lg.Info("cache_hit", slog.Int("items", len(cached)))
		return cached, nil
	}

	lg.Info("cache_miss_fetching_upstream")

	fresh, err := s.provider.TopHeadlines(ctx, country, defaultCategory)
	if err != nil {
		lg.Warn("provider_failed_serving_empty", slog.String("err", err.Error()))
		fresh = nil
	}

	fresh = tagCategory(fresh, defaultCategory)
	s.cache.Store(cacheKey, fresh)
	s.registry.PutAll(fresh)

	lg.Info("headlines_ok", slog.Int("items", len(fresh)))
	return fresh, nil
}

// NewsByCategory возвращает новости категории для страны по умолчанию ("us").
//
// Ключ кэша — "category_<категория>_us"; остальной поток как у TopHeadlines,
// метка категории — запрошенная.
func (s *Service) NewsByCategory(ctx context.Context, category string) ([]models.Article, error) {
	const op = "service/feeds/NewsByCategory"

	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil, fmt.Errorf("%s: empty category: %w", op, ErrInvalidArgument)
	}

	country := s.cfg.NewsAPI.Country
	lg := log.From(ctx).With("op", op, "category", category, "country", country)

	cacheKey := "category_" + category + "_" + country
	if cached, ok := s.cache.Lookup(cacheKey); ok {
		lg.Info("cache_hit", slog.Int("items", len(cached)))
		return cached, nil
	}

	lg.Info("cache_miss_fetching_upstream")

	fresh, err := s.provider.TopHeadlines(ctx, country, category)
	if err != nil {
		lg.Warn("provider_failed_serving_empty", slog.String("err", err.Error()))
		fresh = nil
	}

	fresh = tagCategory(fresh, category)
	s.cache.Store(cacheKey, fresh)
	s.registry.PutAll(fresh)

	lg.Info("category_ok", slog.Int("items", len(fresh)))
	return fresh, nil
}

// NewsBySubCategory раскрывает подкатегорию в OR-объединение её ключевых
// слов и делегирует поиску. Неизвестная подкатегория — ErrInvalidArgument.
func (s *Service) NewsBySubCategory(ctx context.Context, name string) ([]models.Article, error) {
	const op = "service/feeds/NewsBySubCategory"

	sub, ok := models.SubCategoryByName(name)
	if !ok {
		return nil, fmt.Errorf("%s: unknown sub-category %q: %w", op, name, ErrInvalidArgument)
	}

	log.From(ctx).Info("subcategory_search",
		slog.String("op", op),
		slog.String("sub_category", sub.Name),
		slog.String("query", sub.Query()),
	)

	return s.Search(ctx, sub.Query())
}

// Search возвращает статьи по ключевой строке.
//
// Отличия от лент:
//   - ключ кэша — "search_<строка в нижнем регистре>";
//   - кэшируются только непустые результаты (асимметрия унаследована
//     намеренно: пустой поиск перепроверяется у провайдера);
//   - статьи попадают в реестр без метки категории.
func (s *Service) Search(ctx context.Context, keyword string) ([]models.Article, error) {
	const op = "service/feeds/Search"

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%s: empty keyword: %w", op, ErrInvalidArgument)
	}

	lg := log.From(ctx).With("op", op, "keyword", keyword)

	cacheKey := "search_" + strings.ToLower(keyword)
	if cached, ok := s.cache.Lookup(cacheKey); ok {
		lg.Info("cache_hit", slog.Int("items", len(cached)))
		return cached, nil
	}

	lg.Info("cache_miss_fetching_upstream")

	fresh, err := s.provider.Search(ctx, keyword, s.cfg.NewsAPI.Language)
	if err != nil {
		lg.Warn("provider_failed_serving_empty", slog.String("err", err.Error()))
		return []models.Article{}, nil
	}

	if len(fresh) > 0 {
		s.cache.Store(cacheKey, fresh)
	}
	s.registry.PutAll(fresh)

	lg.Info("search_ok", slog.Int("items", len(fresh)))
	return fresh, nil
}

// tagCategory присваивает метку категории всем статьям списка.
func tagCategory(articles []models.Article, category string) []models.Article {
	for i := range articles {
		articles[i].Category = category
	}
	return articles
}
