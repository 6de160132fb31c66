package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pribylovaa/aggregator-service/internal/config"
	"github.com/pribylovaa/aggregator-service/internal/models"
	"github.com/pribylovaa/aggregator-service/pkg/log"
)

// maxDescriptionLen — обрезка fallback-описания из полного текста.
const maxDescriptionLen = 200

// Client — HTTP-клиент провайдера.
//
// Поведение при сбоях: один повтор с паузой cfg.RetryBackoff на сетевых
// ошибках и 5xx; 4xx не повторяются. Дедлайн одного запроса — cfg.Timeout
// (плюс дедлайн из контекста, если он короче).
type Client struct {
	httpClient *http.Client
	cfg        config.NewsAPIConfig
}

// New создаёт клиент провайдера. httpClient настраивается извне;
// nil заменяется клиентом с таймаутом из конфига.
func New(httpClient *http.Client, cfg config.NewsAPIConfig) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{httpClient: httpClient, cfg: cfg}
}

// TopHeadlines возвращает главные новости страны по категории.
// Категория "general" у провайдера называется "top".
func (c *Client) TopHeadlines(ctx context.Context, country, category string) ([]models.Article, error) {
	const op = "newsapi/client/TopHeadlines"

	if strings.EqualFold(category, "general") {
		category = "top"
	}

	q := url.Values{}
	q.Set("country", country)
	q.Set("category", category)
	q.Set("apikey", c.cfg.APIKey)

	articles, err := c.fetch(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return articles, nil
}

// Search возвращает статьи по поисковому запросу на заданном языке.
func (c *Client) Search(ctx context.Context, query, language string) ([]models.Article, error) {
	const op = "newsapi/client/Search"

	q := url.Values{}
	q.Set("q", query)
	q.Set("language", language)
	q.Set("apikey", c.cfg.APIKey)

	articles, err := c.fetch(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return articles, nil
}

// fetch выполняет запрос с единственным повтором на сетевых ошибках и 5xx.
func (c *Client) fetch(ctx context.Context, query url.Values) ([]models.Article, error) {
	const op = "newsapi/client/fetch"

	lg := log.From(ctx)
	endpoint := c.cfg.BaseURL + "/news?" + query.Encode()

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			lg.Warn("provider_retry",
				slog.String("op", op),
				slog.String("err", lastErr.Error()),
			)

			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%s: %w", op, ctx.Err())
			case <-time.After(c.cfg.RetryBackoff):
			}
		}

		articles, retryable, err := c.fetchOnce(ctx, endpoint)
		if err == nil {
			return articles, nil
		}

		lastErr = err
		if !retryable {
			break
		}
	}

	return nil, lastErr
}

// fetchOnce — один HTTP-запрос; второй результат сообщает, имеет ли смысл повтор.
func (c *Client) fetchOnce(ctx context.Context, endpoint string) ([]models.Article, bool, error) {
	const op = "newsapi/client/fetchOnce"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("%s: new_request: %w", op, err)
	}
	req.Header.Set("User-Agent", "aggregator-service")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		retryable := resp.StatusCode >= http.StatusInternalServerError
		return nil, retryable, fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, false, fmt.Errorf("%s: decode: %w", op, err)
	}

	if decoded.Status != "success" {
		log.From(ctx).Warn("provider_unexpected_status",
			slog.String("op", op),
			slog.String("status", decoded.Status),
		)
	}

	return toArticles(decoded.Results), false, nil
}

// toArticles конвертирует записи провайдера в доменную модель.
// Записи без заголовка отбрасываются; описание при отсутствии берётся
// из полного текста с обрезкой.
func toArticles(results []result) []models.Article {
	articles := make([]models.Article, 0, len(results))
	for _, r := range results {
		if strings.TrimSpace(r.Title) == "" {
			continue
		}

		description := r.Description
		if description == "" {
			description = r.Content
			if runes := []rune(description); len(runes) > maxDescriptionLen {
				description = string(runes[:maxDescriptionLen]) + "..."
			}
		}

		articles = append(articles, models.Article{
			URL:         r.Link,
			Title:       r.Title,
			Description: description,
			Source:      r.SourceID,
			ImageURL:    r.ImageURL,
			PublishedAt: parsePubDate(r.PubDate),
		})
	}
	return articles
}

// parsePubDate пробует формат провайдера, затем RFC3339.
// Нераспознанная дата — нулевое время, не ошибка.
func parsePubDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	if ts, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return ts.UTC()
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC()
	}
	return time.Time{}
}
