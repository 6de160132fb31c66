package service

import (
	"context"

	"github.com/pribylovaa/aggregator-service/internal/models"
)

// Provider описывает клиента новостного провайдера.
//
// Требования к реализации:
//  1. URL в возвращаемых статьях — каноническая ссылка источника;
//     статьи без URL допускаются, но в реестр не попадут;
//  2. Category не заполняется — метку присваивает оркестратор;
//  3. реализация обязана уважать ctx (отмена/таймауты).
//
// Ошибки провайдера не фатальны для сервиса: оркестратор логирует их
// и деградирует до пустой выдачи.
type Provider interface {
	// TopHeadlines — главные новости страны по категории провайдера.
	TopHeadlines(ctx context.Context, country, category string) ([]models.Article, error)
	// Search — поиск по ключевой строке на заданном языке.
	Search(ctx context.Context, query, language string) ([]models.Article, error)
}
