// service содержит бизнес-логику aggregator-сервиса: оркестрацию
// кэша запросов, реестра статей, реестра избранного и клиента провайдера.
package service

import (
	"errors"

	"github.com/pribylovaa/aggregator-service/internal/cache"
	"github.com/pribylovaa/aggregator-service/internal/config"
	"github.com/pribylovaa/aggregator-service/internal/favorites"
	"github.com/pribylovaa/aggregator-service/internal/registry"
)

var (
	// ErrNotFound — статья отсутствует в реестре.
	// Транспорт: 404.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Service — оркестратор операций aggregator-сервиса.
//
// Кэш и реестр — разделяемое состояние процесса: создаются один раз
// на старте и передаются сюда явно (никаких ленивых синглтонов).
// Все операции независимы и не несут межзапросного состояния сверх
// реестра и избранного.
type Service struct {
	provider Provider
	cache    *cache.Cache
	registry *registry.Registry
	ledger   *favorites.Ledger
	cfg      config.Config
}

// New создает новый экземпляр Service.
func New(provider Provider, c *cache.Cache, r *registry.Registry, l *favorites.Ledger, cfg config.Config) *Service {
	return &Service{
		provider: provider,
		cache:    c,
		registry: r,
		ledger:   l,
		cfg:      cfg,
	}
}
