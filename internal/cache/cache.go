// cache — time-bounded мемоизация ответов провайдера по ключу запроса.
//
// Принципы:
//   - запись живёт TTL с момента Store; просроченная запись удаляется
//     лениво при первом чтении, фонового подметания нет;
//   - Lookup выполняется одной критической секцией: проверка наличия
//     и проверка свежести не разнесены по отдельным блокировкам;
//   - ключи строит вызывающая сторона, кэш их не нормализует;
//   - наружу и внутрь идут снимки списков, разделяемой памяти нет.
package cache

import (
	"sync"
	"time"

	"github.com/pribylovaa/aggregator-service/internal/models"
)

// entry — (снимок списка, момент записи).
type entry struct {
	articles []models.Article
	storedAt time.Time
}

// Cache — потокобезопасный кэш списков статей с ленивой экспирацией.
type Cache struct {
	mu  sync.Mutex
	ttl time.Duration
	// now подменяется в тестах.
	now     func() time.Time
	entries map[string]entry
}

// New создаёт кэш с заданным TTL.
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Lookup возвращает кэшированный список и признак попадания.
// Просроченная запись удаляется как побочный эффект промаха.
// Пустой список — валидное попадание: политика «кэшировать ли пустое»
// принадлежит вызывающей стороне на этапе Store.
func (c *Cache) Lookup(key string) ([]models.Article, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}

	return cloneList(e.articles), true
}

// Store безусловно записывает список (в том числе пустой) с текущим
// временем как моментом создания записи.
func (c *Cache) Store(key string, articles []models.Article) {
	snapshot := cloneList(articles)

	c.mu.Lock()
	c.entries[key] = entry{articles: snapshot, storedAt: c.now()}
	c.mu.Unlock()
}

// Clear сбрасывает все записи (административная операция).
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// Len возвращает число записей, включая просроченные, но не прочитанные.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func cloneList(articles []models.Article) []models.Article {
	if articles == nil {
		return nil
	}

	out := make([]models.Article, len(articles))
	for i := range articles {
		out[i] = articles[i].Clone()
	}
	return out
}
