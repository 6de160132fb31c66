// registry — процессный реестр статей: единственный источник истины
// для мутаций (лайки, комментарии) и поиска по идентификатору.
//
// Принципы:
//   - ключ — канонический URL статьи; статья с пустым URL не сохраняется;
//   - наружу отдаются только глубокие копии: хранимый экземпляр
//     никогда не покидает реестр, мутации выполняются под его локом;
//   - записи живут всё время жизни процесса, выселения нет.
package registry

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/aggregator-service/internal/models"
)

// Registry — потокобезопасное in-memory хранилище статей по URL.
type Registry struct {
	mu       sync.RWMutex
	articles map[string]*models.Article
}

// New создаёт пустой реестр.
func New() *Registry {
	return &Registry{
		articles: make(map[string]*models.Article),
	}
}

// Put вставляет или перезаписывает статью по её URL.
// Статья с пустым URL игнорируется (не идентифицируема).
func (r *Registry) Put(article models.Article) {
	if article.URL == "" {
		return
	}

	stored := article.Clone()

	r.mu.Lock()
	r.articles[article.URL] = &stored
	r.mu.Unlock()
}

// PutAll вставляет пачку статей; статьи с пустым URL пропускаются.
func (r *Registry) PutAll(articles []models.Article) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, article := range articles {
		if article.URL == "" {
			continue
		}
		stored := article.Clone()
		r.articles[article.URL] = &stored
	}
}

// ByURL возвращает копию статьи и признак наличия.
func (r *Registry) ByURL(url string) (models.Article, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	article, ok := r.articles[url]
	if !ok {
		return models.Article{}, false
	}
	return article.Clone(), true
}

// IncrementLikes атомарно увеличивает счётчик лайков статьи
// и возвращает обновлённый снимок. Два конкурентных вызова по одному
// URL оба наблюдаемы: потерянных инкрементов нет.
func (r *Registry) IncrementLikes(url string) (models.Article, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	article, ok := r.articles[url]
	if !ok {
		return models.Article{}, false
	}

	article.Likes++
	return article.Clone(), true
}

// AppendComment атомарно добавляет комментарий в конец последовательности
// и возвращает обновлённый снимок статьи.
func (r *Registry) AppendComment(url, text string) (models.Article, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	article, ok := r.articles[url]
	if !ok {
		return models.Article{}, false
	}

	article.Comments = append(article.Comments, models.Comment{
		ID:        uuid.New(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	return article.Clone(), true
}

// All возвращает снимок всех статей реестра; порядок не гарантируется.
func (r *Registry) All() []models.Article {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Article, 0, len(r.articles))
	for _, article := range r.articles {
		out = append(out, article.Clone())
	}
	return out
}

// Len возвращает количество статей в реестре.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.articles)
}
