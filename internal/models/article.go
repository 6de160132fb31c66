// models содержит доменные сущности aggregator-сервиса.
// Эти типы используются слоями бизнес-логики, реестра статей и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Article — доменная сущность новостной статьи.
//
// Особенности:
//   - идентификатор — каноническая ссылка на источник (URL);
//     статья с пустым URL не подлежит сохранению в реестре;
//   - Category присваивается сервисом при загрузке, провайдер её не знает;
//   - Likes и Comments — изменяемые поля; мутации выполняет только реестр.
type Article struct {
	// URL — каноническая ссылка на статью, первичный ключ.
	URL string `json:"url"`
	// Title — заголовок статьи.
	Title string `json:"title"`
	// Description — краткое описание/тизер.
	Description string `json:"description"`
	// Source — имя источника у провайдера.
	Source string `json:"source"`
	// ImageURL — ссылка на обложку (может быть пустой).
	ImageURL string `json:"image_url,omitempty"`
	// Category — метка категории, присвоенная при загрузке (может быть пустой).
	Category string `json:"category,omitempty"`
	// PublishedAt — время публикации у источника (нулевое, если провайдер его не отдал).
	PublishedAt time.Time `json:"published_at,omitzero"`
	// Likes — счётчик лайков.
	Likes int64 `json:"likes"`
	// Comments — упорядоченная последовательность комментариев.
	Comments []Comment `json:"comments,omitempty"`
}

// Comment — комментарий к статье.
type Comment struct {
	// ID — уникальный идентификатор комментария (UUIDv4).
	ID uuid.UUID `json:"id"`
	// Text — свободный текст комментария.
	Text string `json:"text"`
	// CreatedAt — время создания (UTC).
	CreatedAt time.Time `json:"created_at"`
}

// Clone возвращает глубокую копию статьи.
// Реестр отдаёт наружу только копии, поэтому изменяемые
// поля (Comments) не должны разделять память с хранимым экземпляром.
func (a Article) Clone() Article {
	out := a
	if len(a.Comments) > 0 {
		out.Comments = make([]Comment, len(a.Comments))
		copy(out.Comments, a.Comments)
	}
	return out
}
