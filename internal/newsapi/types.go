// newsapi — клиент новостного провайдера (wire-формат newsdata.io).
package newsapi

// response — корневой объект ответа провайдера.
type response struct {
	// Status — "success" при нормальном ответе.
	Status string `json:"status"`
	// Results — список статей.
	Results []result `json:"results"`
}

// result описывает одну статью в ответе провайдера.
type result struct {
	// Title — заголовок. Записи без заголовка отбрасываются.
	Title string `json:"title"`
	// Description — тизер; часто пустой, тогда fallback на Content.
	Description string `json:"description"`
	// Content — полный текст; используется как fallback для Description
	// с обрезкой до 200 символов.
	Content string `json:"content"`
	// Link — каноническая ссылка, идентификатор статьи.
	Link string `json:"link"`
	// SourceID — имя источника у провайдера.
	SourceID string `json:"source_id"`
	// ImageURL — ссылка на обложку, может отсутствовать.
	ImageURL string `json:"image_url"`
	// PubDate — дата публикации: "2006-01-02 15:04:05", иногда ISO.
	PubDate string `json:"pubDate"`
}
