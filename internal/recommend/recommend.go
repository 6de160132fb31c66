// recommend — чистый вывод рекомендаций из избранного пользователя.
//
// Логика намеренно простая:
//  1. собрать множество непустых категорий среди избранных статей;
//  2. кандидаты — статьи реестра этих категорий, ещё не в избранном;
//  3. перемешать и обрезать до лимита.
//
// Результат не кэшируется и недетерминирован: порядок и состав меняются
// от вызова к вызову (разнообразие выдачи).
package recommend

import (
	"math/rand"

	"github.com/pribylovaa/aggregator-service/internal/models"
)

// Recommend возвращает не более limit статей из all, чьи категории
// встречаются среди favorites и которые сами не находятся в избранном.
// Пустое избранное или избранное без категорий -> nil (вызывающая
// сторона подставляет ленту по умолчанию).
func Recommend(favorites, all []models.Article, limit int) []models.Article {
	if len(favorites) == 0 || limit <= 0 {
		return nil
	}

	categories := make(map[string]bool, len(favorites))
	for _, fav := range favorites {
		if fav.Category != "" {
			categories[fav.Category] = true
		}
	}
	if len(categories) == 0 {
		return nil
	}

	favored := make(map[string]bool, len(favorites))
	for _, fav := range favorites {
		favored[fav.URL] = true
	}

	var candidates []models.Article
	for _, article := range all {
		if article.Category == "" {
			continue
		}
		if !categories[article.Category] || favored[article.URL] {
			continue
		}
		candidates = append(candidates, article)
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
