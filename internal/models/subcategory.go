package models

import "strings"

// SubCategory — подкатегория новостей, раскрываемая в поисковый запрос.
//
// У провайдера нет понятия подкатегории, поэтому запрос по ней
// выполняется как поиск по OR-объединению ключевых слов.
type SubCategory struct {
	// Name — стабильный идентификатор подкатегории (slug).
	Name string
	// DisplayName — человекочитаемое имя для клиента.
	DisplayName string
	// Keywords — ключевые слова для поискового запроса.
	Keywords []string
}

// Query возвращает поисковую строку вида "kw1 OR kw2 OR ...".
func (s SubCategory) Query() string {
	return strings.Join(s.Keywords, " OR ")
}

// subCategories — реестр известных подкатегорий.
var subCategories = map[string]SubCategory{
	"markets": {
		Name:        "markets",
		DisplayName: "Markets",
		Keywords:    []string{"stock market", "dow jones", "nasdaq", "investing", "shares"},
	},
	"economy": {
		Name:        "economy",
		DisplayName: "Economy",
		Keywords:    []string{"economy", "inflation", "gdp", "interest rates", "federal reserve"},
	},
	"corporate": {
		Name:        "corporate",
		DisplayName: "Corporate News",
		Keywords:    []string{"corporate", "earnings", "ceo", "merger", "acquisition"},
	},
	"finance": {
		Name:        "finance",
		DisplayName: "Personal Finance",
		Keywords:    []string{"personal finance", "savings", "retirement", "investment advice"},
	},
	"real-estate": {
		Name:        "real-estate",
		DisplayName: "Real Estate",
		Keywords:    []string{"real estate", "housing market", "mortgage rates", "property"},
	},
}

// SubCategoryByName возвращает подкатегорию по slug (без учёта регистра).
func SubCategoryByName(name string) (SubCategory, bool) {
	sc, ok := subCategories[strings.ToLower(strings.TrimSpace(name))]
	return sc, ok
}
