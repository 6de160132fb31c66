package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/aggregator-service/internal/service"
	"github.com/pribylovaa/aggregator-service/internal/transport/http/handlers"
	"github.com/pribylovaa/aggregator-service/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // счётчики и длительности по маршрутам
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// news
	r.Get("/news/headlines", h.Headlines)
	r.Get("/news/category/{category}", h.NewsByCategory)
	r.Get("/news/subcategory/{name}", h.NewsBySubCategory)
	r.Get("/news/search", h.Search)
	r.Get("/news/article", h.NewsByID)
	r.Post("/news/article/like", h.LikeArticle)
	r.Post("/news/article/comments", h.CommentArticle)

	// users
	r.Get("/users/{username}/favorites", h.FavoriteArticles)
	r.Post("/users/{username}/favorites/toggle", h.ToggleFavorite)
	r.Get("/users/{username}/favorites/contains", h.IsFavorited)
	r.Delete("/users/{username}/favorites", h.ClearFavorites)
	r.Get("/users/{username}/recommendations", h.RecommendedNews)
}
