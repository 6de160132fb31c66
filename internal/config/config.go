// config предоставляет структуру конфигурации aggregator-service
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env       string          `yaml:"env"       env:"ENV" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	NewsAPI   NewsAPIConfig   `yaml:"newsapi"`
	Cache     CacheConfig     `yaml:"cache"`
	Favorites FavoritesConfig `yaml:"favorites"`
	Recommend RecommendConfig `yaml:"recommend"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// NewsAPIConfig — параметры доступа к новостному провайдеру.
type NewsAPIConfig struct {
	BaseURL string `yaml:"base_url" env:"NEWSAPI_BASE_URL" env-default:"https://newsdata.io/api/1"`
	APIKey  string `yaml:"api_key"  env:"NEWSAPI_KEY" env-required:"true"`
	// Country — страна по умолчанию для лент без явного параметра.
	Country string `yaml:"country" env:"NEWSAPI_COUNTRY" env-default:"us"`
	// Language — язык поисковых запросов.
	Language string `yaml:"language" env:"NEWSAPI_LANGUAGE" env-default:"en"`
	// Timeout — дедлайн одного запроса к провайдеру.
	Timeout time.Duration `yaml:"timeout" env:"NEWSAPI_TIMEOUT" env-default:"10s"`
	// RetryBackoff — пауза перед единственным повтором после сбоя.
	RetryBackoff time.Duration `yaml:"retry_backoff" env:"NEWSAPI_RETRY_BACKOFF" env-default:"500ms"`
}

// CacheConfig — настройки кэша запросов.
type CacheConfig struct {
	// TTL — время жизни записи; просроченные записи отбрасываются лениво при чтении.
	TTL time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"5m"`
}

// FavoritesConfig — настройки файлового хранилища избранного.
type FavoritesConfig struct {
	Path string `yaml:"path" env:"FAVORITES_PATH" env-default:"favorites.json"`
}

// RecommendConfig — лимиты рекомендательного движка.
type RecommendConfig struct {
	// Limit — максимальное число рекомендаций за один запрос.
	Limit int `yaml:"limit" env:"RECOMMEND_LIMIT" env-default:"10"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.NewsAPI.BaseURL == "" {
		return fmt.Errorf("newsapi.base_url is required")
	}
	if c.NewsAPI.APIKey == "" {
		return fmt.Errorf("newsapi.api_key is required")
	}
	if c.NewsAPI.Timeout <= 0 {
		return fmt.Errorf("newsapi.timeout must be > 0")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0")
	}
	if c.Favorites.Path == "" {
		return fmt.Errorf("favorites.path is required")
	}
	if c.Recommend.Limit <= 0 {
		return fmt.Errorf("recommend.limit must be > 0")
	}
	return nil
}
