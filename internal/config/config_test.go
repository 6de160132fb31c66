package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeFile — утилита записи временного файла конфигурации.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

// chdir — смена текущего рабочего каталога с автоматическим откатом.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// Полный корректный YAML (не зависит от дефолтов).
const sampleYAML = `
env: "prod"
http:
  host: "127.0.0.1"
  port: "6000"
newsapi:
  base_url: "https://newsdata.example/api/1"
  api_key: "key-123"
  country: "gb"
  language: "en"
  timeout: "7s"
cache:
  ttl: "3m"
favorites:
  path: "/var/lib/aggregator/favorites.json"
recommend:
  limit: 5
timeouts:
  service: "20s"
`

// Минимально валидный YAML (только обязательные поля).
const minimalYAML = `
newsapi:
  api_key: "min-key"
`

// Некорректный YAML — для проверки ошибок парсинга.
const brokenYAML = `
newsapi:
  api_key: "broken
`

// TestHTTPConfig_Addr — проверяем, что Addr() корректно собирает host:port.
func TestHTTPConfig_Addr(t *testing.T) {
	t.Parallel()
	cfg := HTTPConfig{Host: "127.0.0.1", Port: "50080"}
	require.Equal(t, "127.0.0.1:50080", cfg.Addr())
}

// TestLoad_WithExplicitPath_OK — явный путь имеет высший приоритет.
func TestLoad_WithExplicitPath_OK(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	require.Equal(t, "6000", cfg.HTTP.Port)
	require.Equal(t, "https://newsdata.example/api/1", cfg.NewsAPI.BaseURL)
	require.Equal(t, "key-123", cfg.NewsAPI.APIKey)
	require.Equal(t, "gb", cfg.NewsAPI.Country)
	require.Equal(t, 7*time.Second, cfg.NewsAPI.Timeout)
	require.Equal(t, 3*time.Minute, cfg.Cache.TTL)
	require.Equal(t, "/var/lib/aggregator/favorites.json", cfg.Favorites.Path)
	require.Equal(t, 5, cfg.Recommend.Limit)
	require.Equal(t, 20*time.Second, cfg.Timeouts.Service)
}

// TestLoad_WithExplicitPath_FileDoesNotExist — явный путь на несуществующий файл.
func TestLoad_WithExplicitPath_FileDoesNotExist(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Load(missing)
	require.Error(t, err)
	require.Contains(t, err.Error(), "config file does not exist")
}

// TestLoad_WithExplicitPath_BrokenYAML — битый YAML по явному пути.
func TestLoad_WithExplicitPath_BrokenYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "broken.yaml", brokenYAML)

	_, err := Load(cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config")
}

// TestLoad_WithCONFIG_PATH_OK — путь берётся из CONFIG_PATH,
// остальные поля получают дефолты.
func TestLoad_WithCONFIG_PATH_OK(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "from_env_path.yaml", minimalYAML)
	t.Setenv("CONFIG_PATH", cfgPath)

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "min-key", cfg.NewsAPI.APIKey)
	require.Equal(t, "local", cfg.Env)
	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	require.Equal(t, "50080", cfg.HTTP.Port)
	require.Equal(t, "https://newsdata.io/api/1", cfg.NewsAPI.BaseURL)
	require.Equal(t, "us", cfg.NewsAPI.Country)
	require.Equal(t, "en", cfg.NewsAPI.Language)
	require.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	require.Equal(t, "favorites.json", cfg.Favorites.Path)
	require.Equal(t, 10, cfg.Recommend.Limit)
}

// TestLoad_WithLocalYAML_OK — если нет CONFIG_PATH, берётся ./local.yaml.
func TestLoad_WithLocalYAML_OK(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, ".", "local.yaml", sampleYAML)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "key-123", cfg.NewsAPI.APIKey)
}

// TestLoad_EnvOnly_OK — конфигурация полностью из ENV без YAML-файлов.
func TestLoad_EnvOnly_OK(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Setenv("CONFIG_PATH", "")
	t.Setenv("NEWSAPI_KEY", "env-key")
	t.Setenv("CACHE_TTL", "90s")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "env-key", cfg.NewsAPI.APIKey)
	require.Equal(t, 90*time.Second, cfg.Cache.TTL)
}

// TestLoad_Validate_Errors — валидация отклоняет заведомо некорректные значения.
func TestLoad_Validate_Errors(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "negative_cache_ttl",
			yaml: "newsapi:\n  api_key: \"k\"\ncache:\n  ttl: \"-1m\"\n",
			want: "cache.ttl",
		},
		{
			name: "negative_recommend_limit",
			yaml: "newsapi:\n  api_key: \"k\"\nrecommend:\n  limit: -1\n",
			want: "recommend.limit",
		},
		{
			name: "negative_newsapi_timeout",
			yaml: "newsapi:\n  api_key: \"k\"\n  timeout: \"-1s\"\n",
			want: "newsapi.timeout",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.name+".yaml", tc.yaml)
			_, err := Load(path)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}
