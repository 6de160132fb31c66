// favorites — долговременный реестр избранного: для каждого пользователя
// упорядоченный набор идентификаторов статей (URL) без дубликатов.
//
// Персистентность:
//   - бэкенд — единственный JSON-файл: объект username -> массив URL,
//     с отступом в четыре пробела;
//   - каждая мутация переписывает файл целиком до возврата из вызова
//     (write-through); масштаб настольный, O(пользователи × избранное)
//     на запись приемлем;
//   - запись атомарная: временный файл + rename;
//   - при старте файл читается заново; отсутствующий файл — пустой
//     реестр; битый файл — предупреждение в лог и пустой реестр, не сбой.
package favorites

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// Ledger — потокобезопасный файловый реестр избранного.
type Ledger struct {
	mu     sync.RWMutex
	path   string
	byUser map[string][]string
}

// Open загружает реестр из файла path (или начинает с пустого).
func Open(path string) (*Ledger, error) {
	if path == "" {
		return nil, fmt.Errorf("favorites: empty path")
	}

	l := &Ledger{
		path:   path,
		byUser: make(map[string][]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("favorites: read %s: %w", path, err)
	}

	var loaded map[string][]string
	if err := json.Unmarshal(data, &loaded); err != nil {
		slog.Warn("favorites_file_malformed_starting_empty",
			slog.String("path", path),
			slog.String("err", err.Error()),
		)
		return l, nil
	}

	for user, ids := range loaded {
		l.byUser[user] = slices.Clone(ids)
	}
	return l, nil
}

// List возвращает избранное пользователя в порядке добавления
// (пустой срез, если избранного нет).
func (l *Ledger) List(username string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.byUser[username])
}

// Contains сообщает, находится ли статья в избранном пользователя.
func (l *Ledger) Contains(username, articleID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Contains(l.byUser[username], articleID)
}

// Add добавляет статью в избранное. Возвращает true и персистит,
// если идентификатора ещё не было; повторное добавление — no-op (false).
func (l *Ledger) Add(username, articleID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if slices.Contains(l.byUser[username], articleID) {
		return false, nil
	}

	l.byUser[username] = append(l.byUser[username], articleID)
	if err := l.persist(); err != nil {
		return true, err
	}
	return true, nil
}

// Remove удаляет статью из избранного. Возвращает true и персистит,
// если идентификатор присутствовал; удаление отсутствующего — no-op (false).
func (l *Ledger) Remove(username, articleID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := l.byUser[username]
	idx := slices.Index(ids, articleID)
	if idx < 0 {
		return false, nil
	}

	l.byUser[username] = slices.Delete(ids, idx, idx+1)
	if err := l.persist(); err != nil {
		return true, err
	}
	return true, nil
}

// Clear опустошает избранное пользователя и персистит,
// даже если набор уже был пуст.
func (l *Ledger) Clear(username string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.byUser[username] = nil
	return l.persist()
}

// persist переписывает файл целиком. Вызывается под l.mu.
func (l *Ledger) persist() error {
	out := make(map[string][]string, len(l.byUser))
	for user, ids := range l.byUser {
		if ids == nil {
			out[user] = []string{}
			continue
		}
		out[user] = ids
	}

	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return fmt.Errorf("favorites: marshal: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(l.path), ".favorites-*.json")
	if err != nil {
		return fmt.Errorf("favorites: create temp: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("favorites: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("favorites: close temp: %w", err)
	}

	if err := os.Rename(tmp.Name(), l.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("favorites: rename: %w", err)
	}
	return nil
}
