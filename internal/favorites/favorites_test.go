package favorites

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты файлового реестра избранного (internal/favorites).
//
// Покрытие:
//  - идемпотентность Add/Remove (true -> false);
//  - round-trip: сохранить -> перечитать -> тот же набор;
//  - отсутствующий файл -> пустой реестр; битый файл -> пустой реестр без ошибки;
//  - Clear персистит пустой набор;
//  - формат файла: объект username -> массив строк.

func newLedger(t *testing.T) (*Ledger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "favorites.json")
	l, err := Open(path)
	require.NoError(t, err)
	return l, path
}

func TestLedger_AddIdempotent(t *testing.T) {
	t.Parallel()

	l, _ := newLedger(t)

	added, err := l.Add("alice", "https://example.org/a")
	require.NoError(t, err)
	require.True(t, added)

	added, err = l.Add("alice", "https://example.org/a")
	require.NoError(t, err)
	require.False(t, added)

	require.Equal(t, []string{"https://example.org/a"}, l.List("alice"))
}

func TestLedger_RemoveAbsent(t *testing.T) {
	t.Parallel()

	l, _ := newLedger(t)

	removed, err := l.Remove("alice", "https://example.org/a")
	require.NoError(t, err)
	require.False(t, removed)

	_, err = l.Add("alice", "https://example.org/a")
	require.NoError(t, err)

	removed, err = l.Remove("alice", "https://example.org/a")
	require.NoError(t, err)
	require.True(t, removed)
	require.Empty(t, l.List("alice"))
}

func TestLedger_Contains(t *testing.T) {
	t.Parallel()

	l, _ := newLedger(t)
	require.False(t, l.Contains("alice", "https://example.org/a"))

	_, err := l.Add("alice", "https://example.org/a")
	require.NoError(t, err)
	require.True(t, l.Contains("alice", "https://example.org/a"))
	require.False(t, l.Contains("bob", "https://example.org/a"))
}

// TestLedger_RoundTrip — после произвольной последовательности мутаций
// повторное открытие файла даёт тот же набор.
func TestLedger_RoundTrip(t *testing.T) {
	t.Parallel()

	l, path := newLedger(t)

	for _, id := range []string{"https://a", "https://b", "https://c"} {
		_, err := l.Add("alice", id)
		require.NoError(t, err)
	}
	_, err := l.Remove("alice", "https://b")
	require.NoError(t, err)
	_, err = l.Add("bob", "https://d")
	require.NoError(t, err)

	reopened, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, []string{"https://a", "https://c"}, reopened.List("alice"))
	require.Equal(t, []string{"https://d"}, reopened.List("bob"))
}

func TestLedger_OpenMissingFile_StartsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "does-not-exist.json")
	l, err := Open(path)
	require.NoError(t, err)
	require.Empty(t, l.List("anyone"))
}

// TestLedger_OpenMalformedFile_StartsEmpty — битый JSON не фатален:
// логируется предупреждение, реестр стартует пустым.
func TestLedger_OpenMalformedFile_StartsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"alice": ["https://a"`), 0o600))

	l, err := Open(path)
	require.NoError(t, err)
	require.Empty(t, l.List("alice"))
}

func TestLedger_Clear_PersistsEmptySet(t *testing.T) {
	t.Parallel()

	l, path := newLedger(t)
	_, err := l.Add("alice", "https://a")
	require.NoError(t, err)

	require.NoError(t, l.Clear("alice"))
	require.Empty(t, l.List("alice"))

	reopened, err := Open(path)
	require.NoError(t, err)
	require.Empty(t, reopened.List("alice"))

	// Clear по пустому набору тоже персистит без ошибки.
	require.NoError(t, l.Clear("nobody"))
}

// TestLedger_FileFormat — объект username -> массив идентификаторов,
// пригодный для чтения чем угодно ещё.
func TestLedger_FileFormat(t *testing.T) {
	t.Parallel()

	l, path := newLedger(t)
	_, err := l.Add("alice", "https://a")
	require.NoError(t, err)
	_, err = l.Add("alice", "https://b")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string][]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, map[string][]string{"alice": {"https://a", "https://b"}}, decoded)

	// Файл отформатирован с отступами, а не одной строкой.
	require.Contains(t, string(raw), "\n    ")
}
