package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/aggregator-service/internal/models"
)

// Тесты реестра статей (internal/registry).
//
// Покрытие:
//  - Put/ByURL round-trip и перезапись по ключу;
//  - пустой URL -> no-op;
//  - мутации (лайки, комментарии) атомарны и не теряются под гонкой;
//  - наружу отдаются копии: мутация снимка не видна реестру.

func article(url, category string) models.Article {
	return models.Article{
		URL:      url,
		Title:    "title " + url,
		Source:   "source",
		Category: category,
	}
}

func TestRegistry_PutAndByURL(t *testing.T) {
	t.Parallel()

	r := New()
	r.Put(article("https://example.org/a", "tech"))

	got, ok := r.ByURL("https://example.org/a")
	require.True(t, ok)
	require.Equal(t, "title https://example.org/a", got.Title)
	require.Equal(t, "tech", got.Category)

	// Перезапись по тому же ключу.
	updated := article("https://example.org/a", "science")
	r.Put(updated)

	got, ok = r.ByURL("https://example.org/a")
	require.True(t, ok)
	require.Equal(t, "science", got.Category)
	require.Equal(t, 1, r.Len())
}

func TestRegistry_Put_EmptyURL_NoOp(t *testing.T) {
	t.Parallel()

	r := New()
	r.Put(models.Article{Title: "no id"})
	require.Equal(t, 0, r.Len())

	r.PutAll([]models.Article{
		{Title: "no id"},
		article("https://example.org/b", ""),
	})
	require.Equal(t, 1, r.Len())
}

func TestRegistry_ByURL_NotFound(t *testing.T) {
	t.Parallel()

	r := New()
	_, ok := r.ByURL("https://example.org/missing")
	require.False(t, ok)

	_, ok = r.IncrementLikes("https://example.org/missing")
	require.False(t, ok)

	_, ok = r.AppendComment("https://example.org/missing", "text")
	require.False(t, ok)
}

func TestRegistry_IncrementLikes(t *testing.T) {
	t.Parallel()

	r := New()
	r.Put(article("https://example.org/a", "tech"))

	got, ok := r.IncrementLikes("https://example.org/a")
	require.True(t, ok)
	require.EqualValues(t, 1, got.Likes)

	got, ok = r.IncrementLikes("https://example.org/a")
	require.True(t, ok)
	require.EqualValues(t, 2, got.Likes)
}

// TestRegistry_IncrementLikes_Concurrent — N конкурентных лайков по одному
// URL: ни один инкремент не теряется, снимки монотонно растут.
func TestRegistry_IncrementLikes_Concurrent(t *testing.T) {
	t.Parallel()

	const workers = 64

	r := New()
	r.Put(article("https://example.org/a", "tech"))

	seen := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, ok := r.IncrementLikes("https://example.org/a")
			if !ok {
				seen <- -1
				return
			}
			seen <- got.Likes
		}()
	}
	wg.Wait()
	close(seen)

	// Каждый вызов увидел уникальное значение из [1..workers].
	unique := make(map[int64]bool, workers)
	for v := range seen {
		require.NotEqual(t, int64(-1), v, "increment on stored article must succeed")
		require.False(t, unique[v], "duplicate like counter value %d", v)
		unique[v] = true
	}
	require.Len(t, unique, workers)

	got, ok := r.ByURL("https://example.org/a")
	require.True(t, ok)
	require.EqualValues(t, workers, got.Likes)
}

func TestRegistry_AppendComment(t *testing.T) {
	t.Parallel()

	r := New()
	r.Put(article("https://example.org/a", "tech"))

	got, ok := r.AppendComment("https://example.org/a", "first")
	require.True(t, ok)
	require.Len(t, got.Comments, 1)
	require.Equal(t, "first", got.Comments[0].Text)
	require.NotZero(t, got.Comments[0].ID)
	require.False(t, got.Comments[0].CreatedAt.IsZero())

	got, ok = r.AppendComment("https://example.org/a", "second")
	require.True(t, ok)
	require.Len(t, got.Comments, 2)
	require.Equal(t, []string{"first", "second"}, []string{got.Comments[0].Text, got.Comments[1].Text})
}

// TestRegistry_SnapshotsDoNotAlias — изменение возвращённой копии
// не затрагивает хранимый экземпляр.
func TestRegistry_SnapshotsDoNotAlias(t *testing.T) {
	t.Parallel()

	r := New()
	r.Put(article("https://example.org/a", "tech"))
	_, ok := r.AppendComment("https://example.org/a", "kept")
	require.True(t, ok)

	snap, ok := r.ByURL("https://example.org/a")
	require.True(t, ok)
	snap.Likes = 100
	snap.Comments[0].Text = "mutated"

	got, ok := r.ByURL("https://example.org/a")
	require.True(t, ok)
	require.EqualValues(t, 0, got.Likes)
	require.Equal(t, "kept", got.Comments[0].Text)
}

func TestRegistry_All(t *testing.T) {
	t.Parallel()

	r := New()
	want := make(map[string]bool)
	for i := 0; i < 5; i++ {
		url := fmt.Sprintf("https://example.org/%d", i)
		r.Put(article(url, "tech"))
		want[url] = true
	}

	all := r.All()
	require.Len(t, all, 5)
	for _, a := range all {
		require.True(t, want[a.URL])
	}
}
