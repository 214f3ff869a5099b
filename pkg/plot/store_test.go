package plot

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// tick returns a clock that advances one second per call.
func tick(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func TestStore_PutGet(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Put(markersPlot())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	entry, err := store.Get(id)
	require.NoError(t, err)
	require.Equal(t, id, entry.ID)
	require.Equal(t, 1, entry.Traces)
	require.JSONEq(t, markersPlot().String(), string(entry.Document))

	p, err := store.Load(id)
	require.NoError(t, err)
	require.True(t, markersPlot().Equal(p))
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("missing")
	require.ErrorIs(t, err, ErrPlotNotFound)

	err = store.Delete("missing")
	require.ErrorIs(t, err, ErrPlotNotFound)
}

func TestStore_PutDocument(t *testing.T) {
	store := newTestStore(t)

	_, err := store.PutDocument([]byte(`not json`))
	require.Error(t, err)

	id, err := store.PutDocument([]byte(`{"data":[{"type":"bar","y":[1]},{"y":[2]}]}`))
	require.NoError(t, err)

	entry, err := store.Get(id)
	require.NoError(t, err)
	require.Equal(t, 2, entry.Traces)
	require.JSONEq(t, `{"data":[{"type":"bar","y":[1]},{"y":[2]}],"layout":{},"config":{}}`, string(entry.Document))
}

func TestStore_Replace(t *testing.T) {
	store := newTestStore(t)
	store.now = tick(time.Unix(1700000000, 0))

	require.NoError(t, store.Replace("fixed", NewPlot()))
	first, err := store.Get("fixed")
	require.NoError(t, err)

	require.NoError(t, store.Replace("fixed", markersPlot()))
	second, err := store.Get("fixed")
	require.NoError(t, err)

	require.Equal(t, first.CreatedAt, second.CreatedAt)
	require.True(t, second.Updated().After(first.Updated()))
	require.Equal(t, 1, second.Traces)
}

func TestStore_List(t *testing.T) {
	store := newTestStore(t)
	store.now = tick(time.Unix(1700000000, 0))

	plots, err := store.List()
	require.NoError(t, err)
	require.Empty(t, plots)

	require.NoError(t, store.Replace("a", NewPlot()))
	require.NoError(t, store.Replace("b", NewPlot()))
	require.NoError(t, store.Replace("c", NewPlot()))
	require.NoError(t, store.Replace("a", markersPlot()))
	require.NoError(t, store.Delete("b"))

	plots, err = store.List()
	require.NoError(t, err)
	require.Len(t, plots, 2)
	require.Equal(t, "a", plots[0].ID)
	require.Equal(t, "c", plots[1].ID)
}

func TestStore_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots.db")

	store, err := NewStore(path, DefaultStoreConfig())
	require.NoError(t, err)
	id, err := store.Put(markersPlot())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = NewStore(path, DefaultStoreConfig())
	require.NoError(t, err)
	defer store.Close()

	p, err := store.Load(id)
	require.NoError(t, err)
	require.True(t, markersPlot().Equal(p))
}
