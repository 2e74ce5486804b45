package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/memora-cli/internal/core/domain"
)

func TestAdd_MostRecentFirst(t *testing.T) {
	store := NewMemoryStore(domain.StoreSettings{})
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, &domain.Memory{ID: "1", CapturedAt: time.Now()}))
	require.NoError(t, store.Add(ctx, &domain.Memory{ID: "2", CapturedAt: time.Now()}))

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2", all[0].ID)
	assert.Equal(t, "1", all[1].ID)
}

func TestAdd_DedupWindow(t *testing.T) {
	store := NewMemoryStore(domain.StoreSettings{DedupWindow: 5 * time.Minute})
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Add(ctx, &domain.Memory{ID: "1", URL: "https://example.org", CapturedAt: now}))

	err := store.Add(ctx, &domain.Memory{ID: "2", URL: "https://example.org", CapturedAt: now.Add(time.Minute)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Outside the window the same URL is accepted again.
	err = store.Add(ctx, &domain.Memory{ID: "3", URL: "https://example.org", CapturedAt: now.Add(10 * time.Minute)})
	assert.NoError(t, err)
}

func TestAdd_EmptyURLNeverDeduplicated(t *testing.T) {
	store := NewMemoryStore(domain.StoreSettings{DedupWindow: 5 * time.Minute})
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Add(ctx, &domain.Memory{ID: "1", CapturedAt: now}))
	require.NoError(t, store.Add(ctx, &domain.Memory{ID: "2", CapturedAt: now}))
}

func TestAdd_CapacityTruncatesOldest(t *testing.T) {
	store := NewMemoryStore(domain.StoreSettings{MaxMemories: 3})
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, store.Add(ctx, &domain.Memory{
			ID:         fmt.Sprintf("%d", i),
			CapturedAt: time.Now(),
		}))
	}

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "5", all[0].ID)
	assert.Equal(t, "3", all[2].ID)
}

func TestGet(t *testing.T) {
	store := NewMemoryStore(domain.StoreSettings{})
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, &domain.Memory{ID: "1", Title: "Titre"}))

	mem, err := store.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Titre", mem.Title)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemove(t *testing.T) {
	store := NewMemoryStore(domain.StoreSettings{})
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, &domain.Memory{ID: "1"}))

	require.NoError(t, store.Remove(ctx, "1"))
	assert.ErrorIs(t, store.Remove(ctx, "1"), domain.ErrNotFound)
}

func TestClear(t *testing.T) {
	store := NewMemoryStore(domain.StoreSettings{})
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, &domain.Memory{ID: "1"}))

	require.NoError(t, store.Clear(ctx))

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSearch(t *testing.T) {
	store := NewMemoryStore(domain.StoreSettings{})
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, &domain.Memory{ID: "1", Title: "Photosynthèse des plantes"}))
	require.NoError(t, store.Add(ctx, &domain.Memory{ID: "2", FullText: "La photosynthèse expliquée"}))
	require.NoError(t, store.Add(ctx, &domain.Memory{ID: "3", Domain: "photo.example.org"}))
	require.NoError(t, store.Add(ctx, &domain.Memory{ID: "4", Title: "Cuisine"}))

	got, err := store.Search(ctx, "photo")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = store.Search(ctx, "PHOTOSYNTHÈSE")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetAll_ReturnsCopy(t *testing.T) {
	store := NewMemoryStore(domain.StoreSettings{})
	ctx := context.Background()
	require.NoError(t, store.Add(ctx, &domain.Memory{ID: "1", Title: "Original"}))

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	all[0].Title = "Modifié"

	again, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Original", again[0].Title)
}
