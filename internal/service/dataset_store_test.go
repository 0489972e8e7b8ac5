package service

import (
	"context"
	"testing"
	"time"

	"github.com/channelchat/channelchat-go/internal/model"
)

func newTestStore() *DatasetStore {
	// Empty Redis URL yields a disabled cache; the store must work without it.
	return NewDatasetStore(NewCacheService("", time.Hour))
}

func TestDatasetStorePutGetDrop(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	if ds := store.Get(ctx, "s1"); ds != nil {
		t.Fatal("expected nil for unknown session")
	}

	ds := &model.ChannelDataset{ChannelID: "@chan", VideoCount: 1}
	store.Put(ctx, "s1", ds)

	if got := store.Get(ctx, "s1"); got != ds {
		t.Error("Get should return the stored dataset")
	}
	if got := store.Get(ctx, "s2"); got != nil {
		t.Error("other sessions must not see the dataset")
	}

	store.Drop(ctx, "s1")
	if got := store.Get(ctx, "s1"); got != nil {
		t.Error("Get after Drop should return nil")
	}
}

func TestDatasetStoreReplaces(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	first := &model.ChannelDataset{ChannelID: "@first"}
	second := &model.ChannelDataset{ChannelID: "@second"}
	store.Put(ctx, "s1", first)
	store.Put(ctx, "s1", second)

	if got := store.Get(ctx, "s1"); got != second {
		t.Error("a new dataset should replace the previous one")
	}
	if store.Len() != 1 {
		t.Errorf("len = %d, want 1", store.Len())
	}
}

func TestDatasetStoreEvictIdle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	store.Put(ctx, "stale", &model.ChannelDataset{ChannelID: "@stale"})
	store.mu.Lock()
	store.items["stale"].lastAccess = time.Now().Add(-2 * time.Hour)
	store.mu.Unlock()
	store.Put(ctx, "fresh", &model.ChannelDataset{ChannelID: "@fresh"})

	if evicted := store.evictIdle(time.Hour); evicted != 1 {
		t.Errorf("evicted = %d, want 1", evicted)
	}
	if store.Get(ctx, "stale") != nil {
		t.Error("stale entry should be gone")
	}
	if store.Get(ctx, "fresh") == nil {
		t.Error("fresh entry should survive")
	}
}
