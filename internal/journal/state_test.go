package journal

import (
	"context"
	"path/filepath"
	"testing"
)

func TestFileStateStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := &FileStateStore{Path: filepath.Join(t.TempDir(), "state.json")}

	if _, ok, err := store.Load(ctx); err != nil || ok {
		t.Fatalf("fresh state should be absent: ok=%v err=%v", ok, err)
	}

	if err := store.Save(ctx, 42); err != nil {
		t.Fatalf("save: %v", err)
	}

	seq, ok, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok || seq != 42 {
		t.Fatalf("state mismatch: ok=%v seq=%d", ok, seq)
	}
}

func TestFileStateStoreEmptyPath(t *testing.T) {
	ctx := context.Background()
	store := &FileStateStore{}

	if err := store.Save(ctx, 42); err != nil {
		t.Fatalf("empty path save should be a no-op: %v", err)
	}
	if _, ok, err := store.Load(ctx); err != nil || ok {
		t.Fatalf("empty path load should report absent: ok=%v err=%v", ok, err)
	}
}
