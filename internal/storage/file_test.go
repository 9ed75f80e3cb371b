package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	ctx := context.Background()

	if err := store.Put(ctx, "slot1", []byte(`{"clock":3}`)); err != nil {
		t.Fatal(err)
	}
	data, err := store.Get(ctx, "slot1")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"clock":3}` {
		t.Errorf("got %s", data)
	}
}

func TestFileStoreGetMissing(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())
	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFileStoreList(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())
	ctx := context.Background()
	store.Put(ctx, "beta", []byte("{}"))
	store.Put(ctx, "alpha", []byte("{}"))

	slots, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 2 || slots[0] != "alpha" || slots[1] != "beta" {
		t.Errorf("slots = %v", slots)
	}
}

func TestFileStoreDelete(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())
	ctx := context.Background()
	store.Put(ctx, "gone", []byte("{}"))

	if err := store.Delete(ctx, "gone"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get(ctx, "gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, "gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestFileStoreRejectsPathEscape(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewFileStore(dir)
	ctx := context.Background()

	for _, slot := range []string{"", "../evil", "a/b", `a\b`, ".."} {
		if err := store.Put(ctx, slot, []byte("{}")); err == nil {
			t.Errorf("Put(%q) should fail", slot)
		}
	}
	// Nothing escaped into the parent.
	if m, _ := filepath.Glob(filepath.Join(dir, "..", "evil*")); len(m) != 0 {
		t.Errorf("escaped files: %v", m)
	}
}
