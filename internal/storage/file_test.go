package storage

import (
	"context"
	"testing"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	payload := []byte(`{"schema_version":1,"records":[]}`)
	if err := store.Put(ctx, "rooms", payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := store.Get(ctx, "rooms")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("slot should exist after Put")
	}
	if string(got) != string(payload) {
		t.Errorf("Get = %s, want %s", got, payload)
	}
}

func TestFileStore_MissingSlot(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	_, ok, err := store.Get(context.Background(), "reservations")
	if err != nil {
		t.Fatalf("Get on missing slot: %v", err)
	}
	if ok {
		t.Errorf("missing slot should report absent, not present")
	}
}

func TestFileStore_OverwriteReplaces(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := store.Put(ctx, "rooms", []byte("first")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(ctx, "rooms", []byte("second")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, _, err := store.Get(ctx, "rooms")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Get = %s, want second", got)
	}
}

func TestMemoryStore_FailWrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Put(ctx, "rooms", []byte("ok")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	store.FailWrites = context.DeadlineExceeded
	if err := store.Put(ctx, "rooms", []byte("nope")); err == nil {
		t.Fatalf("Put should fail when FailWrites is set")
	}

	// The previous value must survive the failed write.
	got, ok, err := store.Get(ctx, "rooms")
	if err != nil || !ok {
		t.Fatalf("Get: %v, ok=%v", err, ok)
	}
	if string(got) != "ok" {
		t.Errorf("Get = %s, want ok", got)
	}
}
