package slot_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"rilliex/internal/adapters/storage"
	"rilliex/internal/adapters/storage/slot"
)

// openTestDB creates an in-memory SQLite database for testing.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return db
}

func TestSQLiteStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store := slot.NewSQLiteStore(openTestDB(t))

	if _, ok, err := store.Get(ctx, "rilliex_hero_v1"); err != nil || ok {
		t.Fatalf("Get on empty store = ok %v, err %v; want absent, nil", ok, err)
	}

	if err := store.Put(ctx, "rilliex_hero_v1", "/image/cover.jpg"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	value, ok, err := store.Get(ctx, "rilliex_hero_v1")
	if err != nil || !ok || value != "/image/cover.jpg" {
		t.Fatalf("Get = (%q, %v, %v), want stored value", value, ok, err)
	}

	// Put replaces the previous value
	if err := store.Put(ctx, "rilliex_hero_v1", "data:image/jpeg;base64,xyz"); err != nil {
		t.Fatalf("Put replace failed: %v", err)
	}
	value, _, _ = store.Get(ctx, "rilliex_hero_v1")
	if value != "data:image/jpeg;base64,xyz" {
		t.Errorf("Get after replace = %q", value)
	}
}

func TestSQLiteStore_SlotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := slot.NewSQLiteStore(openTestDB(t))

	if err := store.Put(ctx, "rilliex_hero_v1", "hero"); err != nil {
		t.Fatalf("Put hero: %v", err)
	}
	if err := store.Put(ctx, "rilliex_profile_v1", "profile"); err != nil {
		t.Fatalf("Put profile: %v", err)
	}
	if err := store.Delete(ctx, "rilliex_hero_v1"); err != nil {
		t.Fatalf("Delete hero: %v", err)
	}

	if _, ok, _ := store.Get(ctx, "rilliex_hero_v1"); ok {
		t.Error("hero slot still present after delete")
	}
	value, ok, _ := store.Get(ctx, "rilliex_profile_v1")
	if !ok || value != "profile" {
		t.Errorf("profile slot disturbed by hero delete: (%q, %v)", value, ok)
	}
}

func TestSQLiteStore_QuotaExceeded(t *testing.T) {
	ctx := context.Background()
	store := slot.NewSQLiteStoreWithLimit(openTestDB(t), 16)

	if err := store.Put(ctx, "small", "fits"); err != nil {
		t.Fatalf("Put within quota failed: %v", err)
	}
	err := store.Put(ctx, "small", strings.Repeat("x", 17))
	if !errors.Is(err, slot.ErrQuotaExceeded) {
		t.Fatalf("Put over quota = %v, want ErrQuotaExceeded", err)
	}

	// The previous value must survive a rejected write
	value, ok, _ := store.Get(ctx, "small")
	if !ok || value != "fits" {
		t.Errorf("slot after rejected write = (%q, %v), want previous value", value, ok)
	}
}

func TestSQLiteStore_DeleteAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	store := slot.NewSQLiteStore(openTestDB(t))
	if err := store.Delete(ctx, "never_written"); err != nil {
		t.Fatalf("Delete absent slot = %v, want nil", err)
	}
}
