package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, ok := db.GetSetting(ctx, "selected_group_id"); ok {
		t.Fatalf("expected missing setting on fresh database")
	}
	if err := db.SetSetting(ctx, "selected_group_id", "7"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting(ctx, "selected_group_id", "8"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	got, ok := db.GetSetting(ctx, "selected_group_id")
	if !ok || got != "8" {
		t.Fatalf("GetSetting = %q, %v; want 8, true", got, ok)
	}
}

func TestSettingsSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := db.SetSetting(ctx, "theme", "dracula"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()
	if got, ok := db.GetSetting(ctx, "theme"); !ok || got != "dracula" {
		t.Fatalf("GetSetting after reopen = %q, %v", got, ok)
	}
}

func TestSetSettingOnClosedDatabaseIsOpError(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.DB.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	err := db.SetSetting(ctx, "k", "v")
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OpError, got %v", err)
	}
	if opErr.Op != "set" || opErr.Key != "k" {
		t.Fatalf("unexpected OpError %+v", opErr)
	}
}
