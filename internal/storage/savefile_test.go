package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vkoshelev/tui-survivor/internal/config"
	"github.com/vkoshelev/tui-survivor/internal/survivor"
)

func testRecord() survivor.SaveRecord {
	return survivor.SaveRecord{
		Version:         survivor.SaveVersion,
		SavedAt:         time.Now(),
		Mode:            "campaign",
		World:           2,
		Round:           3,
		PlayerHP:        80,
		PlayerMaxHP:     120,
		Weapons:         []int{int(survivor.WeaponPistol), int(survivor.WeaponRifle)},
		ActiveSlot:      1,
		Coins:           37,
		Upgrades:        survivor.Upgrades{Damage: 2},
		Kills:           214,
		TimeSurvivedSec: 512,
		HighestRound:    24,
	}
}

func TestFileSaveStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	store, err := NewFileSaveStore(path, config.DefaultCatalog(), nil)
	if err != nil {
		t.Fatalf("NewFileSaveStore() failed: %v", err)
	}

	rec := testRecord()
	if err := store.Commit(rec); err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load() should return the committed record")
	}

	if loaded.World != 2 || loaded.Round != 3 {
		t.Errorf("Position should round-trip, got world %d round %d", loaded.World, loaded.Round)
	}
	if loaded.PlayerHP != 80 || loaded.PlayerMaxHP != 120 {
		t.Errorf("Health should round-trip, got %d/%d", loaded.PlayerHP, loaded.PlayerMaxHP)
	}
	if len(loaded.Weapons) != 2 || loaded.Weapons[1] != int(survivor.WeaponRifle) {
		t.Errorf("Weapons should round-trip, got %v", loaded.Weapons)
	}
	if loaded.ActiveSlot != 1 || loaded.Coins != 37 {
		t.Errorf("Loadout should round-trip, got slot %d coins %d", loaded.ActiveSlot, loaded.Coins)
	}
	if loaded.Upgrades.Damage != 2 {
		t.Errorf("Upgrades should round-trip, got %+v", loaded.Upgrades)
	}
	if loaded.Kills != 214 || loaded.TimeSurvivedSec != 512 || loaded.HighestRound != 24 {
		t.Errorf("Totals should round-trip, got %d/%d/%d",
			loaded.Kills, loaded.TimeSurvivedSec, loaded.HighestRound)
	}
}

func TestFileSaveStoreMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	store, err := NewFileSaveStore(path, config.DefaultCatalog(), nil)
	if err != nil {
		t.Fatalf("NewFileSaveStore() failed: %v", err)
	}

	rec, err := store.Load()
	if err != nil {
		t.Fatalf("Load() of a missing file should not error: %v", err)
	}
	if rec != nil {
		t.Error("Missing file should load as no save")
	}
}

func TestFileSaveStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	store, err := NewFileSaveStore(path, config.DefaultCatalog(), nil)
	if err != nil {
		t.Fatalf("NewFileSaveStore() failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	rec, err := store.Load()
	if err != nil {
		t.Fatalf("Load() of a corrupt file should not error: %v", err)
	}
	if rec != nil {
		t.Error("Corrupt file should load as no save")
	}
}

func TestFileSaveStoreInvalidRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	store, err := NewFileSaveStore(path, config.DefaultCatalog(), nil)
	if err != nil {
		t.Fatalf("NewFileSaveStore() failed: %v", err)
	}

	// Parses fine but fails validation: unknown version
	bad := testRecord()
	bad.Version = 99
	if err := store.Commit(bad); err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}

	rec, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if rec != nil {
		t.Error("Invalid record should load as no save")
	}
}

func TestFileSaveStoreOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	store, err := NewFileSaveStore(path, config.DefaultCatalog(), nil)
	if err != nil {
		t.Fatalf("NewFileSaveStore() failed: %v", err)
	}

	first := testRecord()
	if err := store.Commit(first); err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}

	second := testRecord()
	second.Round = 4
	second.Coins = 90
	if err := store.Commit(second); err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded == nil || loaded.Round != 4 || loaded.Coins != 90 {
		t.Errorf("Load() should return the latest commit, got %+v", loaded)
	}

	// No temp file left behind
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Commit should clean up its temp file")
	}
}

func TestFileSaveStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	store, err := NewFileSaveStore(path, config.DefaultCatalog(), nil)
	if err != nil {
		t.Fatalf("NewFileSaveStore() failed: %v", err)
	}

	// Clearing an empty store is fine
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() without a save should succeed, got %v", err)
	}

	if err := store.Commit(testRecord()); err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() after Clear() failed: %v", err)
	}
	if loaded != nil {
		t.Errorf("Load() after Clear() should report no save, got %+v", loaded)
	}
}

func TestFileSaveStoreCreatesNestedDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves", "deep", "save.json")
	store, err := NewFileSaveStore(path, config.DefaultCatalog(), nil)
	if err != nil {
		t.Fatalf("NewFileSaveStore() with nested path failed: %v", err)
	}

	if err := store.Commit(testRecord()); err != nil {
		t.Fatalf("Commit() into nested directory failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("Save file was not created in nested directory")
	}
}

func TestMemSaveStore(t *testing.T) {
	store := &MemSaveStore{}

	rec, err := store.Load()
	if err != nil || rec != nil {
		t.Errorf("Empty store should load as no save, got %v, %v", rec, err)
	}

	if err := store.Commit(testRecord()); err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded == nil || loaded.Round != 3 {
		t.Errorf("Load() should return the committed record, got %+v", loaded)
	}

	// The returned record is a copy
	loaded.Round = 99
	again, _ := store.Load()
	if again.Round != 3 {
		t.Error("Mutating a loaded record should not affect the store")
	}
}
