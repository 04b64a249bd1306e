package levelfmt

import (
	"path/filepath"
	"testing"
)

func TestLevelPackSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pack.yaml")

	pack := &LevelPack{
		Version: 1,
		Levels: []Level{
			{Name: "warm-up", Rows: []string{"0.0", ".4.", "0.0"}},
			{Name: "corridor", Rows: []string{"1...", "..2."}},
		},
	}
	if err := pack.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadLevelPack(path)
	if err != nil {
		t.Fatalf("LoadLevelPack: %v", err)
	}
	if loaded.Version != 1 || len(loaded.Levels) != 2 {
		t.Fatalf("loaded pack = %+v, want version 1 with 2 levels", loaded)
	}

	lvl, ok := loaded.Find("corridor")
	if !ok {
		t.Fatal("expected to find level \"corridor\"")
	}
	if len(lvl.Rows) != 2 || lvl.Rows[0] != "1..." {
		t.Fatalf("corridor rows = %v", lvl.Rows)
	}
}

func TestLevelPackFindMissing(t *testing.T) {
	pack := &LevelPack{Levels: []Level{{Name: "a"}}}
	if _, ok := pack.Find("nope"); ok {
		t.Fatal("expected Find to report false for a missing level")
	}
}
