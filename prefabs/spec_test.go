package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedSpawnerSpec(t *testing.T) {
	spec, err := LoadSpawnerSpec("spawner.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !spec.SpawnEnemies || spec.EnemyPrefab != "enemy.yaml" || spec.SpawnsPerInterval != 1 || spec.SpawnInterval != 1 {
		t.Fatalf("unexpected spec %+v", spec)
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	if err := os.WriteFile(filepath.Join(dir, "spawner.yaml"), []byte("spawns_per_interval: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadSpawnerSpec("prefabs/spawner.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.SpawnsPerInterval != 42 {
		t.Fatalf("expected disk override, got %+v", spec)
	}
}

func TestLoadScriptPaths(t *testing.T) {
	for _, name := range []string{"spiral.tengo", "scripts/spiral.tengo", "prefabs/scripts/spiral.tengo"} {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadScript(name); err != nil {
				t.Fatalf("load %s: %v", name, err)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#c83c3c", color.NRGBA{R: 0xc8, G: 0x3c, B: 0x3c, A: 0xff}, false},
		{"00ff0080", color.NRGBA{G: 0xff, A: 0x80}, false},
		{"#fff", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHexColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	raw := map[string]any{"radius": 2.5, "color": "#010203", "layer": 4}
	spec, err := DecodeComponentSpec[RenderComponentSpec](raw)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Radius != 2.5 || spec.Layer != 4 || spec.Color == nil {
		t.Fatalf("unexpected %+v", spec)
	}
	zero, err := DecodeComponentSpec[RenderComponentSpec](nil)
	if err != nil || zero.Radius != 0 {
		t.Fatalf("nil raw should decode to zero value, got %+v %v", zero, err)
	}
}

func TestDecodeEnemyStats(t *testing.T) {
	tests := []struct {
		name    string
		spec    EntityBuildSpec
		wantErr bool
		want    EnemyStats
	}{
		{"empty", EntityBuildSpec{}, true, EnemyStats{}},
		{"defaults", EntityBuildSpec{Name: "e", Components: map[string]any{"enemy_tag": nil}}, false,
			EnemyStats{Name: "e", Radius: 4, Health: 1}},
		{"full", EntityBuildSpec{Components: map[string]any{
			"render": map[string]any{"radius": 9},
			"health": map[string]any{"initial": 5},
			"chase":  map[string]any{"speed": 30, "stop_distance": 2},
		}}, false, EnemyStats{Radius: 9, Health: 5, Speed: 30, StopDistance: 2}},
		{"bad_color", EntityBuildSpec{Components: map[string]any{"render": map[string]any{"color": "blue"}}}, true, EnemyStats{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeEnemyStats(tc.spec)
			if (err != nil) != tc.wantErr {
				t.Fatalf("wantErr=%v got %v", tc.wantErr, err)
			}
			if err == nil && got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestLoadEnemyStatsColor(t *testing.T) {
	stats, err := LoadEnemyStats("enemy.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stats.Color != (color.NRGBA{R: 0xc8, G: 0x3c, B: 0x3c, A: 0xff}) {
		t.Fatalf("unexpected color %v", stats.Color)
	}
	if _, err := LoadEnemyStats("missing.yaml"); err == nil {
		t.Fatal("expected error for missing prefab")
	}
}
