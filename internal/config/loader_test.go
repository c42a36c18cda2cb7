package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	if got, want := Embedded(), DefaultCatMouseConfig(); got != want {
		t.Errorf("embedded yaml and DefaultCatMouseConfig differ:\n got %+v\nwant %+v", got, want)
	}
	if err := DefaultCatMouseConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestLoadCatMouseCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "player:\n  speed: 7\nscore:\n  mouse_points: 25\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCatMouse(path)
	if err != nil {
		t.Fatalf("LoadCatMouse: %v", err)
	}
	if cfg.Player.Speed != 7 {
		t.Errorf("Player.Speed = %v, want 7", cfg.Player.Speed)
	}
	if cfg.Score.MousePoints != 25 {
		t.Errorf("Score.MousePoints = %d, want 25", cfg.Score.MousePoints)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Player.JumpPower != DefaultCatMouseConfig().Player.JumpPower {
		t.Errorf("Player.JumpPower = %v, want default", cfg.Player.JumpPower)
	}
}

func TestLoadCatMouseErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCatMouse(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatMouse(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestLocate(t *testing.T) {
	if got := Locate("/some/where.yaml"); got != "/some/where.yaml" {
		t.Errorf("Locate(custom) = %q", got)
	}

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	if got := Locate(""); got != "" {
		t.Errorf("Locate with no files = %q, want empty", got)
	}

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	local := filepath.Join("configs", FileName)
	if err := os.WriteFile(local, []byte("score:\n  mouse_points: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Locate(""); got != local {
		t.Errorf("Locate = %q, want %q", got, local)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CatMouseConfig)
		wantErr string
	}{
		{"valid", func(*CatMouseConfig) {}, ""},
		{"zero screen width", func(c *CatMouseConfig) { c.Screen.Width = 0 }, "screen.width"},
		{"inverted width range", func(c *CatMouseConfig) { c.Platforms.MinWidth, c.Platforms.MaxWidth = 300, 200 }, "platforms.width"},
		{"inverted spacing", func(c *CatMouseConfig) { c.Platforms.SpacingMin = 200 }, "platforms.spacing"},
		{"inverted y range", func(c *CatMouseConfig) { c.Platforms.YRangeMin = 600 }, "platforms.y_range"},
		{"negative score", func(c *CatMouseConfig) { c.Score.MousePoints = -1 }, "score.mouse_points"},
		{"spawn margin too wide", func(c *CatMouseConfig) { c.Mice.SpawnMargin = 60 }, "mice.spawn_margin"},
		{"loud music", func(c *CatMouseConfig) { c.Audio.MusicVolume = 1.5 }, "audio.music_volume"},
		{"zero pattern", func(c *CatMouseConfig) { c.Platforms.AlternationPattern = 0 }, "alternation_pattern"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCatMouseConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	if _, err := Parse([]byte("score:\n  mouse_points: -5\n")); err == nil {
		t.Error("expected validation error from Parse")
	}
}

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("score:\n  mouse_points: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("score:\n  mouse_points: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Configs:
			if cfg.Score.MousePoints == 42 {
				return
			}
		case err := <-w.Errors:
			t.Logf("watcher error: %v", err)
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}
