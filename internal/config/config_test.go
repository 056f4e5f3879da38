package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultSlingshotConfig() {
		t.Errorf("embedded YAML and DefaultSlingshotConfig() differ:\n%+v\n%+v", cfg, DefaultSlingshotConfig())
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "sling:\n  max_pull: 110\ntiming:\n  loss_grace: 1500ms\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Sling.MaxPull != 110 {
		t.Errorf("MaxPull = %v, expected 110", cfg.Sling.MaxPull)
	}
	if cfg.Timing.LossGrace != 1500*time.Millisecond {
		t.Errorf("LossGrace = %v, expected 1.5s", cfg.Timing.LossGrace)
	}
	// Untouched keys keep defaults
	if cfg.Sling.CaptureRadius != 35 {
		t.Errorf("CaptureRadius = %v, expected default 35", cfg.Sling.CaptureRadius)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	local := filepath.Join(work, "configs", ConfigFile)
	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(local, []byte("session:\n  projectiles: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Session.Projectiles != 5 {
		t.Errorf("local config not used, Projectiles = %d", cfg.Session.Projectiles)
	}

	user := filepath.Join(home, ".slingshot", "configs", ConfigFile)
	if err := os.MkdirAll(filepath.Dir(user), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(user, []byte("session:\n  projectiles: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Session.Projectiles != 7 {
		t.Errorf("user config should win over local, Projectiles = %d", cfg.Session.Projectiles)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("sling: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load() of bad YAML error = %v, expected parse error", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("session:\n  projectiles: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("Load() of invalid config error = %v, expected validation error", err)
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := DefaultSlingshotConfig()
	cfg.Sling.ForceScale = 0.5
	cfg.Sling.PreviewPoints = 20
	cfg.Sling.PreviewStride = 0
	cfg.Sling.CaptureRadius = 45.5
	cfg.Sling.MaxPull = 85

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Sling.ForceScale != MaxForceScale {
		t.Errorf("ForceScale = %v, expected %v", cfg.Sling.ForceScale, MaxForceScale)
	}
	if cfg.Sling.PreviewPoints != MaxPreviewPoints {
		t.Errorf("PreviewPoints = %d, expected %d", cfg.Sling.PreviewPoints, MaxPreviewPoints)
	}
	if cfg.Sling.PreviewStride != 1 {
		t.Errorf("PreviewStride = %d, expected 1", cfg.Sling.PreviewStride)
	}
	if cfg.Sling.CaptureRadius != MaxCaptureRadius {
		t.Errorf("CaptureRadius = %v, expected %v", cfg.Sling.CaptureRadius, MaxCaptureRadius)
	}
	if cfg.Sling.MaxPull != MinPull {
		t.Errorf("MaxPull = %v, expected %v", cfg.Sling.MaxPull, MinPull)
	}

	cfg.Sling.MaxPull = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject zero max_pull")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultSlingshotConfig()

	tests := []struct {
		preset  DifficultyPreset
		capture float64
		pull    float64
		extra   int
	}{
		{DifficultyEasy, 40, 110, 1},
		{DifficultyNormal, 35, 100, 0},
		{DifficultyHard, 30, 100, -1},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := ApplyPreset(base, tc.preset)
			if cfg.Sling.CaptureRadius != tc.capture {
				t.Errorf("CaptureRadius = %v, expected %v", cfg.Sling.CaptureRadius, tc.capture)
			}
			if cfg.Sling.MaxPull != tc.pull {
				t.Errorf("MaxPull = %v, expected %v", cfg.Sling.MaxPull, tc.pull)
			}
			if cfg.Session.Projectiles != base.Session.Projectiles {
				t.Errorf("Projectiles = %d, presets must leave it at %d", cfg.Session.Projectiles, base.Session.Projectiles)
			}
			if got := ExtraProjectiles(tc.preset); got != tc.extra {
				t.Errorf("ExtraProjectiles() = %d, expected %d", got, tc.extra)
			}

			validated := cfg
			if err := validated.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if validated != cfg {
				t.Errorf("preset output changed by Validate:\n%+v\n%+v", cfg, validated)
			}
		})
	}
}

func TestApplyPresetStaysInRange(t *testing.T) {
	cfg := DefaultSlingshotConfig()
	cfg.Sling.CaptureRadius = MaxCaptureRadius
	cfg.Sling.MaxPull = MaxPull
	if got := ApplyPreset(cfg, DifficultyEasy).Sling; got.CaptureRadius != MaxCaptureRadius || got.MaxPull != MaxPull {
		t.Errorf("easy preset left the range: capture %v pull %v", got.CaptureRadius, got.MaxPull)
	}

	cfg.Sling.CaptureRadius = MinCaptureRadius
	cfg.Sling.MaxPull = MinPull
	cfg.Sling.ForceScale = MinForceScale
	got := ApplyPreset(cfg, DifficultyHard).Sling
	if got.CaptureRadius != MinCaptureRadius || got.MaxPull != MinPull || got.ForceScale != MinForceScale {
		t.Errorf("hard preset left the range: %+v", got)
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestSaveDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFile)
	if err := SaveDefault(path); err != nil {
		t.Fatalf("SaveDefault() error = %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultSlingshotConfig() {
		t.Error("saved default should load back as the default config")
	}
	if err := SaveDefault(path); err == nil {
		t.Error("SaveDefault() should refuse to overwrite")
	}
}
