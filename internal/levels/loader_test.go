package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/physics"
)

const customLevel = `
id: 99-custom
name: Custom
anchor: {x: 120, y: 380}
projectiles: [big, blue]
bodies:
  - {kind: ground, x: 400, y: 480, w: 800, h: 40}
  - {kind: wood, x: 500, y: 440, w: 20, h: 40, static: true}
  - {kind: king, x: 600, y: 440, r: 20, color: bright_yellow}
`

func writeLevel(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuiltin(t *testing.T) {
	lvls, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	if len(lvls) < 3 {
		t.Fatalf("expected at least 3 built-in levels, got %d", len(lvls))
	}
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
	for _, lvl := range lvls {
		if err := lvl.Validate(); err != nil {
			t.Errorf("built-in level %s invalid: %v", lvl.ID, err)
		}
	}
}

func TestBuiltinClassic(t *testing.T) {
	lvls, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}
	lvl, err := Find(lvls, "01-classic")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	if lvl.TargetCount() != 3 {
		t.Errorf("TargetCount() = %d, expected 3", lvl.TargetCount())
	}
	if len(lvl.Projectiles) != 3 {
		t.Errorf("expected 3 projectiles, got %d", len(lvl.Projectiles))
	}
	if lvl.Anchor != core.V(100, 390) {
		t.Errorf("Anchor = %v, expected {100 390}", lvl.Anchor)
	}

	ground := lvl.Bodies[0]
	if ground.Kind != KindGround || !ground.Static || ground.Shape != physics.ShapeRect {
		t.Errorf("first body should be static rect ground, got %+v", ground)
	}
	for _, b := range lvl.Bodies {
		if b.Kind == KindWood && b.Static {
			t.Error("wood should be dynamic by default")
		}
		if b.Kind.IsTarget() && b.Shape != physics.ShapeCircle {
			t.Error("targets should be circles")
		}
	}
}

func TestLoaderLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeLevel(t, dir, "custom.yaml", customLevel)

	lvl, err := NewLoader(dir).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if lvl.FilePath != path {
		t.Errorf("FilePath = %q, expected %q", lvl.FilePath, path)
	}
	if got := lvl.Projectiles; len(got) != 2 || got[0] != ProjectileBig || got[1] != ProjectileBlue {
		t.Errorf("Projectiles = %v, expected [big blue]", got)
	}

	wood := lvl.Bodies[1]
	if !wood.Static {
		t.Error("static: true should override the kind default")
	}
	king := lvl.Bodies[2]
	if king.Kind != KindKing || king.Color != core.ColorBrightYellow || king.R != 20 {
		t.Errorf("king parsed as %+v", king)
	}
}

func TestLoaderSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "good.yml", customLevel)
	writeLevel(t, dir, "notargets.yaml", "id: empty\nbodies:\n  - {kind: ground, x: 0, y: 0, w: 10, h: 10}\n")
	writeLevel(t, dir, "badkind.yaml", "id: bad\nbodies:\n  - {kind: lava, x: 0, y: 0, r: 3}\n")
	writeLevel(t, dir, "readme.txt", "not a level")

	lvls, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(lvls) != 1 || lvls[0].ID != "99-custom" {
		t.Errorf("LoadAll() = %d levels, expected only 99-custom", len(lvls))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no ground", "id: x\nbodies:\n  - {kind: target, x: 1, y: 1, r: 5}\n"},
		{"no id", "bodies:\n  - {kind: ground, x: 0, y: 0, w: 1, h: 1}\n  - {kind: target, x: 1, y: 1, r: 5}\n"},
		{"bad projectile", "id: x\nprojectiles: [green]\nbodies:\n  - {kind: ground, x: 0, y: 0, w: 1, h: 1}\n  - {kind: target, x: 1, y: 1, r: 5}\n"},
		{"shapeless body", "id: x\nbodies:\n  - {kind: ground, x: 0, y: 0}\n"},
		{"bad color", "id: x\nbodies:\n  - {kind: ground, x: 0, y: 0, w: 1, h: 1, color: plaid}\n  - {kind: target, x: 1, y: 1, r: 5}\n"},
		{"bad yaml", "id: [x"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parse([]byte(tc.data), ".yaml"); err == nil {
				t.Errorf("parse() should fail for %s", tc.name)
			}
		})
	}

	if _, err := parse([]byte(customLevel), ".json"); err == nil {
		t.Error("parse() should reject unsupported extensions")
	}
}

func TestCatalogMergesDirectory(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "custom.yaml", customLevel)
	override := "id: 01-classic\nname: Replaced\nbodies:\n  - {kind: ground, x: 400, y: 480, w: 800, h: 40}\n  - {kind: target, x: 600, y: 440, r: 20}\n"
	writeLevel(t, dir, "override.yaml", override)

	builtin, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}
	lvls, err := Catalog(dir)
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}

	if len(lvls) != len(builtin)+1 {
		t.Errorf("Catalog() = %d levels, expected %d", len(lvls), len(builtin)+1)
	}
	classic, err := Find(lvls, "01-classic")
	if err != nil || classic.Name != "Replaced" {
		t.Errorf("directory level should replace built-in, got %q (%v)", classic.Name, err)
	}
	if Index(lvls, "99-custom") != len(lvls)-1 {
		t.Errorf("custom level should sort last, index %d", Index(lvls, "99-custom"))
	}
}

func TestFindNotFound(t *testing.T) {
	_, err := Find(nil, "nope")
	if !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("Find() error = %v, expected ErrLevelNotFound", err)
	}
	if Index(nil, "nope") != -1 {
		t.Error("Index() should be -1 for missing levels")
	}
}

func TestLineup(t *testing.T) {
	lvl := Level{Projectiles: []ProjectileKind{ProjectileRed, ProjectileBig}}

	tests := []struct {
		name     string
		level    Level
		fallback int
		extra    int
		expected []ProjectileKind
	}{
		{"as declared", lvl, 3, 0, []ProjectileKind{ProjectileRed, ProjectileBig}},
		{"extra repeats last", lvl, 3, 1, []ProjectileKind{ProjectileRed, ProjectileBig, ProjectileBig}},
		{"removal keeps one", lvl, 3, -5, []ProjectileKind{ProjectileRed}},
		{"empty uses fallback", Level{}, 3, 0, []ProjectileKind{ProjectileRed, ProjectileRed, ProjectileRed}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.level.Lineup(tc.fallback, tc.extra)
			if len(got) != len(tc.expected) {
				t.Fatalf("Lineup() = %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("Lineup()[%d] = %v, expected %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}
