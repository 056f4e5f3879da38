package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/levels/formats"
	"github.com/vovakirdan/tui-slingshot/internal/physics"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	level, err := parse(data, filepath.Ext(path))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	level.FilePath = path
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return Find(levels, id)
}

// Builtin returns the levels embedded in the binary, sorted by ID.
func Builtin() ([]Level, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("reading built-in levels: %w", err)
	}

	levels := make([]Level, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading built-in level %s: %w", e.Name(), err)
		}
		level, err := parse(data, filepath.Ext(e.Name()))
		if err != nil {
			return nil, fmt.Errorf("parsing built-in level %s: %w", e.Name(), err)
		}
		levels = append(levels, level)
	}

	sortByID(levels)
	return levels, nil
}

// Catalog returns built-in levels merged with levels from dir.
// Directory levels replace built-in levels with the same ID.
// An empty dir returns only the built-in levels.
func Catalog(dir string) ([]Level, error) {
	levels, err := Builtin()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return levels, nil
	}

	extra, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(levels))
	for i, lvl := range levels {
		byID[lvl.ID] = i
	}
	for _, lvl := range extra {
		if i, ok := byID[lvl.ID]; ok {
			levels[i] = lvl
			continue
		}
		levels = append(levels, lvl)
	}

	sortByID(levels)
	return levels, nil
}

// Find returns the level with the given ID.
func Find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// Index returns the position of the level with the given ID, or -1.
func Index(levels []Level, id string) int {
	for i, lvl := range levels {
		if lvl.ID == id {
			return i
		}
	}
	return -1
}

func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parse routes to the correct parser and converts the result.
func parse(data []byte, ext string) (Level, error) {
	var parsed formats.Level
	var err error

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		parsed, err = formats.ParseYAML(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return Level{}, err
	}

	level, err := convert(parsed)
	if err != nil {
		return Level{}, err
	}
	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

func convert(p formats.Level) (Level, error) {
	level := Level{
		ID:       p.ID,
		Name:     p.Name,
		Anchor:   core.V(p.AnchorX, p.AnchorY),
		Metadata: p.Metadata,
	}
	if level.Name == "" {
		level.Name = p.ID
	}

	for _, name := range p.Projectiles {
		kind, ok := ParseProjectileKind(name)
		if !ok {
			return Level{}, fmt.Errorf("unknown projectile %q", name)
		}
		level.Projectiles = append(level.Projectiles, kind)
	}

	for i, b := range p.Bodies {
		kind, ok := ParseBodyKind(b.Kind)
		if !ok {
			return Level{}, fmt.Errorf("body %d: unknown kind %q", i, b.Kind)
		}

		spec := BodySpec{
			Kind:   kind,
			Shape:  physics.ShapeRect,
			Pos:    core.V(b.X, b.Y),
			W:      b.W,
			H:      b.H,
			R:      b.R,
			Static: kind.StaticByDefault(),
		}
		if b.Circle {
			spec.Shape = physics.ShapeCircle
		}
		if b.Static != nil {
			spec.Static = *b.Static
		}
		if b.Color != "" {
			c, ok := core.ParseColor(b.Color)
			if !ok {
				return Level{}, fmt.Errorf("body %d: unknown color %q", i, b.Color)
			}
			spec.Color = c
		}
		level.Bodies = append(level.Bodies, spec)
	}

	return level, nil
}
