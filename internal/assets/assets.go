// Package assets provides the glyph frames the simulation draws: spaceship
// animation, garbage shapes, explosion phases and the game over banner.
// A default set is embedded; a directory with the same naming scheme can
// replace any part of it.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/space-garbage/internal/core"
)

//go:embed frames/*.txt
var embedded embed.FS

// File naming scheme inside a frames directory.
const (
	rocketPrefix    = "rocket"
	explosionPrefix = "explosion"
	gameOverName    = "game_over"
	frameExt        = ".txt"
)

// Set is a complete collection of frames for one game session.
type Set struct {
	Rocket    []core.Frame // Ship animation, played in order
	Garbage   []core.Frame // Debris shapes, picked at random
	Explosion []core.Frame // Explosion phases, played in order
	GameOver  core.Frame   // Banner shown after the ship is hit
}

// Default returns the embedded frame set.
func Default() (Set, error) {
	sub, err := fs.Sub(embedded, "frames")
	if err != nil {
		return Set{}, fmt.Errorf("assets: embedded frames: %w", err)
	}
	return Load(sub)
}

// LoadDir reads frames from a directory on disk. Categories the directory
// does not provide are taken from the embedded set.
func LoadDir(dir string) (Set, error) {
	custom, err := Load(os.DirFS(dir))
	if err != nil && !errors.Is(err, errIncomplete) {
		return Set{}, fmt.Errorf("assets: %s: %w", dir, err)
	}

	base, baseErr := Default()
	if baseErr != nil {
		return Set{}, baseErr
	}

	if len(custom.Rocket) > 0 {
		base.Rocket = custom.Rocket
	}
	if len(custom.Garbage) > 0 {
		base.Garbage = custom.Garbage
	}
	if len(custom.Explosion) > 0 {
		base.Explosion = custom.Explosion
	}
	if custom.GameOver.Name != "" {
		base.GameOver = custom.GameOver
	}
	return base, base.Validate()
}

var errIncomplete = errors.New("incomplete frame set")

// Load reads every *.txt frame at the root of fsys and sorts it into a Set
// by file name. The result is validated.
func Load(fsys fs.FS) (Set, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return Set{}, fmt.Errorf("read frames: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != frameExt {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var set Set
	for _, file := range names {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return Set{}, fmt.Errorf("read frame %s: %w", file, err)
		}
		name := strings.TrimSuffix(file, frameExt)
		frame := core.NewFrame(name, string(data))

		switch {
		case strings.HasPrefix(name, rocketPrefix):
			set.Rocket = append(set.Rocket, frame)
		case strings.HasPrefix(name, explosionPrefix):
			set.Explosion = append(set.Explosion, frame)
		case name == gameOverName:
			set.GameOver = frame
		default:
			set.Garbage = append(set.Garbage, frame)
		}
	}

	return set, set.Validate()
}

// Validate checks that every category is present and that no frame is blank.
func (s Set) Validate() error {
	var errs []error
	if len(s.Rocket) == 0 {
		errs = append(errs, errors.New("no rocket frames"))
	}
	if len(s.Garbage) == 0 {
		errs = append(errs, errors.New("no garbage frames"))
	}
	if len(s.Explosion) == 0 {
		errs = append(errs, errors.New("no explosion frames"))
	}
	if s.GameOver.Name == "" {
		errs = append(errs, errors.New("no game over banner"))
	}
	for _, f := range s.All() {
		if f.Empty() {
			errs = append(errs, fmt.Errorf("frame %s is blank", f.Name))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", errIncomplete, errors.Join(errs...))
	}
	return nil
}

// All returns every frame in the set.
func (s Set) All() []core.Frame {
	all := make([]core.Frame, 0, len(s.Rocket)+len(s.Garbage)+len(s.Explosion)+1)
	all = append(all, s.Rocket...)
	all = append(all, s.Garbage...)
	all = append(all, s.Explosion...)
	if s.GameOver.Name != "" {
		all = append(all, s.GameOver)
	}
	return all
}
