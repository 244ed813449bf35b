package sprite

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"path"
	"sort"
	"strings"
)

//go:embed frames/*.txt
var defaultFrames embed.FS

// Frame names the session depends on.
const (
	CraftPrefix     = "rocket_frame_"
	HazardPrefix    = "trash_"
	ExplosionPrefix = "explosion_"
	GameOverName    = "game_over"
)

// ErrMissingFrame is returned when a required frame group is absent.
var ErrMissingFrame = errors.New("sprite: missing frame")

// Library holds every sprite of a session, keyed by logical name.
type Library struct {
	sprites map[string]*Sprite
	hazards []*Sprite
}

// Default loads the frames compiled into the binary.
func Default() (*Library, error) {
	sub, err := fs.Sub(defaultFrames, "frames")
	if err != nil {
		return nil, fmt.Errorf("sprite: embedded frames: %w", err)
	}
	return Load(sub)
}

// Load reads every *.txt file at the root of fsys. The logical name is the
// file name without extension. All required groups must be present.
func Load(fsys fs.FS) (*Library, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("sprite: cannot list frames: %w", err)
	}

	lib := &Library{sprites: make(map[string]*Sprite)}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".txt" {
			continue
		}

		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("sprite: cannot read %s: %w", e.Name(), err)
		}

		name := strings.TrimSuffix(e.Name(), ".txt")
		s, err := Parse(name, string(data))
		if err != nil {
			return nil, err
		}
		lib.sprites[name] = s
	}

	if err := lib.validate(); err != nil {
		return nil, err
	}
	lib.hazards = lib.group(HazardPrefix)
	return lib, nil
}

// validate checks that a playable session can be built from the library.
func (l *Library) validate() error {
	for _, prefix := range []string{CraftPrefix, HazardPrefix, ExplosionPrefix} {
		if len(l.group(prefix)) == 0 {
			return fmt.Errorf("%w: no %s* frames", ErrMissingFrame, prefix)
		}
	}
	if _, ok := l.sprites[GameOverName]; !ok {
		return fmt.Errorf("%w: %s", ErrMissingFrame, GameOverName)
	}
	return nil
}

// Get returns a sprite by name.
func (l *Library) Get(name string) (*Sprite, bool) {
	s, ok := l.sprites[name]
	return s, ok
}

// Names returns all sprite names, sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.sprites))
	for name := range l.sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// group returns the sprites whose name starts with prefix, ordered by name.
func (l *Library) group(prefix string) []*Sprite {
	var out []*Sprite
	for _, name := range l.Names() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, l.sprites[name])
		}
	}
	return out
}

// CraftFrames returns the craft animation frames in name order.
func (l *Library) CraftFrames() []*Sprite {
	return l.group(CraftPrefix)
}

// Hazards returns every hazard variant.
func (l *Library) Hazards() []*Sprite {
	return l.hazards
}

// ExplosionFrames returns the explosion sequence in name order.
func (l *Library) ExplosionFrames() []*Sprite {
	return l.group(ExplosionPrefix)
}

// GameOver returns the banner frame.
func (l *Library) GameOver() *Sprite {
	return l.sprites[GameOverName]
}

// RandomHazard picks one hazard variant uniformly.
func (l *Library) RandomHazard(rng *rand.Rand) *Sprite {
	return l.hazards[rng.Intn(len(l.hazards))]
}
