// Package sprite provides the immutable glyph blocks drawn by tasks and the
// library that loads them from text frames.
package sprite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	// ErrEmptySprite is returned for frames without any printable glyph.
	ErrEmptySprite = errors.New("sprite: empty frame")

	// ErrWideGlyph is returned for glyphs that do not occupy exactly one cell.
	ErrWideGlyph = errors.New("sprite: glyph is not one cell wide")
)

// Sprite is a rectangular block of glyphs. Spaces are transparent when drawn.
type Sprite struct {
	name   string
	rows   []string
	height int
	width  int
}

// Parse builds a sprite from frame text. Trailing blank lines are dropped;
// the width is the widest line.
func Parse(name, text string) (*Sprite, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	width := 0
	printable := false
	for i, line := range lines {
		for _, r := range line {
			if runewidth.RuneWidth(r) != 1 {
				return nil, fmt.Errorf("%w: %q in %s line %d", ErrWideGlyph, r, name, i+1)
			}
			if r != ' ' {
				printable = true
			}
		}
		width = max(width, runewidth.StringWidth(line))
	}
	if !printable {
		return nil, fmt.Errorf("%w: %s", ErrEmptySprite, name)
	}

	return &Sprite{
		name:   name,
		rows:   lines,
		height: len(lines),
		width:  width,
	}, nil
}

// MustParse is like Parse but panics on error. Used for built-in glyphs.
func MustParse(name, text string) *Sprite {
	s, err := Parse(name, text)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the logical name the sprite was loaded under.
func (s *Sprite) Name() string {
	return s.name
}

// Height returns the number of rows.
func (s *Sprite) Height() int {
	return s.height
}

// Width returns the number of columns of the widest row.
func (s *Sprite) Width() int {
	return s.width
}

// Size returns height and width.
func (s *Sprite) Size() (int, int) {
	return s.height, s.width
}

// Glyphs calls fn for every glyph that is not a space, with its offset
// inside the sprite.
func (s *Sprite) Glyphs(fn func(row, col int, r rune)) {
	for y, line := range s.rows {
		x := 0
		for _, r := range line {
			if r != ' ' {
				fn(y, x, r)
			}
			x++
		}
	}
}

// String returns the frame text.
func (s *Sprite) String() string {
	return strings.Join(s.rows, "\n")
}
