package sprite

import (
	"errors"
	"math/rand"
	"testing"
	"testing/fstest"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		height, width int
	}{
		{"single glyph", "*", 1, 1},
		{"trailing newline", "ab\n", 1, 2},
		{"ragged rows", " _\n|  |\n|", 3, 4},
		{"inner blank line", "a\n\nb\n\n", 3, 1},
		{"crlf", "ab\r\ncd\r\n", 2, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Parse(tc.name, tc.text)
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			h, w := s.Size()
			if h != tc.height || w != tc.width {
				t.Errorf("Size() = (%d, %d), expected (%d, %d)", h, w, tc.height, tc.width)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("blank", "   \n  \n"); !errors.Is(err, ErrEmptySprite) {
		t.Errorf("blank frame: expected ErrEmptySprite, got %v", err)
	}
	if _, err := Parse("empty", ""); !errors.Is(err, ErrEmptySprite) {
		t.Errorf("empty frame: expected ErrEmptySprite, got %v", err)
	}
	if _, err := Parse("wide", "漢"); !errors.Is(err, ErrWideGlyph) {
		t.Errorf("wide glyph: expected ErrWideGlyph, got %v", err)
	}
}

func TestGlyphsSkipSpaces(t *testing.T) {
	s := MustParse("box", "a b\n c")

	type glyph struct {
		row, col int
		r        rune
	}
	var got []glyph
	s.Glyphs(func(row, col int, r rune) {
		got = append(got, glyph{row, col, r})
	})

	expected := []glyph{{0, 0, 'a'}, {0, 2, 'b'}, {1, 1, 'c'}}
	if len(got) != len(expected) {
		t.Fatalf("Glyphs() visited %d cells, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("glyph %d = %+v, expected %+v", i, got[i], expected[i])
		}
	}
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"rocket_frame_1.txt": {Data: []byte(" ^\n/|\\\n")},
		"rocket_frame_2.txt": {Data: []byte(" ^\n\\|/\n")},
		"trash_a.txt":        {Data: []byte("##\n")},
		"trash_b.txt":        {Data: []byte("@@@\n@@@\n")},
		"explosion_1.txt":    {Data: []byte("*\n")},
		"explosion_2.txt":    {Data: []byte("+\n")},
		"game_over.txt":      {Data: []byte("GAME OVER\n")},
		"notes.md":           {Data: []byte("ignored")},
	}
}

func TestLoadGroups(t *testing.T) {
	lib, err := Load(testFS())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if n := len(lib.CraftFrames()); n != 2 {
		t.Errorf("CraftFrames() = %d frames, expected 2", n)
	}
	if n := len(lib.Hazards()); n != 2 {
		t.Errorf("Hazards() = %d frames, expected 2", n)
	}
	if n := len(lib.ExplosionFrames()); n != 2 {
		t.Errorf("ExplosionFrames() = %d frames, expected 2", n)
	}
	if lib.ExplosionFrames()[0].Name() != "explosion_1" {
		t.Errorf("explosion frames out of order: %s first", lib.ExplosionFrames()[0].Name())
	}
	if lib.GameOver().Width() != 9 {
		t.Errorf("GameOver().Width() = %d, expected 9", lib.GameOver().Width())
	}
	if _, ok := lib.Get("notes"); ok {
		t.Error("non-txt files should be ignored")
	}
}

func TestLoadMissingGroup(t *testing.T) {
	fsys := testFS()
	delete(fsys, "game_over.txt")

	if _, err := Load(fsys); !errors.Is(err, ErrMissingFrame) {
		t.Errorf("expected ErrMissingFrame, got %v", err)
	}

	fsys = testFS()
	delete(fsys, "trash_a.txt")
	delete(fsys, "trash_b.txt")
	if _, err := Load(fsys); !errors.Is(err, ErrMissingFrame) {
		t.Errorf("expected ErrMissingFrame without hazards, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	fsys := testFS()
	fsys["trash_c.txt"] = &fstest.MapFile{Data: []byte("  \n")}

	if _, err := Load(fsys); !errors.Is(err, ErrEmptySprite) {
		t.Errorf("expected ErrEmptySprite, got %v", err)
	}
}

func TestDefaultLibrary(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if len(lib.Hazards()) < 2 {
		t.Errorf("expected several hazard variants, got %d", len(lib.Hazards()))
	}
	if len(lib.CraftFrames()) != 2 {
		t.Errorf("expected 2 craft frames, got %d", len(lib.CraftFrames()))
	}
}

func TestRandomHazardUsesEveryVariant(t *testing.T) {
	lib, err := Load(testFS())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	rng := rand.New(rand.NewSource(7))
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[lib.RandomHazard(rng).Name()] = true
	}
	if len(seen) != 2 {
		t.Errorf("RandomHazard() picked %d distinct variants, expected 2", len(seen))
	}
}
