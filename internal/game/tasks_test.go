package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/physics"
	"github.com/vovakirdan/space-garbage/internal/sprite"
)

// beepScreen counts bell rings.
type beepScreen struct {
	*core.Screen
	beeps int
}

func (b *beepScreen) Beep() {
	b.beeps++
}

// fixedInput returns the same controls on every poll.
type fixedInput struct {
	controls core.Controls
}

func (f *fixedInput) Poll() core.Controls {
	return f.controls
}

func newTestWorld(rows, cols int) (*engine.World, *core.Screen) {
	screen := core.NewScreen(rows, cols)
	return engine.NewWorld(screen, rand.New(rand.NewSource(1)), nil), screen
}

var (
	dot       = sprite.MustParse("dot", "^")
	box       = sprite.MustParse("box", "###\n###\n###")
	debris    = sprite.MustParse("debris", "@@@\n@@@")
	boomSmall = sprite.MustParse("boom1", "*")
	boomLarge = sprite.MustParse("boom2", " * \n***\n * ")
	banner    = sprite.MustParse("banner", "GAME OVER")
)

func testCraft(row, col float64, frame *sprite.Sprite) *Craft {
	return NewCraft(row, col, CraftOptions{
		Frames:     []*sprite.Sprite{frame},
		Banner:     banner,
		Easing:     physics.Easing{Limit: 1, Step: 0.5},
		RowOffset:  1,
		ColOffset:  2,
		Projectile: config.ProjectileConfig{RowSpeed: -1},
	})
}

func TestCraftCollisionEndsGame(t *testing.T) {
	w, _ := newTestWorld(24, 40)
	w.Obstacles.Register(8, 9, 5, 3) // rows 8-12, cols 9-11

	craft := testCraft(10, 10, dot)
	res := craft.Step(w)

	if res.Status != engine.Done {
		t.Fatalf("Status = %v, want Done", res.Status)
	}
	if len(res.Spawn) != 1 {
		t.Fatalf("spawned %d tasks, want 1", len(res.Spawn))
	}
	if _, ok := res.Spawn[0].(*GameOverBanner); !ok {
		t.Errorf("spawned %T, want *GameOverBanner", res.Spawn[0])
	}
}

func TestGameOverBannerSetsFlag(t *testing.T) {
	w, screen := newTestWorld(11, 21)
	sched := engine.NewScheduler(w, nil)
	sched.Add(NewGameOverBanner(banner))

	for range 3 {
		sched.Tick()
	}

	if !w.GameOver {
		t.Error("GameOver not set")
	}
	if sched.Len() != 1 {
		t.Errorf("banner retired, Len = %d", sched.Len())
	}
	// 9 wide banner on 21 columns: starts at column 6, row 5.
	if got := screen.Row(5)[6:15]; got != "GAME OVER" {
		t.Errorf("banner row = %q", got)
	}
}

func TestProjectileMarksAndParks(t *testing.T) {
	w, _ := newTestWorld(20, 20)
	o := w.Obstacles.Register(3, 9, 4, 3) // rows 3-6

	p := NewProjectile(5, 10, -1, 0)
	res := p.Step(w)

	if res.Status != engine.Continue {
		t.Fatalf("Status = %v, want Continue", res.Status)
	}
	if row, _ := p.Position(); row != 1 {
		t.Errorf("row = %v, want 1", row)
	}
	if recorded, _ := w.PendingHits(); recorded != 1 {
		t.Errorf("recorded marks = %d, want 1", recorded)
	}

	if res := p.Step(w); res.Status != engine.Done {
		t.Errorf("parked projectile Status = %v, want Done", res.Status)
	}

	// The mark is visible only after the drain.
	if w.WasHit(o.ID) {
		t.Error("mark visible before drain")
	}
}

func TestProjectileMarksEveryStruckObstacle(t *testing.T) {
	w, _ := newTestWorld(20, 20)
	a := w.Obstacles.Register(3, 9, 2, 3)
	b := w.Obstacles.Register(4, 10, 2, 2)
	sched := engine.NewScheduler(w, nil)
	sched.Add(NewProjectile(5, 10, -1, 0))
	sched.Tick()

	if !w.WasHit(a.ID) || !w.WasHit(b.ID) {
		t.Errorf("WasHit a=%v b=%v, want both", w.WasHit(a.ID), w.WasHit(b.ID))
	}
}

func TestProjectileLeavesField(t *testing.T) {
	w, screen := newTestWorld(10, 10)
	sched := engine.NewScheduler(w, nil)
	sched.Add(NewProjectile(8, 5, -1, 0))

	ticks := 0
	for sched.Len() > 0 {
		sched.Tick()
		ticks++
		if ticks > 20 {
			t.Fatal("projectile never finished")
		}
	}

	// Nothing left behind and the border row untouched.
	for row := 1; row < 9; row++ {
		if c := screen.GetCell(row, 5); c.Rune != ' ' {
			t.Errorf("cell (%d,5) = %q after projectile finished", row, c.Rune)
		}
	}
}

func TestProjectileSymbol(t *testing.T) {
	if got := NewProjectile(5, 5, -1, 0).Symbol(); got != '|' {
		t.Errorf("vertical symbol = %q", got)
	}
	if got := NewProjectile(5, 5, 0, 1).Symbol(); got != '-' {
		t.Errorf("horizontal symbol = %q", got)
	}
}

func TestCraftStaysInsideBorder(t *testing.T) {
	const rows, cols = 12, 20
	w, _ := newTestWorld(rows, cols)
	input := &fixedInput{}
	sched := engine.NewScheduler(w, input)
	craft := testCraft(5, 8, box)
	sched.Add(craft)

	inside := func(dir string) {
		r := craft.Rect()
		if r.Row < 1 || r.Col < 1 || r.Bottom() > rows-1 || r.Right() > cols-1 {
			t.Fatalf("%s: craft rect %+v left the field", dir, r)
		}
	}

	for _, c := range []core.Controls{
		{RowDir: 1, ColDir: 1},
		{RowDir: -1, ColDir: -1},
		{RowDir: 1, ColDir: -1},
		{RowDir: -1, ColDir: 1},
	} {
		input.controls = c
		for range 100 {
			sched.Tick()
			inside("sustained input")
		}
	}

	if sched.Len() != 1 {
		t.Errorf("craft retired without obstacles")
	}
}

func TestCraftEasing(t *testing.T) {
	w, _ := newTestWorld(24, 40)
	craft := testCraft(10, 10, dot)

	w.Controls = core.Controls{RowDir: -1}
	craft.Step(w)
	if rs, cs := craft.Velocity(); rs != -0.5 || cs != 0 {
		t.Errorf("velocity = (%v, %v), want (-0.5, 0)", rs, cs)
	}
	if row, _ := craft.Position(); row != 9.5 {
		t.Errorf("row = %v, want 9.5", row)
	}

	w.Controls = core.Controls{}
	craft.Step(w)
	if rs, _ := craft.Velocity(); rs != 0 {
		t.Errorf("velocity after release = %v, want 0", rs)
	}
}

func TestCraftFire(t *testing.T) {
	screen := &beepScreen{Screen: core.NewScreen(24, 40)}
	w := engine.NewWorld(screen, rand.New(rand.NewSource(1)), nil)
	w.Year = 2020
	w.Controls = core.Controls{Fire: true}

	craft := testCraft(10, 10, box)
	res := craft.Step(w)
	if len(res.Spawn) != 0 {
		t.Fatalf("fired without weapons: %d tasks", len(res.Spawn))
	}

	craft.opts.CanFire = func(year int) bool { return year >= 2020 }
	res = craft.Step(w)
	if len(res.Spawn) != 1 {
		t.Fatalf("spawned %d tasks, want 1", len(res.Spawn))
	}
	shot, ok := res.Spawn[0].(*Projectile)
	if !ok {
		t.Fatalf("spawned %T, want *Projectile", res.Spawn[0])
	}
	// Fired from the nose before the craft moved this tick.
	if row, col := shot.Position(); row != 10 || col != 11 {
		t.Errorf("shot at (%v, %v), want (10, 11)", row, col)
	}
	if screen.beeps != 1 || craft.Shots() != 1 {
		t.Errorf("beeps = %d, shots = %d, want 1 and 1", screen.beeps, craft.Shots())
	}
}

func TestCraftAnimation(t *testing.T) {
	w, screen := newTestWorld(10, 10)
	a := sprite.MustParse("a", "A")
	b := sprite.MustParse("b", "B")
	craft := NewCraft(4, 4, CraftOptions{
		Frames:    []*sprite.Sprite{a, b},
		Animation: []int{0, 0, 1, 1},
		Easing:    physics.Easing{Limit: 1, Step: 0.5},
		RowOffset: 1,
		ColOffset: 2,
	})

	var got []rune
	for range 6 {
		craft.Step(w)
		screen.Present()
		got = append(got, screen.GetCell(4, 4).Rune)
	}
	if string(got) != "AABBAA" {
		t.Errorf("frames = %q, want AABBAA", string(got))
	}
}

func TestHazardFinishesWithinBound(t *testing.T) {
	const rows, cols = 20, 30
	const row0, speed = 1.0, 0.5
	w, _ := newTestWorld(rows, cols)
	sched := engine.NewScheduler(w, nil)
	h := NewHazard(debris, row0, 10, speed, nil)
	sched.Add(h)

	sched.Tick()
	if w.Obstacles.Len() != 1 {
		t.Fatalf("obstacle not registered on first step")
	}

	bound := int(math.Ceil((rows - row0) / speed))
	ticks := 1
	for sched.Len() > 0 {
		sched.Tick()
		ticks++
		if ticks > bound {
			t.Fatalf("hazard still live after %d ticks", bound)
		}
	}
	if w.Obstacles.Len() != 0 {
		t.Errorf("registry holds %d obstacles after hazard finished", w.Obstacles.Len())
	}
}

func TestHazardObstacleFollowsDrawing(t *testing.T) {
	w, screen := newTestWorld(20, 30)
	h := NewHazard(debris, 1, 10, 0.5, nil)

	h.Step(w)
	h.Step(w) // drawn at 1.5, rounded to row 2
	screen.Present()

	rect := h.Obstacle().Rect()
	if rect.Row != 2 || rect.Col != 10 {
		t.Errorf("obstacle at (%d,%d), want (2,10)", rect.Row, rect.Col)
	}
	if c := screen.GetCell(2, 10); c.Rune != '@' {
		t.Errorf("cell (2,10) = %q, want '@'", c.Rune)
	}
	if c := screen.GetCell(1, 10); c.Rune != ' ' {
		t.Errorf("previous row not erased: %q", c.Rune)
	}
}

func TestHazardColumnClamped(t *testing.T) {
	w, _ := newTestWorld(20, 30)
	h := NewHazard(debris, 1, 100, 0.5, nil)
	h.Step(w)

	if got := h.Column(); got != 26 {
		t.Errorf("column = %v, want 26", got)
	}
	if r := h.Obstacle().Rect(); r.Right() > 29 {
		t.Errorf("obstacle reaches the border: %+v", r)
	}
}

func TestHitProducesExplosion(t *testing.T) {
	w, _ := newTestWorld(30, 40)
	sched := engine.NewScheduler(w, nil)
	h := NewHazard(debris, 1, 10, 0.5, []*sprite.Sprite{boomSmall, boomLarge})
	sched.Add(h)
	sched.Tick()

	// Tick T: the hazard occupies rows 2-3 and the shot moves from 4 to 3.
	sched.Add(NewProjectile(4, 11, -1, 0))
	sched.Tick()
	if !w.WasHit(h.Obstacle().ID) {
		t.Fatal("hit not published after tick T")
	}

	// Tick T+1: the hazard retires and spawns the explosion.
	sched.Tick()
	if w.Obstacles.Len() != 0 {
		t.Errorf("registry holds %d obstacles", w.Obstacles.Len())
	}
	if w.Destroyed != 1 {
		t.Errorf("Destroyed = %d, want 1", w.Destroyed)
	}
	explosions := 0
	for _, task := range sched.Tasks() {
		switch task.(type) {
		case *Explosion:
			explosions++
		case *Hazard:
			t.Error("hazard still live at T+1")
		}
	}
	if explosions != 1 {
		t.Errorf("explosions = %d, want 1", explosions)
	}

	// Tick T+2: the explosion runs; no marks remain.
	sched.Tick()
	if recorded, published := w.PendingHits(); recorded != 0 || published != 0 {
		t.Errorf("marks left: recorded=%d published=%d", recorded, published)
	}
}

func TestHitProducesExplosionShotFirst(t *testing.T) {
	w, _ := newTestWorld(30, 40)
	sched := engine.NewScheduler(w, nil)
	h := NewHazard(debris, 1, 10, 0.5, []*sprite.Sprite{boomSmall, boomLarge})
	// The shot steps before the hazard on every tick.
	sched.Add(NewProjectile(6, 11, -1, 0), h)

	hitTick := -1
	for range 10 {
		sched.Tick()
		if w.WasHit(h.Obstacle().ID) {
			hitTick = w.Tick
			break
		}
	}
	if hitTick < 0 {
		t.Fatal("shot never struck the hazard")
	}

	// One tick later the hazard is gone and has exploded.
	sched.Tick()
	if w.Obstacles.Len() != 0 || w.Destroyed != 1 {
		t.Fatalf("after hit: obstacles=%d destroyed=%d", w.Obstacles.Len(), w.Destroyed)
	}
	explosions := 0
	for _, task := range sched.Tasks() {
		switch task.(type) {
		case *Explosion:
			explosions++
		case *Hazard:
			t.Error("hazard still live one tick after the hit")
		}
	}
	if explosions != 1 {
		t.Errorf("explosions = %d, want 1", explosions)
	}

	sched.Tick()
	if recorded, published := w.PendingHits(); recorded != 0 || published != 0 {
		t.Errorf("marks left: recorded=%d published=%d", recorded, published)
	}
}

func TestProjectileCannotSkipThinHazard(t *testing.T) {
	thin := sprite.MustParse("thin", "===")

	for _, shotFirst := range []bool{false, true} {
		for start := 4.0; start <= 13; start++ {
			w, _ := newTestWorld(30, 20)
			sched := engine.NewScheduler(w, nil)
			h := NewHazard(thin, 2, 5, 0.5, []*sprite.Sprite{boomSmall})
			shot := NewProjectile(start, 6, -1, 0)
			if shotFirst {
				sched.Add(shot, h)
			} else {
				sched.Add(h, shot)
			}

			for range 30 {
				sched.Tick()
			}
			if w.Destroyed != 1 {
				t.Errorf("shotFirst=%v start=%v: Destroyed = %d, want 1", shotFirst, start, w.Destroyed)
			}
		}
	}
}

func TestExplosionPlaysOnce(t *testing.T) {
	w, screen := newTestWorld(10, 10)
	e := NewExplosion(5, 5, []*sprite.Sprite{boomSmall, boomLarge})

	if res := e.Step(w); res.Status != engine.Continue {
		t.Fatalf("frame 1 Status = %v", res.Status)
	}
	screen.Present()
	if c := screen.GetCell(5, 5); c.Rune != '*' {
		t.Errorf("frame 1 centre = %q", c.Rune)
	}

	if res := e.Step(w); res.Status != engine.Continue {
		t.Fatalf("frame 2 Status = %v", res.Status)
	}
	screen.Present()
	if c := screen.GetCell(4, 5); c.Rune != '*' {
		t.Errorf("frame 2 top = %q", c.Rune)
	}

	res := e.Step(w)
	if res.Status != engine.Done || len(res.Spawn) != 0 {
		t.Errorf("final step = %+v, want Done without spawns", res)
	}
	screen.Present()
	if c := screen.GetCell(5, 5); c.Rune != ' ' {
		t.Errorf("explosion not erased: %q", c.Rune)
	}
}

func TestBlinkCycle(t *testing.T) {
	w, screen := newTestWorld(5, 5)
	sched := engine.NewScheduler(w, nil)
	sched.Add(NewBlink(2, 2, '*', 2, DefaultBlinkPhases))

	want := map[int]core.Style{
		3:  core.StyleDim,
		22: core.StyleDim,
		23: core.StyleNormal,
		25: core.StyleNormal,
		26: core.StyleBold,
		30: core.StyleBold,
		31: core.StyleNormal,
		33: core.StyleNormal,
		34: core.StyleDim,
	}

	for tick := 1; tick <= 34; tick++ {
		sched.Tick()
		c := screen.GetCell(2, 2)
		if tick < 3 {
			if c.Rune != ' ' {
				t.Fatalf("tick %d: star drawn during offset", tick)
			}
			continue
		}
		if c.Rune != '*' {
			t.Fatalf("tick %d: rune = %q", tick, c.Rune)
		}
		if style, ok := want[tick]; ok && c.Style != style {
			t.Errorf("tick %d: style = %v, want %v", tick, c.Style, style)
		}
	}
}

func TestDifficultyClock(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		gameOver bool
		ticks    int
		wantYear int
	}{
		{"one year", true, false, 15, 1958},
		{"almost", true, false, 29, 1958},
		{"two years", true, false, 30, 1959},
		{"fixed", false, false, 60, 1957},
		{"game over", true, true, 60, 1957},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig().Difficulty
			cfg.Enabled = tt.enabled
			dm := config.NewDifficultyManager(cfg)

			w, _ := newTestWorld(10, 60)
			w.Year = dm.StartYear()
			w.GameOver = tt.gameOver
			sched := engine.NewScheduler(w, nil)
			sched.Add(NewDifficultyClock(dm))
			for range tt.ticks {
				sched.Tick()
			}
			if w.Year != tt.wantYear {
				t.Errorf("Year = %d, want %d", w.Year, tt.wantYear)
			}
		})
	}
}

func TestDifficultyClockHUD(t *testing.T) {
	dm := config.NewDifficultyManager(config.DefaultConfig().Difficulty)
	w, screen := newTestWorld(10, 60)
	w.Year = 1969
	sched := engine.NewScheduler(w, nil)
	sched.Add(NewDifficultyClock(dm))
	sched.Tick()

	want := " Year 1969: Armstrong got on the moon! "
	if got := screen.Row(9)[2 : 2+len(want)]; got != want {
		t.Errorf("HUD = %q, want %q", got, want)
	}
}

func TestHazardSpawnerRate(t *testing.T) {
	lib, err := sprite.Default()
	if err != nil {
		t.Fatal(err)
	}
	dm := config.NewDifficultyManager(config.DefaultConfig().Difficulty)

	w, _ := newTestWorld(30, 60)
	w.Year = 1957
	sp := NewHazardSpawner(lib, dm, config.DefaultConfig().Hazard)
	for range 10 {
		sp.Step(w)
	}
	if sp.Spawned() != 0 {
		t.Fatalf("spawned %d hazards before 1961", sp.Spawned())
	}

	w.Year = 1961
	for range 41 {
		res := sp.Step(w)
		for _, task := range res.Spawn {
			if _, ok := task.(*Hazard); !ok {
				t.Fatalf("spawner produced %T", task)
			}
		}
	}
	if sp.Spawned() != 3 {
		t.Errorf("spawned %d hazards in 41 ticks at 20-tick delay, want 3", sp.Spawned())
	}
}

func TestHazardSpawnerDeterministic(t *testing.T) {
	lib, err := sprite.Default()
	if err != nil {
		t.Fatal(err)
	}
	dm := config.NewDifficultyManager(config.DefaultConfig().Difficulty)

	run := func() []string {
		w, _ := newTestWorld(30, 60)
		w.Year = 2020
		sp := NewHazardSpawner(lib, dm, config.DefaultConfig().Hazard)
		var out []string
		for range 20 {
			for _, task := range sp.Step(w).Spawn {
				h := task.(*Hazard)
				out = append(out, h.sprite.Name())
			}
		}
		return out
	}

	a, b := run(), run()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("spawn %d: %s vs %s", i, a[i], b[i])
		}
	}
}
