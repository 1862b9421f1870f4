package snake

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
)

const tick = 100 * time.Millisecond // Default start interval

type memStore struct {
	score int
	saves []int
}

func (m *memStore) Load() int { return m.score }

func (m *memStore) Save(score int) {
	m.score = score
	m.saves = append(m.saves, score)
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

var none = core.NewInputFrame()

// plainFood is a normal food item parked at p.
func plainFood(p core.Point) Food {
	return Food{Pos: p, Base: 10, Kind: config.FoodKind{Name: normalKind, Points: 10}}
}

func startGame(t *testing.T, mode Mode) (*Game, *memStore) {
	t.Helper()
	store := &memStore{}
	g := New(config.Default(), store, 42)
	if err := g.Start(mode, 0); err != nil {
		t.Fatalf("Start(%s) failed: %v", mode, err)
	}
	g.food = plainFood(core.Point{X: 0, Y: 0})
	return g, store
}

func TestMoveUpFiveTimes(t *testing.T) {
	g, _ := startGame(t, ModeClassic)

	for k := 1; k <= 5; k++ {
		st := g.Step(none, time.Duration(k)*tick)
		if !st.Moved {
			t.Fatalf("move %d did not happen", k)
		}
	}

	snap := g.Snapshot()
	if snap.Segments[0] != (core.Point{X: 20, Y: 10}) {
		t.Errorf("head = %v, expected (20, 10)", snap.Segments[0])
	}
	if len(snap.Segments) != 3 || snap.Score != 0 {
		t.Errorf("len=%d score=%d, expected 3 and 0", len(snap.Segments), snap.Score)
	}

	// Keep going through the top edge: y wraps modulo the grid height
	for k := 6; k <= 20; k++ {
		g.Step(none, time.Duration(k)*tick)
	}
	if head := g.snake.Head(); head != (core.Point{X: 20, Y: 25}) || !g.snake.Alive() {
		t.Errorf("head = %v alive = %v, expected (20, 25) alive", head, g.snake.Alive())
	}
}

func TestMoveOnlyOnTickBoundary(t *testing.T) {
	g, _ := startGame(t, ModeClassic)

	if st := g.Step(none, 99*time.Millisecond); st.Moved {
		t.Error("moved before the interval elapsed")
	}
	if st := g.Step(none, tick); !st.Moved {
		t.Error("expected a move at the interval")
	}
	if st := g.Step(none, tick+time.Millisecond); st.Moved {
		t.Error("at most one move per interval")
	}
}

func TestStateTransitions(t *testing.T) {
	g := New(config.Default(), nil, 1)
	now := time.Duration(0)
	step := func(in core.InputFrame) Status {
		now += 10 * time.Millisecond
		return g.Step(in, now)
	}

	steps := []struct {
		name  string
		input core.InputFrame
		want  State
	}{
		{"start", press(core.ActionConfirm), StateModeSelect},
		{"cancel", press(core.ActionBack), StateMenu},
		{"start again", press(core.ActionConfirm), StateModeSelect},
		{"select classic", press(core.ActionMode1), StatePlaying},
		{"pause", press(core.ActionPause), StatePaused},
		{"resume", press(core.ActionResume), StatePlaying},
		{"pause again", press(core.ActionPause), StatePaused},
		{"cancel from pause", press(core.ActionBack), StateMenu},
	}
	for _, s := range steps {
		st := step(s.input)
		if st.State != s.want || g.State() != s.want {
			t.Fatalf("%s: state = %s, expected %s", s.name, g.State(), s.want)
		}
		if !st.Transitioned {
			t.Errorf("%s: Transitioned = false", s.name)
		}
	}
	if g.Mode() != ModeClassic {
		t.Errorf("mode = %s, expected classic", g.Mode())
	}
}

func TestGameOverTransitions(t *testing.T) {
	g, _ := startGame(t, ModeWalls)
	g.snake.Die(DeathWall, 0)
	g.Step(none, 10*time.Millisecond)
	g.Step(none, 2*time.Second)
	if g.State() != StateGameOver {
		t.Fatalf("state = %s, expected game_over", g.State())
	}

	g.Step(press(core.ActionRestart), 3*time.Second)
	if g.State() != StatePlaying || !g.snake.Alive() || g.Score() != 0 || g.Mode() != ModeWalls {
		t.Fatalf("restart: state=%s alive=%v score=%d mode=%s", g.State(), g.snake.Alive(), g.Score(), g.Mode())
	}

	g.snake.Die(DeathSelf, 3*time.Second)
	g.Step(none, 3*time.Second+10*time.Millisecond)
	g.Step(none, 5*time.Second)
	g.Step(press(core.ActionBack), 6*time.Second)
	if g.State() != StateMenu {
		t.Errorf("state = %s, expected menu", g.State())
	}
}

func TestPauseKeyAppliesOneTransition(t *testing.T) {
	g, _ := startGame(t, ModeClassic)
	toggle := press(core.ActionPause, core.ActionResume)

	g.Step(toggle, 10*time.Millisecond)
	if g.State() != StatePaused {
		t.Fatalf("state = %s, expected paused", g.State())
	}
	g.Step(press(core.ActionPause), 20*time.Millisecond)
	if g.State() != StatePaused {
		t.Fatalf("pause while paused should be ignored, got %s", g.State())
	}
	g.Step(toggle, 30*time.Millisecond)
	if g.State() != StatePlaying {
		t.Errorf("state = %s, expected playing", g.State())
	}
}

func TestIllegalInputIgnored(t *testing.T) {
	g := New(config.Default(), nil, 1)
	for _, a := range []core.Action{core.ActionRestart, core.ActionPause, core.ActionResume, core.ActionMode1, core.ActionLeft, core.ActionBack} {
		if st := g.Step(press(a), 0); st.Transitioned || g.State() != StateMenu {
			t.Errorf("%s in menu changed state to %s", a, g.State())
		}
	}

	g, _ = startGame(t, ModeClassic)
	for _, a := range []core.Action{core.ActionRestart, core.ActionConfirm, core.ActionBack, core.ActionMode3, core.ActionResume} {
		if g.Step(press(a), 0); g.State() != StatePlaying {
			t.Errorf("%s while playing changed state to %s", a, g.State())
		}
	}
}

func TestModeSelectCursor(t *testing.T) {
	g := New(config.Default(), nil, 1)
	g.Step(press(core.ActionConfirm), 0)

	g.Step(press(core.ActionUp), 0) // Wraps to the last mode
	if g.Frame().Cursor != 2 {
		t.Fatalf("cursor = %d, expected 2", g.Frame().Cursor)
	}
	g.Step(press(core.ActionDown), 0)
	g.Step(press(core.ActionDown), 0)
	if g.Frame().Cursor != 1 {
		t.Fatalf("cursor = %d, expected 1", g.Frame().Cursor)
	}
	g.Step(press(core.ActionConfirm), 0)
	if g.State() != StatePlaying || g.Mode() != ModeWalls {
		t.Errorf("state=%s mode=%s, expected playing walls", g.State(), g.Mode())
	}
}

func TestVariantModeRestriction(t *testing.T) {
	cfg, err := config.Embedded("advanced")
	if err != nil {
		t.Fatal(err)
	}
	g := New(cfg, nil, 1)
	if !reflect.DeepEqual(g.Modes(), []Mode{ModeWalls}) {
		t.Fatalf("modes = %v, expected [walls]", g.Modes())
	}

	g.Step(press(core.ActionConfirm), 0)
	g.Step(press(core.ActionMode1), 0)
	if g.State() != StateModeSelect {
		t.Fatalf("classic is not offered by this variant, state = %s", g.State())
	}
	g.Step(press(core.ActionMode2), 0)
	if g.State() != StatePlaying || g.Mode() != ModeWalls {
		t.Errorf("state=%s mode=%s", g.State(), g.Mode())
	}

	if err := New(cfg, nil, 1).Start(ModeClassic, 0); err == nil {
		t.Error("Start should reject a mode the variant does not offer")
	}
}

func TestSteerBuffersDirection(t *testing.T) {
	g, _ := startGame(t, ModeClassic)

	g.Step(press(core.ActionDown), 10*time.Millisecond) // Reversal, ignored
	g.Step(press(core.ActionLeft), 20*time.Millisecond)
	g.Step(none, tick)
	if g.snake.Direction() != DirLeft || g.snake.Head() != (core.Point{X: 19, Y: 15}) {
		t.Errorf("dir=%s head=%v, expected left to (19, 15)", g.snake.Direction(), g.snake.Head())
	}
}

func TestEatFood(t *testing.T) {
	g, _ := startGame(t, ModeClassic)
	g.food = plainFood(core.Point{X: 20, Y: 14})

	st := g.Step(none, tick)
	if !st.Ate {
		t.Fatal("expected to eat the food in front of the head")
	}
	if g.Score() != 10 || g.snake.Length() != 4 {
		t.Errorf("score=%d length=%d, expected 10 and 4", g.Score(), g.snake.Length())
	}
	if g.snake.Occupies(g.food.Pos) {
		t.Errorf("new food %v placed on the snake", g.food.Pos)
	}

	g.food = plainFood(core.Point{X: 0, Y: 0})
	g.Step(none, 2*tick)
	if g.snake.Len() != 4 {
		t.Errorf("segments = %d, expected 4", g.snake.Len())
	}
}

func TestEatBonusFoodAddsToBase(t *testing.T) {
	g, _ := startGame(t, ModeClassic)
	g.food = Food{
		Pos:   core.Point{X: 20, Y: 14},
		Base:  10,
		Bonus: true,
		Kind:  config.FoodKind{Name: "bonus", Points: 20},
	}
	g.Step(none, tick)
	if g.Score() != 30 {
		t.Errorf("score = %d, expected 10 + 20", g.Score())
	}
}

func TestEatFoodAvoidsObstacles(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := New(config.Default(), nil, seed)
		if err := g.Start(ModeObstacles, 0); err != nil {
			t.Fatal(err)
		}
		g.food = plainFood(core.Point{X: 20, Y: 14})
		if !g.Step(none, tick).Ate {
			t.Fatalf("seed %d: expected to eat", seed)
		}
		if g.obstacles.Contains(g.food.Pos) || g.snake.Occupies(g.food.Pos) {
			t.Errorf("seed %d: food %v placed on an occupied cell", seed, g.food.Pos)
		}
	}
}

func TestBonusExpiryInGame(t *testing.T) {
	g, _ := startGame(t, ModeClassic)
	g.food = Food{
		Pos:       core.Point{X: 0, Y: 0},
		Base:      10,
		Bonus:     true,
		Kind:      config.FoodKind{Name: "bonus", Points: 20, Lifetime: 5 * time.Second},
		HasExpiry: true,
		ExpiresAt: time.Second,
	}

	if st := g.Step(none, time.Second); st.FoodRelocated {
		t.Fatal("food relocated before expiry")
	}
	st := g.Step(none, time.Second+50*time.Millisecond)
	if !st.FoodRelocated {
		t.Fatal("expired bonus food was not relocated")
	}
	if g.snake.Occupies(g.food.Pos) {
		t.Errorf("relocated food on the snake")
	}
	if g.food.HasExpiry && g.food.ExpiresAt <= time.Second+50*time.Millisecond {
		t.Errorf("relocated food has a stale expiry %v", g.food.ExpiresAt)
	}
}

func TestDeathGraceAndHighScore(t *testing.T) {
	store := &memStore{score: 5}
	g := New(config.Default(), store, 1)
	if g.HighScore() != 5 {
		t.Fatalf("high score = %d, expected loaded 5", g.HighScore())
	}
	if err := g.Start(ModeWalls, 0); err != nil {
		t.Fatal(err)
	}
	g.food = plainFood(core.Point{X: 30, Y: 0})
	placeSnake(g.snake, core.Point{X: 0, Y: 15}, DirLeft, 3)
	g.snake.score = 40

	st := g.Step(none, tick)
	if !st.Died || g.snake.Alive() || g.snake.DeathReason() != DeathWall {
		t.Fatalf("expected wall death, got %+v reason %q", st, g.snake.DeathReason())
	}
	if g.State() != StatePlaying {
		t.Fatalf("state = %s, expected playing during the grace period", g.State())
	}
	f := g.Frame()
	if f.FlashStrength != 1 || core.Abs(f.Shake.X) > 1 || core.Abs(f.Shake.Y) > 1 {
		t.Errorf("flash=%v shake=%v after death", f.FlashStrength, f.Shake)
	}
	if len(f.Particles) == 0 {
		t.Error("expected death particles")
	}

	g.Step(none, tick+1499*time.Millisecond)
	if g.State() != StatePlaying || len(store.saves) != 0 {
		t.Fatalf("game over too early: state=%s saves=%v", g.State(), store.saves)
	}

	st = g.Step(none, tick+1500*time.Millisecond)
	if !st.GameOver || !st.NewHighScore || g.State() != StateGameOver {
		t.Fatalf("expected game over with a new high score, got %+v", st)
	}
	if !reflect.DeepEqual(store.saves, []int{40}) || g.HighScore() != 40 {
		t.Errorf("saves = %v high = %d, expected one save of 40", store.saves, g.HighScore())
	}
	if g.flashLeft != 0 || g.shakeLeft != 0 {
		t.Errorf("timers should be clamped at zero, flash=%v shake=%v", g.flashLeft, g.shakeLeft)
	}

	for i := 1; i <= 10; i++ {
		g.Step(none, 2*time.Second+time.Duration(i)*tick)
	}
	if len(store.saves) != 1 {
		t.Errorf("high score saved %d times, expected once", len(store.saves))
	}

	// A worse session never saves
	g.Step(press(core.ActionRestart), 4*time.Second)
	g.snake.Die(DeathSelf, 4*time.Second)
	g.Step(none, 4*time.Second+10*time.Millisecond)
	g.Step(none, 6*time.Second)
	if g.State() != StateGameOver || len(store.saves) != 1 || g.Frame().NewHighScore {
		t.Errorf("state=%s saves=%v, expected no new save", g.State(), store.saves)
	}
}

func TestNilStore(t *testing.T) {
	g := New(config.Default(), nil, 1)
	if err := g.Start(ModeClassic, 0); err != nil {
		t.Fatal(err)
	}
	g.snake.score = 10
	g.snake.Die(DeathSelf, 0)
	g.Step(none, 0)
	g.Step(none, 2*time.Second)
	if g.State() != StateGameOver || g.HighScore() != 10 {
		t.Errorf("state=%s high=%d", g.State(), g.HighScore())
	}
}

func TestPauseShiftsDeadlines(t *testing.T) {
	g, _ := startGame(t, ModeClassic)
	g.food = Food{
		Pos:       core.Point{X: 0, Y: 0},
		Base:      10,
		Bonus:     true,
		Kind:      config.FoodKind{Name: "bonus", Points: 20, Lifetime: 2 * time.Second},
		HasExpiry: true,
		ExpiresAt: 2 * time.Second,
	}
	start := g.snake.Head()

	g.Step(press(core.ActionPause), 50*time.Millisecond)
	g.Step(none, 5*time.Second)
	g.Step(press(core.ActionResume), 10*time.Second)
	if g.State() != StatePlaying || g.snake.Head() != start {
		t.Fatalf("state=%s head=%v, snake must not move across the pause", g.State(), g.snake.Head())
	}
	if g.food.ExpiresAt != 2*time.Second+9950*time.Millisecond {
		t.Errorf("food expiry = %v, expected shifted by the paused time", g.food.ExpiresAt)
	}

	if st := g.Step(none, 10*time.Second+40*time.Millisecond); st.Moved || st.FoodRelocated {
		t.Errorf("unexpected %+v right after resume", st)
	}
	if st := g.Step(none, 10*time.Second+50*time.Millisecond); !st.Moved {
		t.Error("expected the move that was due when the game was paused")
	}
}

func TestObstacleModeStart(t *testing.T) {
	g, _ := startGame(t, ModeObstacles)
	cfg := config.Default()
	head := core.Point{X: 20, Y: 15}

	if g.obstacles.Len() != cfg.Obstacles.Count {
		t.Fatalf("obstacles = %d, expected %d", g.obstacles.Len(), cfg.Obstacles.Count)
	}
	for _, p := range g.obstacles.Cells() {
		if core.Chebyshev(p, head) <= cfg.Obstacles.SafeRadius {
			t.Errorf("obstacle %v inside the safe square", p)
		}
		if g.snake.Occupies(p) {
			t.Errorf("obstacle %v on the snake", p)
		}
	}

	// Restart regenerates the set
	before := g.obstacles.Cells()
	g.snake.Die(DeathSelf, 0)
	g.Step(none, 0)
	g.Step(none, 2*time.Second)
	g.Step(press(core.ActionRestart), 3*time.Second)
	if reflect.DeepEqual(before, g.obstacles.Cells()) {
		t.Error("expected a fresh obstacle set after restart")
	}

	// Other modes carry no obstacles
	g, _ = startGame(t, ModeWalls)
	if g.obstacles.Len() != 0 {
		t.Errorf("walls mode has %d obstacles", g.obstacles.Len())
	}
}

func TestStartFailureStaysInModeSelect(t *testing.T) {
	cfg := config.Default()
	cfg.Obstacles.Count = 5000
	g := New(cfg, nil, 1)

	g.Step(press(core.ActionConfirm), 0)
	g.Step(press(core.ActionMode3), 0)
	if g.State() != StateModeSelect {
		t.Fatalf("state = %s, expected mode_select after a failed start", g.State())
	}
	if !errors.Is(g.Err(), ErrObstacleCapacity) || g.Frame().Err == nil {
		t.Errorf("Err() = %v, expected ErrObstacleCapacity", g.Err())
	}

	g.Step(press(core.ActionMode1), 0)
	if g.State() != StatePlaying || g.Err() != nil {
		t.Errorf("state=%s err=%v, classic should still start", g.State(), g.Err())
	}
}

func TestBoardFull(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Width, cfg.Grid.Height = 5, 5
	g := New(cfg, nil, 1)
	if err := g.Start(ModeWalls, 0); err != nil {
		t.Fatal(err)
	}

	// Serpentine path covering every cell but (4,4), ending at the head (3,4)
	var path []core.Point
	for y := 0; y < 5; y++ {
		for i := 0; i < 5; i++ {
			x := i
			if y%2 == 1 {
				x = 4 - i
			}
			if (core.Point{X: x, Y: y}) != (core.Point{X: 4, Y: 4}) {
				path = append(path, core.Point{X: x, Y: y})
			}
		}
	}
	body := make([]core.Point, 0, len(path))
	for i := len(path) - 1; i >= 0; i-- {
		body = append(body, path[i])
	}
	g.snake.body = body
	g.snake.length = len(body) + 1
	g.snake.dir, g.snake.pending = DirRight, DirRight
	g.food = plainFood(core.Point{X: 4, Y: 4})

	st := g.Step(none, tick)
	if !st.Ate || !st.Died || g.snake.DeathReason() != DeathBoardFull {
		t.Errorf("expected board_full death after filling the grid, got %+v reason %q", st, g.snake.DeathReason())
	}
}

func TestDeterminism(t *testing.T) {
	script := func(frame int) core.InputFrame {
		switch frame {
		case 0:
			return press(core.ActionConfirm)
		case 1:
			return press(core.ActionMode3)
		case 20:
			return press(core.ActionLeft)
		case 45:
			return press(core.ActionDown)
		case 70:
			return press(core.ActionRight)
		case 95:
			return press(core.ActionUp)
		}
		return none
	}

	run := func() (Snapshot, Frame) {
		g := New(config.Default(), nil, 12345)
		for frame := 0; frame < 400; frame++ {
			g.Step(script(frame), time.Duration(frame)*16*time.Millisecond)
		}
		return g.Snapshot(), g.Frame()
	}

	snap1, frame1 := run()
	snap2, frame2 := run()
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("snapshots differ:\n%s\n%s", snap1, snap2)
	}
	if !reflect.DeepEqual(frame1.Particles, frame2.Particles) || frame1.Shake != frame2.Shake {
		t.Error("cosmetic state differs between identical runs")
	}
}
