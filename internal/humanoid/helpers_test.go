package humanoid

import (
	"context"
	"math"
	"math/rand"
	"sync"
)

// unitDraw makes sqrt(-2 ln u1) exactly 1, so a Box-Muller draw equals cos(2*pi*u2).
var unitDraw = math.Exp(-0.5)

// scriptedSource replays a fixed list of uniform draws, cycling when exhausted.
type scriptedSource struct {
	values []float64
	calls  int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

// mockExecutor implements Executor and records every move it receives.
type mockExecutor struct {
	mu sync.Mutex

	position Point
	screen   ScreenSize
	moves    [][2]int

	positionErr error
	screenErr   error
	moveErr     error
	failOnMove  int // 1-based move number that returns moveErr; 0 disables.

	cancelOnMove int // 1-based move number after which cancelFunc runs.
	cancelFunc   context.CancelFunc
}

func newMockExecutor(position Point, screen ScreenSize) *mockExecutor {
	return &mockExecutor{position: position, screen: screen}
}

func (m *mockExecutor) CursorPosition(ctx context.Context) (Point, error) {
	return m.position, m.positionErr
}

func (m *mockExecutor) ScreenSize(ctx context.Context) (ScreenSize, error) {
	return m.screen, m.screenErr
}

func (m *mockExecutor) MoveTo(ctx context.Context, x, y int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failOnMove > 0 && len(m.moves)+1 == m.failOnMove {
		return m.moveErr
	}
	m.moves = append(m.moves, [2]int{x, y})

	if m.cancelOnMove > 0 && len(m.moves) == m.cancelOnMove && m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}

func (m *mockExecutor) recorded() [][2]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][2]int, len(m.moves))
	copy(out, m.moves)
	return out
}

// newTestHumanoid creates a Humanoid with a fixed seed so runs are reproducible.
func newTestHumanoid(executor Executor, seed int64) *Humanoid {
	cfg := DefaultConfig()
	cfg.Rng = rand.New(rand.NewSource(seed))
	return New(cfg, nil, executor)
}
