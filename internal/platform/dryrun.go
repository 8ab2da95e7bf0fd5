package platform

import (
	"context"
	"fmt"
	"io"
	"sync"

	json "github.com/json-iterator/go"
	"github.com/xkilldash9x/cursordrift/internal/humanoid"
)

// MoveRecord is one line of dry-run output.
type MoveRecord struct {
	Index int `json:"index"`
	X     int `json:"x"`
	Y     int `json:"y"`
}

// DryRunExecutor reads the pointer and screen through another executor but
// writes moves to out as JSON lines instead of performing them.
type DryRunExecutor struct {
	inner humanoid.Executor

	mu    sync.Mutex
	enc   *json.Encoder
	count int
}

// NewDryRunExecutor wraps inner, sending moves to out.
func NewDryRunExecutor(inner humanoid.Executor, out io.Writer) *DryRunExecutor {
	return &DryRunExecutor{
		inner: inner,
		enc:   json.NewEncoder(out),
	}
}

var _ humanoid.Executor = (*DryRunExecutor)(nil)

func (d *DryRunExecutor) CursorPosition(ctx context.Context) (humanoid.Point, error) {
	return d.inner.CursorPosition(ctx)
}

func (d *DryRunExecutor) ScreenSize(ctx context.Context) (humanoid.ScreenSize, error) {
	return d.inner.ScreenSize(ctx)
}

func (d *DryRunExecutor) MoveTo(ctx context.Context, x, y int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.enc.Encode(MoveRecord{Index: d.count, X: x, Y: y}); err != nil {
		return fmt.Errorf("platform: failed to write dry-run move: %w", err)
	}
	d.count++
	return nil
}

// Moves returns how many moves have been written.
func (d *DryRunExecutor) Moves() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.count
}
