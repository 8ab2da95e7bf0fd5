package platform

import (
	"context"

	hook "github.com/robotn/gohook"
	"go.uber.org/zap"
)

// WatchAbort calls abort when the key combination is pressed. It blocks
// until ctx is done and then tears the global hook down. An empty combination
// disables the watcher; it then just waits for ctx.
func WatchAbort(ctx context.Context, keys []string, abort context.CancelFunc, logger *zap.Logger) error {
	if len(keys) == 0 {
		<-ctx.Done()
		return nil
	}

	hook.Register(hook.KeyDown, keys, func(e hook.Event) {
		logger.Info("Abort hotkey pressed, stopping drift", zap.Strings("keys", keys))
		abort()
	})

	evChan := hook.Start()
	done := hook.Process(evChan)
	logger.Debug("Abort hotkey armed", zap.Strings("keys", keys))

	<-ctx.Done()
	hook.End()
	// Process signals once the event channel has drained.
	<-done
	return nil
}
