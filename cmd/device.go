package cmd

import (
	"context"
	"os"
	"os/signal"

	"gwctl/internal/gw"
	"gwctl/internal/logx"
)

// opCtx derives an interrupt-aware context for one device operation.
// Cleanup paths check ctx.Err() so an interrupt still resets the device
// before the channel is released.
func opCtx(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt)
}

// connect opens a checked session per the --device flag and the
// operation kind.
func connect(ctx context.Context, isUpdate bool) (*gw.Session, error) {
	mgr := gw.NewManager(logx.Default())
	return mgr.Connect(ctx, flagDevice, isUpdate)
}
