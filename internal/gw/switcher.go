package gw

import (
	"context"
	"time"

	"gwctl/internal/logx"
)

// SwitchConfig bounds the reopen poll after a mode change.
type SwitchConfig struct {
	// MaxAttempts is the number of locate+open attempts (default 10).
	MaxAttempts int
	// Delay is slept before every attempt (default 500ms), giving the
	// rebooted device time to re-enumerate.
	Delay time.Duration
}

func (c SwitchConfig) withDefaults() SwitchConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 10
	}
	if c.Delay <= 0 {
		c.Delay = 500 * time.Millisecond
	}
	return c
}

// Switcher drives the firmware mode-change protocol: command the
// switch, drop the channel, poll for the device's reappearance.
type Switcher struct {
	Locator *Locator
	Open    UnitOpener
	Host    Host
	Config  SwitchConfig
	Log     logx.Logger

	sleep func(ctx context.Context, d time.Duration) error
}

func NewSwitcher(loc *Locator, open UnitOpener, host Host, cfg SwitchConfig, log logx.Logger) *Switcher {
	if log == nil {
		log = logx.Nop()
	}
	return &Switcher{
		Locator: loc,
		Open:    open,
		Host:    host,
		Config:  cfg.withDefaults(),
		Log:     log,
		sleep:   sleepCtx,
	}
}

// Switch reboots the device into desired and returns a fresh session on
// its (possibly new) port. The old session is closed unconditionally;
// on any return it must not be used again. Fails with ErrSwitchTimeout
// once the attempt budget is exhausted, or with ctx's error when the
// caller aborts mid-poll.
func (s *Switcher) Switch(ctx context.Context, sess *Session, desired Mode) (*Session, error) {
	if err := sess.unit.SendModeChange(desired); err != nil {
		// The device drops the line when it reboots into the new mode,
		// often before completing the reply. Expected.
		s.Log.Debugf("gw: mode-change command on %s: %v", sess.Port.Path, err)
	}
	_ = sess.Close()

	anchor := sess.Port
	cfg := s.Config.withDefaults()
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := s.sleep(ctx, cfg.Delay); err != nil {
			return nil, err
		}
		port, err := s.Locator.Locate(&anchor)
		if err != nil {
			s.Log.Debugf("gw: reopen attempt %d/%d: %v", attempt, cfg.MaxAttempts, err)
			continue
		}
		next, err := OpenSession(port, s.Open, s.Host)
		if err != nil {
			s.Log.Debugf("gw: reopen attempt %d/%d: %v", attempt, cfg.MaxAttempts, err)
			continue
		}
		// Hardware facts survive the switch; the freshly queried mode
		// reflects the post-switch state.
		next.JumperlessUpdate = sess.JumperlessUpdate
		next.CanModeSwitch = sess.CanModeSwitch
		s.Log.Debugf("gw: device reappeared on %s in %s mode after %d attempts",
			next.Port.Path, next.Info.Mode, attempt)
		return next, nil
	}
	return nil, ErrSwitchTimeout
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
