package gw

import "context"

// Host is the platform identity used for capability derivation.
type Host struct {
	OS      string
	Release string
}

func (h Host) isWindows7() bool {
	return h.OS == "windows" && h.Release == "7"
}

// Session owns one open, exclusive channel to the device plus the
// attributes sampled at open time. Attributes are fixed after open: a
// mode change always destroys the session and creates a new one.
type Session struct {
	// Port is the candidate the session was opened from; it anchors
	// identity and location matching on any later reopen.
	Port CandidatePort
	// Info is the open-time query result.
	Info UnitInfo
	// JumperlessUpdate: the device can switch firmware mode without a
	// physical jumper. A host/device hardware fact, stable across
	// mode switches.
	JumperlessUpdate bool
	// CanModeSwitch: jumperless and not locked into update mode by a
	// physically present jumper.
	CanModeSwitch bool

	unit   Unit
	closed bool
}

// OpenSession opens a channel on port, queries the device's identity
// record and derives the capability flags. Failures of either step are
// reported as *OpenError.
func OpenSession(port CandidatePort, open UnitOpener, host Host) (*Session, error) {
	unit, err := open(port.Path)
	if err != nil {
		return nil, &OpenError{Path: port.Path, Err: err}
	}
	info, err := unit.Query()
	if err != nil {
		_ = unit.Close()
		return nil, &OpenError{Path: port.Path, Err: err}
	}
	// Model F1 rev 0 lacks the bootloader entry path, and the Windows 7
	// serial stack drops re-enumerated devices mid-switch.
	jumperless := !(info.HWModel == 1 && info.HWSubmodel == 0) && !host.isWindows7()
	return &Session{
		Port:             port,
		Info:             info,
		JumperlessUpdate: jumperless,
		CanModeSwitch:    jumperless && !(info.Mode == ModeUpdate && info.UpdateJumpered),
		unit:             unit,
	}, nil
}

// Unit exposes the open communication capability. Nil after Close.
func (s *Session) Unit() Unit {
	if s.closed {
		return nil
	}
	return s.unit
}

// Reset asks the device to return to a quiescent state.
func (s *Session) Reset() error {
	if s.closed {
		return nil
	}
	return s.unit.Reset()
}

// Close releases the channel. Idempotent; the session must not be used
// afterwards.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.unit.Close()
}

// Finish is the end-of-operation cleanup: when ctx was canceled (an
// interrupt arrived mid-operation) it sends a best-effort device reset
// before releasing the channel, so an aborted operation never leaves
// the device seeking or its motor running.
func (s *Session) Finish(ctx context.Context) error {
	if !s.closed && ctx.Err() != nil {
		_ = s.unit.Reset()
	}
	return s.Close()
}
