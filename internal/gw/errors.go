package gw

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDevice means no enumerated serial port scored above zero.
	ErrNoDevice = errors.New("cannot find the Greaseweazle device")

	// ErrSwitchTimeout means the device did not reappear within the
	// reopen retry budget after a mode switch.
	ErrSwitchTimeout = errors.New("could not reopen the device after mode switch")
)

// OpenError is a transport-level failure opening a session on a port,
// including the open-time identity query.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// ModeError is a fatal mode mismatch: the device is in a firmware mode
// the requested operation cannot run in, and no automatic switch could
// resolve it. Instructions carry operator guidance, one line each.
type ModeError struct {
	Summary      string
	Instructions []string
}

func (e *ModeError) Error() string { return e.Summary }

// UnsupportedFirmwareError means the device's main firmware predates the
// oldest version this tool can drive.
type UnsupportedFirmwareError struct {
	Major        uint8
	Minor        uint8
	Instructions []string
}

func (e *UnsupportedFirmwareError) Error() string {
	return fmt.Sprintf("Greaseweazle firmware v%d.%d is unsupported", e.Major, e.Minor)
}

// InstructionLines extracts operator guidance from a fatal connection
// error, if it carries any.
func InstructionLines(err error) []string {
	var me *ModeError
	if errors.As(err, &me) {
		return me.Instructions
	}
	var fe *UnsupportedFirmwareError
	if errors.As(err, &fe) {
		return fe.Instructions
	}
	return nil
}
