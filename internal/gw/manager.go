package gw

import (
	"context"
	"fmt"

	"gwctl/internal/logx"
)

// Manager is the top-level connection orchestrator: locate, open,
// verify the sensed firmware mode against the requested operation, and
// mode-switch when needed.
type Manager struct {
	Locator  *Locator
	Switcher *Switcher
	Open     UnitOpener
	Host     Host
	Log      logx.Logger
}

// NewManager wires the production stack: system port enumeration,
// serial channels and the host platform probe.
func NewManager(log logx.Logger) *Manager {
	if log == nil {
		log = logx.Nop()
	}
	loc := NewLocator(SystemEnumerator{}, log)
	host := CurrentHost()
	return &Manager{
		Locator:  loc,
		Switcher: NewSwitcher(loc, OpenSerialUnit, host, SwitchConfig{}, log),
		Open:     OpenSerialUnit,
		Host:     host,
		Log:      log,
	}
}

// Connect opens a session and checks it against the requested operation
// kind. An explicit non-empty path bypasses port location on this
// initial open only; mode-switch reopens always re-locate. Fatal
// mismatches come back as *ModeError or *UnsupportedFirmwareError
// carrying operator instructions; the caller decides how to present
// them.
func (m *Manager) Connect(ctx context.Context, path string, isUpdate bool) (*Session, error) {
	var port CandidatePort
	if path != "" {
		port = m.Locator.PortByPath(path)
	} else {
		var err error
		port, err = m.Locator.Locate(nil)
		if err != nil {
			return nil, err
		}
	}
	sess, err := OpenSession(port, m.Open, m.Host)
	if err != nil {
		return nil, err
	}
	checked, err := m.modeCheck(ctx, sess, isUpdate)
	if err != nil {
		// modeCheck hands back whichever session is current; a mode
		// switch may already have replaced the one opened above.
		if checked != nil {
			_ = checked.Close()
		}
		return nil, err
	}
	return checked, nil
}

// modeCheck applies the mode/operation transition table. It may consume
// sess and hand back a different session; on error the caller owns
// closing whatever sess points at.
func (m *Manager) modeCheck(ctx context.Context, sess *Session, isUpdate bool) (*Session, error) {
	if sess.Info.Mode == ModeUpdate && !isUpdate {
		if sess.CanModeSwitch {
			next, err := m.Switcher.Switch(ctx, sess, ModeNormal)
			if err != nil {
				return sess, err
			}
			sess = next
			if sess.Info.Mode == ModeNormal {
				return sess, nil
			}
		}
		return sess, m.stuckInUpdateError(sess)
	}

	if isUpdate && sess.Info.Mode != ModeUpdate {
		if sess.CanModeSwitch {
			next, err := m.Switcher.Switch(ctx, sess, ModeUpdate)
			if err != nil {
				return sess, err
			}
			sess = next
			if sess.Info.Mode != ModeUpdate {
				return sess, &ModeError{
					Summary: "Greaseweazle did not change to Firmware Update Mode as requested",
					Instructions: []string{
						fmt.Sprintf("If the problem persists, install the Update Jumper at pins %s.", jumperPins(sess.Info.HWModel)),
					},
				}
			}
			return sess, nil
		}
		return sess, &ModeError{
			Summary:      "Greaseweazle is not in Firmware Update Mode",
			Instructions: updateInstructions(sess),
		}
	}

	if sess.Info.Mode == ModeNormal && sess.Info.UpdateNeeded {
		return sess, &UnsupportedFirmwareError{
			Major:        sess.Info.FWMajor,
			Minor:        sess.Info.FWMinor,
			Instructions: updateInstructions(sess),
		}
	}

	return sess, nil
}

func (m *Manager) stuckInUpdateError(sess *Session) error {
	lines := []string{" - The only available action is \"gwctl update\""}
	if sess.Info.UpdateJumpered {
		lines = append(lines, fmt.Sprintf(
			" - For normal operation disconnect from USB and remove the Update Jumper at pins %s",
			jumperPins(sess.Info.HWModel)))
	} else {
		lines = append(lines, " - Main firmware is erased: You *must* perform an update!")
	}
	return &ModeError{
		Summary:      "Greaseweazle is in Firmware Update Mode",
		Instructions: lines,
	}
}

// updateInstructions is the operator guidance for getting the device
// updated, jumper steps included when it cannot switch on its own.
func updateInstructions(sess *Session) []string {
	lines := []string{"To perform an Update:"}
	if !sess.JumperlessUpdate {
		lines = append(lines,
			" - Disconnect from USB",
			fmt.Sprintf(" - Install the Update Jumper at pins %s", jumperPins(sess.Info.HWModel)),
			" - Reconnect to USB",
		)
	}
	lines = append(lines, " - Run \"gwctl update\" to install the latest firmware")
	return lines
}

func jumperPins(hwModel uint8) string {
	if hwModel == 1 {
		return "DCLK-GND"
	}
	return "RXI-TXO"
}
