package gw

// Mode is the firmware the device is currently running.
type Mode uint8

const (
	// ModeNormal is the main operating firmware.
	ModeNormal Mode = iota
	// ModeUpdate is the bootloader / firmware-update firmware.
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "normal"
}

// wire is the firmware selector byte carried by the mode-change command:
// the device boots its main firmware for 1, its bootloader for 0.
func (m Mode) wire() byte {
	if m == ModeNormal {
		return 1
	}
	return 0
}

// UnitInfo is the identity and capability record queried from the
// device at open time.
type UnitInfo struct {
	Mode       Mode
	HWModel    uint8
	HWSubmodel uint8
	FWMajor    uint8
	FWMinor    uint8

	// UpdateNeeded: the main firmware predates the oldest supported
	// version. Only meaningful in ModeNormal.
	UpdateNeeded bool
	// UpdateJumpered: the update jumper is physically present, forcing
	// bootloader mode. Only meaningful in ModeUpdate.
	UpdateJumpered bool
}

// Unit is the communication capability of one open channel to the
// device. The wire-level byte protocol behind it is opaque to the
// connection layer.
type Unit interface {
	// Query samples the device's mode/model/version/capability record.
	Query() (UnitInfo, error)
	// SendModeChange asks the firmware to reboot into the given mode.
	// The device may drop the line before completing the reply.
	SendModeChange(desired Mode) error
	// Reset returns the device to a quiescent state.
	Reset() error
	// Close releases the channel. Idempotent.
	Close() error
}

// UnitOpener opens a communication channel on a device path.
type UnitOpener func(path string) (Unit, error)
