package gw

import "strings"

// USB identity signals for the Greaseweazle device family.
const (
	knownManufacturer = "Keir Fraser"
	knownProduct      = "Greaseweazle"

	pidVendorID  = 0x1209 // pid.codes open-source VID
	assignedPID  = 0x4D69 // properly-assigned PID, guaranteed to be us
	sharedPID    = 0x0001 // old shared Test PID, not guaranteed to be us
	vendorRaspi  = 0x2E8A
	vendorAdafru = 0x239A

	serialTag = "GW"
)

// CandidatePort is a snapshot of one enumerated serial port. The device
// path is ephemeral and may change across enumerations; identity lives
// in the USB descriptor fields.
type CandidatePort struct {
	Path         string
	Manufacturer string
	Product      string
	VID          uint16
	PID          uint16
	SerialNumber string
	Location     string
}

// ValidSerialID reports whether id looks like a device-assigned serial
// identifier (non-empty, tagged with the "GW" prefix).
func ValidSerialID(id string) bool {
	return strings.HasPrefix(strings.ToUpper(id), serialTag)
}

// ScorePort ranks how likely c is the intended physical device. Higher
// is more trustworthy; 0 means reject. prev, when non-nil, is the port
// the device was previously seen on and gates reopen matching: a valid
// serial identifier differing from prev's, or a mismatched bus location,
// vetoes the candidate outright.
func ScorePort(c CandidatePort, prev *CandidatePort) int {
	score := 0
	if c.Manufacturer == knownManufacturer && c.Product == knownProduct {
		score = 20
	} else if c.VID == pidVendorID && c.PID == assignedPID {
		score = 20
	} else if c.VID == pidVendorID && c.PID == sharedPID {
		score = 10
	} else if c.VID == vendorRaspi || c.VID == vendorAdafru {
		// Something from Raspberry Pi or Adafruit.
		score = 5
	}
	if score > 0 && ValidSerialID(c.SerialNumber) {
		// A valid serial id is a good sign unless this is a reopen and
		// the serials don't match.
		if prev == nil || !ValidSerialID(prev.SerialNumber) {
			score = 20
		} else if c.SerialNumber == prev.SerialNumber {
			score = 30
		} else {
			score = 0
		}
	}
	if prev != nil && prev.Location != "" {
		// On a reopen the location field must match. A match is not
		// sufficient in itself, as some platforms report the same
		// location for multiple ports, so it never raises the score.
		if c.Location == "" || c.Location != prev.Location {
			score = 0
		}
	}
	return score
}
