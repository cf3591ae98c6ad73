package gw

import (
	"fmt"
	"strconv"

	"go.bug.st/serial/enumerator"
)

// Enumerator lists the serial ports currently visible on the host.
// Every call returns a fresh snapshot.
type Enumerator interface {
	Ports() ([]CandidatePort, error)
}

// SystemEnumerator enumerates ports through the host's native APIs.
// USB descriptor fields are filled where the platform reports them;
// absent fields stay zero and fall through scoring as non-signals.
type SystemEnumerator struct{}

func (SystemEnumerator) Ports() ([]CandidatePort, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	ports := make([]CandidatePort, 0, len(details))
	for _, d := range details {
		if d == nil {
			continue
		}
		c := CandidatePort{Path: d.Name, Product: d.Product}
		if d.IsUSB {
			c.VID = parseHexID(d.VID)
			c.PID = parseHexID(d.PID)
			c.SerialNumber = d.SerialNumber
		}
		ports = append(ports, c)
	}
	return ports, nil
}

func parseHexID(s string) uint16 {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0
	}
	return uint16(v)
}
