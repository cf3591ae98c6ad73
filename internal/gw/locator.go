package gw

import "gwctl/internal/logx"

// Locator selects the most trustworthy candidate port from a single
// enumeration snapshot.
type Locator struct {
	Ports Enumerator
	Log   logx.Logger
}

// NewLocator builds a Locator; nil arguments fall back to the system
// enumerator and a no-op logger.
func NewLocator(ports Enumerator, log logx.Logger) *Locator {
	if ports == nil {
		ports = SystemEnumerator{}
	}
	if log == nil {
		log = logx.Nop()
	}
	return &Locator{Ports: ports, Log: log}
}

// Locate enumerates once, scores every visible port against prev and
// returns the first candidate achieving the maximum score. Ties keep
// the earlier-enumerated candidate. Fails with ErrNoDevice when nothing
// scores above zero.
func (l *Locator) Locate(prev *CandidatePort) (CandidatePort, error) {
	ports, err := l.Ports.Ports()
	if err != nil {
		return CandidatePort{}, err
	}
	l.Log.Debugf("gw: scoring %d serial ports", len(ports))
	bestScore := 0
	var best CandidatePort
	for _, c := range ports {
		score := ScorePort(c, prev)
		l.Log.Debugf("gw: %s (%04X/%04X serial=%q) scored %d", c.Path, c.VID, c.PID, c.SerialNumber, score)
		if score > bestScore {
			bestScore, best = score, c
		}
	}
	if bestScore == 0 {
		return CandidatePort{}, ErrNoDevice
	}
	l.Log.Debugf("gw: selected %s with score %d", best.Path, bestScore)
	return best, nil
}

// PortByPath returns the enumerated snapshot for an explicitly named
// device path. When the path is not part of the current enumeration a
// bare CandidatePort carrying only the path is returned, so a later
// reopen anchors on whatever identity the open-time snapshot had.
func (l *Locator) PortByPath(path string) CandidatePort {
	ports, err := l.Ports.Ports()
	if err != nil {
		l.Log.Debugf("gw: enumeration failed resolving %s: %v", path, err)
		return CandidatePort{Path: path}
	}
	for _, c := range ports {
		if c.Path == path {
			return c
		}
	}
	return CandidatePort{Path: path}
}
