package gw

import (
	"fmt"
)

type fakeUnit struct {
	path        string
	info        UnitInfo
	queryErr    error
	sendErr     error
	modeChanges []Mode
	resets      int
	closes      int
}

func (u *fakeUnit) Query() (UnitInfo, error) {
	if u.queryErr != nil {
		return UnitInfo{}, u.queryErr
	}
	return u.info, nil
}

func (u *fakeUnit) SendModeChange(desired Mode) error {
	u.modeChanges = append(u.modeChanges, desired)
	return u.sendErr
}

func (u *fakeUnit) Reset() error {
	u.resets++
	return nil
}

func (u *fakeUnit) Close() error {
	u.closes++
	return nil
}

// fakeEnumerator replays one snapshot per call; the last snapshot
// repeats once the script runs out.
type fakeEnumerator struct {
	snapshots [][]CandidatePort
	err       error
	calls     int
}

func (e *fakeEnumerator) Ports() ([]CandidatePort, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	if len(e.snapshots) == 0 {
		return nil, nil
	}
	i := e.calls - 1
	if i >= len(e.snapshots) {
		i = len(e.snapshots) - 1
	}
	return e.snapshots[i], nil
}

// fakeOpener opens a fresh fakeUnit per call, with per-path device
// records, and keeps every opened unit for inspection.
type fakeOpener struct {
	infos  map[string]UnitInfo
	errs   map[string]error
	opened []*fakeUnit
}

func (o *fakeOpener) open(path string) (Unit, error) {
	if err := o.errs[path]; err != nil {
		return nil, err
	}
	info, ok := o.infos[path]
	if !ok {
		return nil, fmt.Errorf("no device at %s", path)
	}
	u := &fakeUnit{path: path, info: info}
	o.opened = append(o.opened, u)
	return u, nil
}

type recordLogger struct {
	lines []string
}

func (l *recordLogger) Debugf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

var linuxHost = Host{OS: "linux"}
