package gw

import (
	"encoding/binary"
	"fmt"
	"time"

	serialdrv "go.bug.st/serial"
)

// Command opcodes understood by both firmwares.
const (
	cmdGetInfo      = 0
	cmdSwitchFwMode = 11
	cmdReset        = 16

	getInfoFirmware = 0 // GetInfo sub-index: firmware record

	ackOkay = 0
)

// Oldest main firmware this tool can drive.
const (
	minFWMajor = 1
	minFWMinor = 0
)

const (
	infoRecordSize  = 32
	unitReadTimeout = 2 * time.Second
)

// SerialUnit speaks the device's command/ack framing over a serial
// channel. It implements Unit.
type SerialUnit struct {
	port serialdrv.Port
	path string
}

// OpenSerialUnit opens the production communication channel on path.
func OpenSerialUnit(path string) (Unit, error) {
	mode := &serialdrv.Mode{
		BaudRate: 115200,
		DataBits: 8,
		Parity:   serialdrv.NoParity,
		StopBits: serialdrv.OneStopBit,
	}
	port, err := serialdrv.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", path, err)
	}
	if err := port.SetReadTimeout(unitReadTimeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("set serial read timeout: %w", err)
	}
	return &SerialUnit{port: port, path: path}, nil
}

func (u *SerialUnit) Query() (UnitInfo, error) {
	if err := u.command(cmdGetInfo, getInfoFirmware); err != nil {
		return UnitInfo{}, err
	}
	rec := make([]byte, infoRecordSize)
	if err := u.readExact(rec); err != nil {
		return UnitInfo{}, fmt.Errorf("read firmware record: %w", err)
	}
	info := UnitInfo{
		FWMajor:    rec[0],
		FWMinor:    rec[1],
		HWModel:    rec[8],
		HWSubmodel: rec[9],
	}
	isMainFirmware := rec[2]
	sampleFreq := binary.LittleEndian.Uint32(rec[4:8])
	if isMainFirmware == 0 {
		info.Mode = ModeUpdate
		info.UpdateJumpered = sampleFreq&1 != 0
	} else {
		info.Mode = ModeNormal
		info.UpdateNeeded = info.FWMajor < minFWMajor ||
			(info.FWMajor == minFWMajor && info.FWMinor < minFWMinor)
	}
	return info, nil
}

func (u *SerialUnit) SendModeChange(desired Mode) error {
	return u.command(cmdSwitchFwMode, desired.wire())
}

func (u *SerialUnit) Reset() error {
	return u.command(cmdReset)
}

func (u *SerialUnit) Close() error {
	if u == nil || u.port == nil {
		return nil
	}
	port := u.port
	u.port = nil
	return port.Close()
}

// command sends one framed command and checks its two-byte ack.
func (u *SerialUnit) command(op byte, args ...byte) error {
	if u.port == nil {
		return fmt.Errorf("gw: channel %s is closed", u.path)
	}
	frame := make([]byte, 0, 2+len(args))
	frame = append(frame, op, byte(2+len(args)))
	frame = append(frame, args...)
	if err := u.writeAll(frame); err != nil {
		return fmt.Errorf("send command %d: %w", op, err)
	}
	var ack [2]byte
	if err := u.readExact(ack[:]); err != nil {
		return fmt.Errorf("read ack for command %d: %w", op, err)
	}
	if ack[0] != op {
		return fmt.Errorf("gw: ack for command %d names command %d", op, ack[0])
	}
	if ack[1] != ackOkay {
		return fmt.Errorf("gw: command %d failed with status %d", op, ack[1])
	}
	return nil
}

func (u *SerialUnit) readExact(dst []byte) error {
	for read := 0; read < len(dst); {
		n, err := u.port.Read(dst[read:])
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("gw: read timeout on %s", u.path)
		}
		read += n
	}
	return nil
}

func (u *SerialUnit) writeAll(data []byte) error {
	for len(data) > 0 {
		n, err := u.port.Write(data)
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}
		data = data[n:]
	}
	return nil
}
