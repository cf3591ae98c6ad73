//go:build windows

package gw

import (
	"strconv"

	"golang.org/x/sys/windows"
)

// CurrentHost identifies the running platform. The release string
// matters only for Windows 7, whose USB serial stack cannot survive a
// jumperless mode switch.
func CurrentHost() Host {
	info := windows.RtlGetVersion()
	release := strconv.FormatUint(uint64(info.MajorVersion), 10)
	if info.MajorVersion == 6 {
		switch info.MinorVersion {
		case 0:
			release = "vista"
		case 1:
			release = "7"
		case 2:
			release = "8"
		case 3:
			release = "8.1"
		}
	}
	return Host{OS: "windows", Release: release}
}
