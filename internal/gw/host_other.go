//go:build !windows

package gw

import "runtime"

// CurrentHost identifies the running platform.
func CurrentHost() Host {
	return Host{OS: runtime.GOOS}
}
