package syscheck

import (
	"os"
	"runtime"
	"syscall"
)

// SysInfo abstracts host introspection for testability.
type SysInfo interface {
	Hostname() (string, error)
	WorkingDir() (string, error)

	// FreeDiskSpace returns free disk space in bytes at the given path.
	FreeDiskSpace(path string) (uint64, error)

	// NumCPUs returns the number of available CPUs.
	NumCPUs() int
}

// RealSysInfo implements SysInfo using actual system calls.
type RealSysInfo struct{}

// Hostname returns the host name.
func (r *RealSysInfo) Hostname() (string, error) {
	return os.Hostname()
}

// WorkingDir returns the current working directory.
func (r *RealSysInfo) WorkingDir() (string, error) {
	return os.Getwd()
}

// FreeDiskSpace returns free disk space in bytes.
func (r *RealSysInfo) FreeDiskSpace(path string) (uint64, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return 0, err
	}
	// Available blocks * block size
	return stat.Bavail * uint64(stat.Bsize), nil
}

// NumCPUs returns the number of available CPUs.
// Go's runtime.NumCPU() already respects container CPU limits.
func (r *RealSysInfo) NumCPUs() int {
	return runtime.NumCPU()
}
