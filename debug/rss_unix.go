//go:build linux || darwin || freebsd

package debug

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// peakResidentSet returns the peak resident set of the current process in
// bytes, as reported by getrusage.
func peakResidentSet() (uint64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	// Maxrss is bytes on Darwin and kilobytes elsewhere.
	if runtime.GOOS == "darwin" {
		return uint64(ru.Maxrss), nil
	}
	return uint64(ru.Maxrss) * 1024, nil
}
