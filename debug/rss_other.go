//go:build !windows && !linux && !darwin && !freebsd

package debug

import "errors"

func peakResidentSet() (uint64, error) {
	return 0, errors.New("resident set size not supported on this platform")
}
